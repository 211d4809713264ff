package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// multipart field carrying the file
const uploadField = "file"

// UploadHandler document file transfer endpoints
type UploadHandler struct {
	docSvc service.MeetingDocumentService
	errorResponder
}

// NewUploadHandler creates an UploadHandler
func NewUploadHandler(docSvc service.MeetingDocumentService, e errorResponder) *UploadHandler {
	return &UploadHandler{docSvc: docSvc, errorResponder: e}
}

// Upload stores a file and creates its document record
// POST /api/upload/document (multipart: file, meetingId, documentName?, remarks?, uploadedBy?)
func (h *UploadHandler) Upload(c *gin.Context) {
	var form dto.UploadDocumentForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err)
		return
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		h.formFileFailed(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		h.respond(c, err)
		return
	}
	defer file.Close()

	result, err := h.docSvc.Upload(c.Request.Context(), &form, header.Filename, file)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "File uploaded successfully", result)
}

// Attach replaces the file of an existing document
// POST /api/upload/document/:documentId
func (h *UploadHandler) Attach(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		h.formFileFailed(c, err)
		return
	}
	file, err := header.Open()
	if err != nil {
		h.respond(c, err)
		return
	}
	defer file.Close()

	result, err := h.docSvc.AttachFile(c.Request.Context(), c.Param("documentId"), header.Filename, file)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "File uploaded successfully", result)
}

// Download GET /api/upload/document/:documentId
func (h *UploadHandler) Download(c *gin.Context) {
	file, err := h.docSvc.Download(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		h.respond(c, err)
		return
	}

	if file.FileType != "" {
		c.Header("Content-Type", file.FileType)
	}
	c.FileAttachment(file.Path, file.FileName)
}

// Delete removes the document record and its file
// DELETE /api/upload/document/:documentId
func (h *UploadHandler) Delete(c *gin.Context) {
	if err := h.docSvc.DeleteWithFile(c.Request.Context(), c.Param("documentId")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Document and file deleted successfully", nil)
}

func (h *UploadHandler) formFileFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		h.respond(c, service.ErrFileTooLarge)
	case errors.Is(err, http.ErrMissingFile):
		h.respond(c, service.ErrNoFileUploaded)
	default:
		h.bindFailed(c, err)
	}
}
