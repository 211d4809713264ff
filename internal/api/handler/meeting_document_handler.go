package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// MeetingDocumentHandler document metadata endpoints
type MeetingDocumentHandler struct {
	docSvc service.MeetingDocumentService
	errorResponder
}

// NewMeetingDocumentHandler creates a MeetingDocumentHandler
func NewMeetingDocumentHandler(docSvc service.MeetingDocumentService, e errorResponder) *MeetingDocumentHandler {
	return &MeetingDocumentHandler{docSvc: docSvc, errorResponder: e}
}

// ListByMeeting GET /api/meetings/:id/documents
func (h *MeetingDocumentHandler) ListByMeeting(c *gin.Context) {
	docs, err := h.docSvc.ListByMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKList(c, docs, len(docs))
}

// Add POST /api/meetings/:id/documents
func (h *MeetingDocumentHandler) Add(c *gin.Context) {
	var req dto.AddMeetingDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	doc, err := h.docSvc.Add(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Document added successfully", doc)
}

// Reorder PUT /api/meetings/:id/documents/reorder
func (h *MeetingDocumentHandler) Reorder(c *gin.Context) {
	var req dto.ReorderDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.docSvc.Reorder(c.Request.Context(), c.Param("id"), req.DocumentOrder)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Documents reordered successfully", result)
}

// Stats GET /api/meetings/:id/documents/stats
func (h *MeetingDocumentHandler) Stats(c *gin.Context) {
	stats, err := h.docSvc.Stats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, stats)
}

// Get GET /api/meeting-documents/:id
func (h *MeetingDocumentHandler) Get(c *gin.Context) {
	doc, err := h.docSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, doc)
}

// Update PUT /api/meeting-documents/:id
func (h *MeetingDocumentHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	doc, err := h.docSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Document updated successfully", doc)
}

// Delete DELETE /api/meeting-documents/:id, the stored file is kept
func (h *MeetingDocumentHandler) Delete(c *gin.Context) {
	if err := h.docSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Document deleted successfully", nil)
}
