package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler Excel export endpoints
type ExportHandler struct {
	exportSvc service.ExportService
	errorResponder
}

// NewExportHandler creates an ExportHandler
func NewExportHandler(exportSvc service.ExportService, e errorResponder) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc, errorResponder: e}
}

// ExportMeetings meetings matching the list filters
// GET /api/export/meetings?search=&status=&meetingTypeId=&startDate=&endDate=
func (h *ExportHandler) ExportMeetings(c *gin.Context) {
	var req dto.MeetingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	buf, filename, err := h.exportSvc.ExportMeetings(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	sendFile(c, filename, xlsxContentType, buf.Bytes())
}

// ExportAttendance attendance sheet of one meeting
// GET /api/export/meetings/:id/attendance
func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAttendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	sendFile(c, filename, xlsxContentType, buf.Bytes())
}
