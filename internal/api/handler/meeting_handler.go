package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// MeetingHandler meeting lifecycle endpoints
type MeetingHandler struct {
	meetingSvc service.MeetingService
	errorResponder
}

// NewMeetingHandler creates a MeetingHandler
func NewMeetingHandler(meetingSvc service.MeetingService, e errorResponder) *MeetingHandler {
	return &MeetingHandler{meetingSvc: meetingSvc, errorResponder: e}
}

// List GET /api/meetings?page=&limit=&search=&status=&meetingTypeId=&startDate=&endDate=
func (h *MeetingHandler) List(c *gin.Context) {
	var req dto.MeetingListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	page, err := h.meetingSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get GET /api/meetings/:id
func (h *MeetingHandler) Get(c *gin.Context) {
	meeting, err := h.meetingSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, meeting)
}

// Create POST /api/meetings
func (h *MeetingHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	meeting, err := h.meetingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Meeting created successfully", meeting)
}

// Update PUT /api/meetings/:id
func (h *MeetingHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	meeting, err := h.meetingSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting updated successfully", meeting)
}

// Cancel PUT /api/meetings/:id/cancel
func (h *MeetingHandler) Cancel(c *gin.Context) {
	var req dto.CancelMeetingRequest
	// the body is optional
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindFailed(c, err)
			return
		}
	}

	meeting, err := h.meetingSvc.Cancel(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting cancelled successfully", meeting)
}

// Delete DELETE /api/meetings/:id
func (h *MeetingHandler) Delete(c *gin.Context) {
	if err := h.meetingSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting deleted successfully", nil)
}

// Stats GET /api/meetings/stats
func (h *MeetingHandler) Stats(c *gin.Context) {
	stats, err := h.meetingSvc.Stats(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, stats)
}

// Upcoming GET /api/meetings/upcoming?limit=
func (h *MeetingHandler) Upcoming(c *gin.Context) {
	var req dto.UpcomingMeetingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	meetings, err := h.meetingSvc.Upcoming(c.Request.Context(), req.Limit)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKList(c, meetings, len(meetings))
}

// Calendar GET /api/meetings/:id/ics
func (h *MeetingHandler) Calendar(c *gin.Context) {
	data, filename, err := h.meetingSvc.Calendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	sendFile(c, filename, calendarContentType, data)
}

// UpcomingCalendar GET /api/meetings/upcoming/ics?limit=
func (h *MeetingHandler) UpcomingCalendar(c *gin.Context) {
	var req dto.UpcomingMeetingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	data, filename, err := h.meetingSvc.UpcomingCalendar(c.Request.Context(), req.Limit)
	if err != nil {
		h.respond(c, err)
		return
	}

	sendFile(c, filename, calendarContentType, data)
}

// sendFile writes data as a download
func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, contentType, data)
}
