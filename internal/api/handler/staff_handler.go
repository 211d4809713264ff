package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// StaffHandler staff directory endpoints
type StaffHandler struct {
	staffSvc  service.StaffService
	memberSvc service.MeetingMemberService
	errorResponder
}

// NewStaffHandler creates a StaffHandler
func NewStaffHandler(staffSvc service.StaffService, memberSvc service.MeetingMemberService, e errorResponder) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc, memberSvc: memberSvc, errorResponder: e}
}

// List GET /api/staff?page=&limit=&search=
func (h *StaffHandler) List(c *gin.Context) {
	var req dto.StaffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	page, err := h.staffSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKPage(c, page.Items, page.Total, page.Page, page.Limit)
}

// Get GET /api/staff/:id
func (h *StaffHandler) Get(c *gin.Context) {
	staff, err := h.staffSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, staff)
}

// Create POST /api/staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// Update PUT /api/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Staff member updated successfully", staff)
}

// Delete DELETE /api/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staffSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Staff member deleted successfully", nil)
}

// Meetings GET /api/staff/:id/meetings
func (h *StaffHandler) Meetings(c *gin.Context) {
	meetings, err := h.memberSvc.StaffMeetings(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKList(c, meetings, len(meetings))
}
