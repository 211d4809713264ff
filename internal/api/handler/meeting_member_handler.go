package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// MeetingMemberHandler attendance endpoints
type MeetingMemberHandler struct {
	memberSvc service.MeetingMemberService
	errorResponder
}

// NewMeetingMemberHandler creates a MeetingMemberHandler
func NewMeetingMemberHandler(memberSvc service.MeetingMemberService, e errorResponder) *MeetingMemberHandler {
	return &MeetingMemberHandler{memberSvc: memberSvc, errorResponder: e}
}

// ListByMeeting GET /api/meetings/:id/members
func (h *MeetingMemberHandler) ListByMeeting(c *gin.Context) {
	members, err := h.memberSvc.ListByMeeting(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKList(c, members, len(members))
}

// Add POST /api/meetings/:id/members
func (h *MeetingMemberHandler) Add(c *gin.Context) {
	var req dto.AddMeetingMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	member, err := h.memberSvc.Add(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Member added to meeting successfully", member)
}

// AddBulk POST /api/meetings/:id/members/bulk
func (h *MeetingMemberHandler) AddBulk(c *gin.Context) {
	var req dto.BulkAddMeetingMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	members, err := h.memberSvc.AddBulk(c.Request.Context(), c.Param("id"), req.StaffIDs)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Members added to meeting successfully", members)
}

// Attendance GET /api/meetings/:id/attendance
func (h *MeetingMemberHandler) Attendance(c *gin.Context) {
	stats, err := h.memberSvc.Attendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, stats)
}

// Get GET /api/meeting-members/:id
func (h *MeetingMemberHandler) Get(c *gin.Context) {
	member, err := h.memberSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, member)
}

// Update PUT /api/meeting-members/:id
func (h *MeetingMemberHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	member, err := h.memberSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting member updated successfully", member)
}

// MarkAttendance PUT /api/meeting-members/:id/attendance
func (h *MeetingMemberHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	member, err := h.memberSvc.MarkAttendance(c.Request.Context(), c.Param("id"), *req.IsPresent)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Attendance marked successfully", member)
}

// Remove DELETE /api/meeting-members/:id
func (h *MeetingMemberHandler) Remove(c *gin.Context) {
	if err := h.memberSvc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Member removed from meeting successfully", nil)
}
