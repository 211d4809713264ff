package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// MeetingTypeHandler meeting type endpoints
type MeetingTypeHandler struct {
	typeSvc service.MeetingTypeService
	errorResponder
}

// NewMeetingTypeHandler creates a MeetingTypeHandler
func NewMeetingTypeHandler(typeSvc service.MeetingTypeService, e errorResponder) *MeetingTypeHandler {
	return &MeetingTypeHandler{typeSvc: typeSvc, errorResponder: e}
}

// List GET /api/meeting-types?search=
func (h *MeetingTypeHandler) List(c *gin.Context) {
	var req dto.MeetingTypeListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	types, err := h.typeSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKList(c, types, len(types))
}

// Get GET /api/meeting-types/:id
func (h *MeetingTypeHandler) Get(c *gin.Context) {
	mt, err := h.typeSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OK(c, mt)
}

// Create POST /api/meeting-types
func (h *MeetingTypeHandler) Create(c *gin.Context) {
	var req dto.CreateMeetingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	mt, err := h.typeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.Created(c, "Meeting type created successfully", mt)
}

// Update PUT /api/meeting-types/:id
func (h *MeetingTypeHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	mt, err := h.typeSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting type updated successfully", mt)
}

// Delete DELETE /api/meeting-types/:id
func (h *MeetingTypeHandler) Delete(c *gin.Context) {
	if err := h.typeSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respond(c, err)
		return
	}

	response.OKMessage(c, "Meeting type deleted successfully", nil)
}
