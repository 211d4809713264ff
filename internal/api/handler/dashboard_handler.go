package handler

import (
	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/response"
)

// DashboardHandler read-only aggregate endpoints
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	errorResponder
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService, e errorResponder) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, errorResponder: e}
}

// Overview GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	result, err := h.dashboardSvc.Overview(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}
	response.OK(c, result)
}

// Analytics GET /api/dashboard/analytics?period=7d|30d|90d|1y
func (h *DashboardHandler) Analytics(c *gin.Context) {
	var req dto.DashboardPeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.dashboardSvc.Analytics(c.Request.Context(), req.Period)
	if err != nil {
		h.respond(c, err)
		return
	}
	response.OK(c, result)
}

// StaffPerformance GET /api/dashboard/staff-performance?period=
func (h *DashboardHandler) StaffPerformance(c *gin.Context) {
	var req dto.DashboardPeriodRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.dashboardSvc.StaffPerformance(c.Request.Context(), req.Period)
	if err != nil {
		h.respond(c, err)
		return
	}
	response.OK(c, result)
}

// MeetingTypes GET /api/dashboard/meeting-types
func (h *DashboardHandler) MeetingTypes(c *gin.Context) {
	result, err := h.dashboardSvc.MeetingTypeAnalytics(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}
	response.OK(c, result)
}

// RecentActivity GET /api/dashboard/recent-activity?limit=
func (h *DashboardHandler) RecentActivity(c *gin.Context) {
	var req dto.RecentActivityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindFailed(c, err)
		return
	}

	result, err := h.dashboardSvc.RecentActivity(c.Request.Context(), req.Limit)
	if err != nil {
		h.respond(c, err)
		return
	}
	response.OK(c, result)
}
