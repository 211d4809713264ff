package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mom-portal/backend/config"
	"mom-portal/backend/internal/api/handler"
	"mom-portal/backend/internal/api/middleware"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/pkg/jwt"
	"mom-portal/backend/pkg/ratelimit"
)

// multipart overhead allowed on top of the upload size limit
const multipartOverhead = 1 << 20

// Setup builds the gin engine with every route.
// checker, accounts and limiter may be nil.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	checker middleware.TokenChecker,
	accounts middleware.AccountLookup,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxSize + multipartOverhead))

	// ── health ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	window := cfg.RateLimit.Window
	api := r.Group("/api")
	api.Use(middleware.RateLimit(limiter, "api", cfg.RateLimit.Requests, window, logger))

	// ── auth (public) ──
	loginLimit := middleware.RateLimit(limiter, "login", cfg.RateLimit.LoginRequests, window, logger)
	auth := api.Group("/auth")
	{
		auth.POST("/register", loginLimit, h.Auth.Register)
		auth.POST("/login", loginLimit, h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}

	authorized := api.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, checker, accounts))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/verify", h.Auth.Verify)
		authorized.GET("/auth/profile", h.Auth.GetProfile)
		authorized.PUT("/auth/profile", h.Auth.UpdateProfile)
		authorized.PUT("/auth/change-password", h.Auth.ChangePassword)

		// staff directory
		staff := authorized.Group("/staff")
		{
			staff.GET("", h.Staff.List)
			staff.POST("", middleware.RoleAuth(model.StaffManagers...), h.Staff.Create)
			staff.GET("/:id", h.Staff.Get)
			staff.PUT("/:id", middleware.RoleAuth(model.StaffManagers...), h.Staff.Update)
			staff.DELETE("/:id", middleware.RoleAuth(model.AdminOnly...), h.Staff.Delete)
			staff.GET("/:id/meetings", h.Staff.Meetings)
		}

		// meeting types
		types := authorized.Group("/meeting-types")
		{
			types.GET("", h.MeetingType.List)
			types.POST("", middleware.RoleAuth(model.MeetingTypeManagers...), h.MeetingType.Create)
			types.GET("/:id", h.MeetingType.Get)
			types.PUT("/:id", middleware.RoleAuth(model.MeetingTypeManagers...), h.MeetingType.Update)
			types.DELETE("/:id", middleware.RoleAuth(model.AdminOnly...), h.MeetingType.Delete)
		}

		// meetings with their members and documents
		meetings := authorized.Group("/meetings")
		{
			meetings.GET("", h.Meeting.List)
			meetings.POST("", middleware.RoleAuth(model.MeetingEditors...), h.Meeting.Create)
			meetings.GET("/stats", h.Meeting.Stats)
			meetings.GET("/upcoming", h.Meeting.Upcoming)
			meetings.GET("/upcoming/ics", h.Meeting.UpcomingCalendar)
			meetings.GET("/:id", h.Meeting.Get)
			meetings.PUT("/:id", middleware.RoleAuth(model.MeetingEditors...), h.Meeting.Update)
			meetings.DELETE("/:id", middleware.RoleAuth(model.AdminOnly...), h.Meeting.Delete)
			meetings.PUT("/:id/cancel", middleware.RoleAuth(model.MeetingEditors...), h.Meeting.Cancel)
			meetings.GET("/:id/ics", h.Meeting.Calendar)

			meetings.GET("/:id/members", h.MeetingMember.ListByMeeting)
			meetings.POST("/:id/members", middleware.RoleAuth(model.MeetingEditors...), h.MeetingMember.Add)
			meetings.POST("/:id/members/bulk", middleware.RoleAuth(model.MeetingEditors...), h.MeetingMember.AddBulk)
			meetings.GET("/:id/attendance", h.MeetingMember.Attendance)

			meetings.GET("/:id/documents", h.MeetingDocument.ListByMeeting)
			meetings.POST("/:id/documents", middleware.RoleAuth(model.MeetingEditors...), h.MeetingDocument.Add)
			meetings.PUT("/:id/documents/reorder", middleware.RoleAuth(model.MeetingEditors...), h.MeetingDocument.Reorder)
			meetings.GET("/:id/documents/stats", h.MeetingDocument.Stats)
		}

		members := authorized.Group("/meeting-members")
		{
			members.GET("/:id", h.MeetingMember.Get)
			members.PUT("/:id", middleware.RoleAuth(model.MeetingEditors...), h.MeetingMember.Update)
			members.DELETE("/:id", middleware.RoleAuth(model.MeetingEditors...), h.MeetingMember.Remove)
			members.PUT("/:id/attendance", middleware.RoleAuth(model.MeetingEditors...), h.MeetingMember.MarkAttendance)
		}

		documents := authorized.Group("/meeting-documents")
		{
			documents.GET("/:id", h.MeetingDocument.Get)
			documents.PUT("/:id", middleware.RoleAuth(model.MeetingEditors...), h.MeetingDocument.Update)
			documents.DELETE("/:id", middleware.RoleAuth(model.MeetingEditors...), h.MeetingDocument.Delete)
		}

		// file transfer
		upload := authorized.Group("/upload")
		{
			upload.POST("/document", middleware.RoleAuth(model.MeetingEditors...), h.Upload.Upload)
			upload.POST("/document/:documentId", middleware.RoleAuth(model.MeetingEditors...), h.Upload.Attach)
			upload.GET("/document/:documentId", h.Upload.Download)
			upload.DELETE("/document/:documentId", middleware.RoleAuth(model.MeetingEditors...), h.Upload.Delete)
		}

		dashboard := authorized.Group("/dashboard")
		{
			dashboard.GET("/overview", h.Dashboard.Overview)
			dashboard.GET("/analytics", h.Dashboard.Analytics)
			dashboard.GET("/staff-performance", h.Dashboard.StaffPerformance)
			dashboard.GET("/meeting-types", h.Dashboard.MeetingTypes)
			dashboard.GET("/recent-activity", h.Dashboard.RecentActivity)
		}

		export := authorized.Group("/export")
		{
			export.GET("/meetings", h.Export.ExportMeetings)
			export.GET("/meetings/:id/attendance", h.Export.ExportAttendance)
		}
	}

	return r
}
