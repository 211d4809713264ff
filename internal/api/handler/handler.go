package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mom-portal/backend/internal/service"
	apperrors "mom-portal/backend/pkg/errors"
	"mom-portal/backend/pkg/response"
)

// Handler aggregate of every HTTP handler
type Handler struct {
	Auth            *AuthHandler
	Staff           *StaffHandler
	MeetingType     *MeetingTypeHandler
	Meeting         *MeetingHandler
	MeetingMember   *MeetingMemberHandler
	MeetingDocument *MeetingDocumentHandler
	Upload          *UploadHandler
	Dashboard       *DashboardHandler
	Export          *ExportHandler
}

// NewHandler creates the Handler aggregate.
// With debug set, 500 responses carry the underlying error text.
func NewHandler(svc *service.Service, debug bool) *Handler {
	e := errorResponder{debug: debug}
	return &Handler{
		Auth:            NewAuthHandler(svc.Auth, e),
		Staff:           NewStaffHandler(svc.Staff, svc.MeetingMember, e),
		MeetingType:     NewMeetingTypeHandler(svc.MeetingType, e),
		Meeting:         NewMeetingHandler(svc.Meeting, e),
		MeetingMember:   NewMeetingMemberHandler(svc.MeetingMember, e),
		MeetingDocument: NewMeetingDocumentHandler(svc.MeetingDocument, e),
		Upload:          NewUploadHandler(svc.MeetingDocument, e),
		Dashboard:       NewDashboardHandler(svc.Dashboard, e),
		Export:          NewExportHandler(svc.Export, e),
	}
}

// errorResponder writes service errors into the response envelope
type errorResponder struct {
	debug bool
}

// respond maps err to its status through the error kind
func (e errorResponder) respond(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	status := kind.HTTPStatus()

	if kind == apperrors.KindInternal {
		msg := apperrors.MessageOf(err)
		if msg == "" {
			msg = "Internal server error"
		}
		_ = c.Error(err)
		if e.debug {
			response.ErrorWithDetails(c, status, msg, err.Error())
			return
		}
		response.Error(c, status, msg)
		return
	}

	response.Error(c, status, apperrors.MessageOf(err))
}

// bindFailed answers a request that failed binding or validation
func (e errorResponder) bindFailed(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	response.ErrorWithDetails(c, http.StatusBadRequest, "Validation failed", err.Error())
}
