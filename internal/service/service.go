package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"mom-portal/backend/config"
	"mom-portal/backend/internal/repository"
	"mom-portal/backend/pkg/jwt"
	"mom-portal/backend/pkg/storage"
)

// TokenBlacklist revokes token ids until they expire
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// FileStore stores uploaded document files
type FileStore interface {
	Save(originalName string, r io.Reader) (*storage.StoredFile, error)
	// Resolve returns the on-disk path of a stored file, false when it is missing or
	// not inside the store
	Resolve(path string) (string, bool)
	Remove(path string) error
}

// Service aggregate of every service
type Service struct {
	Auth            AuthService
	Staff           StaffService
	MeetingType     MeetingTypeService
	Meeting         MeetingService
	MeetingMember   MeetingMemberService
	MeetingDocument MeetingDocumentService
	Dashboard       DashboardService
	Export          ExportService
}

// NewService creates the Service aggregate. blacklist may be nil when Redis is down.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	store FileStore,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:            NewAuthService(cfg, repo, jwtMgr, blacklist, logger),
		Staff:           NewStaffService(repo, logger),
		MeetingType:     NewMeetingTypeService(repo, logger),
		Meeting:         NewMeetingService(repo, logger),
		MeetingMember:   NewMeetingMemberService(repo, logger),
		MeetingDocument: NewMeetingDocumentService(repo, store, logger),
		Dashboard:       NewDashboardService(repo, logger),
		Export:          NewExportService(repo, logger),
	}
}
