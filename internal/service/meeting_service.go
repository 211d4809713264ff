package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
	apperrors "mom-portal/backend/pkg/errors"
)

var (
	ErrMeetingNotFound         = apperrors.NotFound("Meeting not found")
	ErrMeetingTitleRequired    = apperrors.Validation("Meeting title is required")
	ErrMeetingAlreadyCancelled = apperrors.State("Meeting is already cancelled")
	ErrCancelCompletedMeeting  = apperrors.State("Cannot cancel a completed meeting")
	ErrInvalidStatusTransition = apperrors.State("Invalid meeting status transition")
	ErrCancelThroughUpdate     = apperrors.State("Use the cancel endpoint to cancel a meeting")
	ErrInvalidMeetingDate      = apperrors.Validation("Meeting date must be in YYYY-MM-DD format")
	ErrInvalidDateRange        = apperrors.Validation("Start date must not be after end date")
)

const defaultUpcomingLimit = 5

// MeetingService meeting lifecycle and queries
type MeetingService interface {
	List(ctx context.Context, req *dto.MeetingListRequest) (*dto.PageResult[dto.MeetingResponse], error)
	// GetByID meeting with type, members and documents
	GetByID(ctx context.Context, id string) (*dto.MeetingResponse, error)
	Create(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error)
	Cancel(ctx context.Context, id string, req *dto.CancelMeetingRequest) (*dto.MeetingResponse, error)
	// Delete removes the meeting with its members and documents
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.MeetingStatsResponse, error)
	Upcoming(ctx context.Context, limit int) ([]dto.MeetingResponse, error)
	// Calendar single meeting as an iCalendar file
	Calendar(ctx context.Context, id string) ([]byte, string, error)
	// UpcomingCalendar upcoming meetings as one iCalendar file
	UpcomingCalendar(ctx context.Context, limit int) ([]byte, string, error)
}

type meetingService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
	loc    *time.Location
}

// NewMeetingService creates a MeetingService
func NewMeetingService(repo *repository.Repository, logger *zap.Logger) MeetingService {
	return &meetingService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		loc:    time.Local,
	}
}

// today midnight UTC of the current date, matching DATE columns
func (s *meetingService) today() time.Time {
	return dateOf(s.now())
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidMeetingDate
	}
	return t, nil
}

// meetingFilter list filters of req without paging
func meetingFilter(req *dto.MeetingListRequest) (repository.MeetingFilter, error) {
	filter := repository.MeetingFilter{
		Search:        strings.TrimSpace(req.Search),
		Status:        model.MeetingStatus(req.Status),
		MeetingTypeID: req.MeetingTypeID,
	}
	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return filter, ErrInvalidDateRange
	}
	return filter, nil
}

// ────── List ──────

func (s *meetingService) List(ctx context.Context, req *dto.MeetingListRequest) (*dto.PageResult[dto.MeetingResponse], error) {
	filter, err := meetingFilter(req)
	if err != nil {
		return nil, err
	}
	filter.Offset = req.GetOffset()
	filter.Limit = req.GetLimit()

	meetings, total, err := s.repo.Meeting.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list meetings", zap.Error(err))
		return nil, err
	}

	return &dto.PageResult[dto.MeetingResponse]{
		Items: toMeetingResponses(meetings),
		Total: total,
		Page:  req.GetPage(),
		Limit: req.GetLimit(),
	}, nil
}

// ────── GetByID ──────

func (s *meetingService) GetByID(ctx context.Context, id string) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.Meeting.GetDetail(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// ────── Create ──────

func (s *meetingService) Create(ctx context.Context, req *dto.CreateMeetingRequest) (*dto.MeetingResponse, error) {
	title, err := requiredText(req.MeetingTitle, ErrMeetingTitleRequired)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(req.MeetingDate)
	if err != nil {
		return nil, err
	}

	mt, err := s.loadType(ctx, req.MeetingTypeID)
	if err != nil {
		return nil, err
	}

	meeting := &model.Meeting{
		MeetingDate:        date,
		MeetingTime:        req.MeetingTime,
		MeetingTypeID:      mt.MeetingTypeID,
		MeetingTitle:       title,
		MeetingDescription: req.MeetingDescription,
		DocumentPath:       req.DocumentPath,
		Remarks:            req.Remarks,
		Status:             model.StatusScheduled,
	}
	if err := s.repo.Meeting.Create(ctx, meeting); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, ErrMeetingTypeNotFound
		}
		s.logger.Error("failed to create meeting", zap.Error(err))
		return nil, err
	}
	meeting.MeetingType = mt

	s.logger.Info("meeting created", zap.String("meeting_id", meeting.MeetingID))
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// ────── Update ──────

func (s *meetingService) Update(ctx context.Context, id string, req *dto.UpdateMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.Meeting.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	if req.Status != nil {
		next := model.MeetingStatus(*req.Status)
		if next == model.StatusCancelled && meeting.Status != model.StatusCancelled {
			return nil, ErrCancelThroughUpdate
		}
		if !meeting.Status.CanTransitionTo(next) {
			return nil, ErrInvalidStatusTransition
		}
		meeting.Status = next
	}
	if req.MeetingDate != nil {
		date, err := parseDate(*req.MeetingDate)
		if err != nil {
			return nil, err
		}
		meeting.MeetingDate = date
	}
	if req.MeetingTime != nil {
		meeting.MeetingTime = *req.MeetingTime
	}
	if req.MeetingTypeID != nil && *req.MeetingTypeID != meeting.MeetingTypeID {
		mt, err := s.loadType(ctx, *req.MeetingTypeID)
		if err != nil {
			return nil, err
		}
		meeting.MeetingTypeID = mt.MeetingTypeID
		meeting.MeetingType = mt
	}
	if req.MeetingTitle != nil {
		title, err := requiredText(*req.MeetingTitle, ErrMeetingTitleRequired)
		if err != nil {
			return nil, err
		}
		meeting.MeetingTitle = title
	}
	if req.MeetingDescription != nil {
		meeting.MeetingDescription = *req.MeetingDescription
	}
	if req.DocumentPath != nil {
		meeting.DocumentPath = *req.DocumentPath
	}
	if req.Remarks != nil {
		meeting.Remarks = *req.Remarks
	}

	if err := s.repo.Meeting.Update(ctx, meeting); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return nil, ErrMeetingTypeNotFound
		}
		s.logger.Error("failed to update meeting", zap.String("meeting_id", id), zap.Error(err))
		return nil, err
	}

	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// ────── Cancel ──────

func (s *meetingService) Cancel(ctx context.Context, id string, req *dto.CancelMeetingRequest) (*dto.MeetingResponse, error) {
	meeting, err := s.repo.Meeting.GetByID(ctx, id)
	if err != nil {
		return nil, s.notFound(err, id)
	}

	switch meeting.Status {
	case model.StatusCancelled:
		return nil, ErrMeetingAlreadyCancelled
	case model.StatusCompleted:
		return nil, ErrCancelCompletedMeeting
	}

	now := s.now().UTC()
	meeting.Status = model.StatusCancelled
	meeting.CancellationDateTime = &now
	meeting.CancellationReason = strings.TrimSpace(req.CancellationReason)

	if err := s.repo.Meeting.Update(ctx, meeting); err != nil {
		s.logger.Error("failed to cancel meeting", zap.String("meeting_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("meeting cancelled", zap.String("meeting_id", id))
	resp := toMeetingResponse(meeting)
	return &resp, nil
}

// ────── Delete ──────

func (s *meetingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Meeting.DeleteCascade(ctx, id); err != nil {
		return s.notFound(err, id)
	}
	s.logger.Info("meeting deleted", zap.String("meeting_id", id))
	return nil
}

// ────── Stats ──────

func (s *meetingService) Stats(ctx context.Context) (*dto.MeetingStatsResponse, error) {
	byStatus, err := s.repo.Meeting.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("failed to count meetings by status", zap.Error(err))
		return nil, err
	}
	upcoming, err := s.repo.Meeting.CountUpcoming(ctx, s.today())
	if err != nil {
		s.logger.Error("failed to count upcoming meetings", zap.Error(err))
		return nil, err
	}

	stats := &dto.MeetingStatsResponse{
		Scheduled: byStatus[model.StatusScheduled],
		Ongoing:   byStatus[model.StatusOngoing],
		Completed: byStatus[model.StatusCompleted],
		Cancelled: byStatus[model.StatusCancelled],
		Upcoming:  upcoming,
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	return stats, nil
}

// ────── Upcoming ──────

func (s *meetingService) Upcoming(ctx context.Context, limit int) ([]dto.MeetingResponse, error) {
	meetings, err := s.upcoming(ctx, limit)
	if err != nil {
		return nil, err
	}
	return toMeetingResponses(meetings), nil
}

func (s *meetingService) upcoming(ctx context.Context, limit int) ([]model.Meeting, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	meetings, err := s.repo.Meeting.Upcoming(ctx, s.today(), limit)
	if err != nil {
		s.logger.Error("failed to list upcoming meetings", zap.Error(err))
		return nil, err
	}
	return meetings, nil
}

// ────── Calendar ──────

func (s *meetingService) Calendar(ctx context.Context, id string) ([]byte, string, error) {
	meeting, err := s.repo.Meeting.GetByID(ctx, id)
	if err != nil {
		return nil, "", s.notFound(err, id)
	}
	cal := buildCalendar([]model.Meeting{*meeting}, s.loc, s.now())
	return []byte(cal), "meeting-" + meeting.MeetingID + ".ics", nil
}

func (s *meetingService) UpcomingCalendar(ctx context.Context, limit int) ([]byte, string, error) {
	meetings, err := s.upcoming(ctx, limit)
	if err != nil {
		return nil, "", err
	}
	cal := buildCalendar(meetings, s.loc, s.now())
	return []byte(cal), "upcoming-meetings.ics", nil
}

// ── helpers ──

func (s *meetingService) notFound(err error, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMeetingNotFound
	}
	s.logger.Error("failed to load meeting", zap.String("meeting_id", id), zap.Error(err))
	return err
}

func (s *meetingService) loadType(ctx context.Context, id string) (*model.MeetingType, error) {
	mt, err := s.repo.MeetingType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingTypeNotFound
		}
		s.logger.Error("failed to load meeting type", zap.String("meeting_type_id", id), zap.Error(err))
		return nil, err
	}
	return mt, nil
}
