package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
	apperrors "mom-portal/backend/pkg/errors"
)

var (
	ErrMemberNotFound    = apperrors.NotFound("Meeting member not found")
	ErrMemberExists      = apperrors.Conflict("Staff member is already added to this meeting")
	ErrNoStaffIDs        = apperrors.Validation("Please provide an array of staff IDs")
	ErrAllMembersExist   = apperrors.Conflict("All staff members are already added to this meeting")
	ErrSomeStaffNotFound = apperrors.NotFound("One or more staff members not found")
)

// MeetingMemberService meeting attendees and attendance
type MeetingMemberService interface {
	Add(ctx context.Context, meetingID string, req *dto.AddMeetingMemberRequest) (*dto.MeetingMemberResponse, error)
	// AddBulk adds every staff member not yet in the meeting, absent by default
	AddBulk(ctx context.Context, meetingID string, staffIDs []string) ([]dto.MeetingMemberResponse, error)
	MarkAttendance(ctx context.Context, memberID string, isPresent bool) (*dto.MeetingMemberResponse, error)
	Update(ctx context.Context, memberID string, req *dto.UpdateMeetingMemberRequest) (*dto.MeetingMemberResponse, error)
	GetByID(ctx context.Context, memberID string) (*dto.MeetingMemberResponse, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]dto.MeetingMemberResponse, error)
	Remove(ctx context.Context, memberID string) error
	Attendance(ctx context.Context, meetingID string) (*dto.AttendanceResponse, error)
	// StaffMeetings a staff member's meetings, latest first
	StaffMeetings(ctx context.Context, staffID string) ([]dto.StaffMeetingResponse, error)
}

type meetingMemberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMeetingMemberService creates a MeetingMemberService
func NewMeetingMemberService(repo *repository.Repository, logger *zap.Logger) MeetingMemberService {
	return &meetingMemberService{repo: repo, logger: logger}
}

// ────── Add ──────

func (s *meetingMemberService) Add(ctx context.Context, meetingID string, req *dto.AddMeetingMemberRequest) (*dto.MeetingMemberResponse, error) {
	meeting, err := s.loadMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	staff, err := s.repo.Staff.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("failed to load staff", zap.String("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.MeetingMember.GetByPair(ctx, meetingID, staff.StaffID); err == nil {
		return nil, ErrMemberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to look up meeting member", zap.Error(err))
		return nil, err
	}

	member := &model.MeetingMember{
		MeetingID: meetingID,
		StaffID:   staff.StaffID,
		IsPresent: req.IsPresent,
		Remarks:   req.Remarks,
	}
	if err := s.repo.MeetingMember.Create(ctx, member); err != nil {
		// a concurrent add of the same pair loses on the unique constraint
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMemberExists
		}
		s.logger.Error("failed to add meeting member", zap.Error(err))
		return nil, err
	}
	member.Meeting = meeting
	member.Staff = staff

	resp := toMeetingMemberResponse(member)
	return &resp, nil
}

// ────── AddBulk ──────

func (s *meetingMemberService) AddBulk(ctx context.Context, meetingID string, staffIDs []string) ([]dto.MeetingMemberResponse, error) {
	if len(staffIDs) == 0 {
		return nil, ErrNoStaffIDs
	}
	if _, err := s.loadMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	ids := uniqueIDs(staffIDs)

	existing, err := s.repo.MeetingMember.StaffIDsInMeeting(ctx, meetingID, ids)
	if err != nil {
		s.logger.Error("failed to load existing members", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}
	present := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		present[id] = struct{}{}
	}

	var toAdd []string
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	if len(toAdd) == 0 {
		return nil, ErrAllMembersExist
	}

	found, err := s.repo.Staff.CountByIDs(ctx, toAdd)
	if err != nil {
		s.logger.Error("failed to verify staff ids", zap.Error(err))
		return nil, err
	}
	if found != int64(len(toAdd)) {
		return nil, ErrSomeStaffNotFound
	}

	members := make([]model.MeetingMember, 0, len(toAdd))
	for _, id := range toAdd {
		members = append(members, model.MeetingMember{MeetingID: meetingID, StaffID: id})
	}
	if err := s.repo.MeetingMember.CreateBatch(ctx, members); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrMemberExists
		case errors.Is(err, repository.ErrReferenced):
			return nil, ErrSomeStaffNotFound
		}
		s.logger.Error("failed to add meeting members", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("meeting members added",
		zap.String("meeting_id", meetingID),
		zap.Int("count", len(members)),
	)

	result := make([]dto.MeetingMemberResponse, 0, len(members))
	for i := range members {
		result = append(result, toMeetingMemberResponse(&members[i]))
	}
	return result, nil
}

// ────── MarkAttendance ──────

func (s *meetingMemberService) MarkAttendance(ctx context.Context, memberID string, isPresent bool) (*dto.MeetingMemberResponse, error) {
	if err := s.repo.MeetingMember.SetPresence(ctx, memberID, isPresent); err != nil {
		return nil, s.memberErr(err, memberID)
	}
	return s.GetByID(ctx, memberID)
}

// ────── Update ──────

func (s *meetingMemberService) Update(ctx context.Context, memberID string, req *dto.UpdateMeetingMemberRequest) (*dto.MeetingMemberResponse, error) {
	member, err := s.repo.MeetingMember.GetByID(ctx, memberID)
	if err != nil {
		return nil, s.memberErr(err, memberID)
	}

	if req.IsPresent != nil {
		member.IsPresent = *req.IsPresent
	}
	if req.Remarks != nil {
		member.Remarks = *req.Remarks
	}

	if err := s.repo.MeetingMember.Update(ctx, member); err != nil {
		s.logger.Error("failed to update meeting member", zap.String("member_id", memberID), zap.Error(err))
		return nil, err
	}

	resp := toMeetingMemberResponse(member)
	return &resp, nil
}

// ────── GetByID ──────

func (s *meetingMemberService) GetByID(ctx context.Context, memberID string) (*dto.MeetingMemberResponse, error) {
	member, err := s.repo.MeetingMember.GetByID(ctx, memberID)
	if err != nil {
		return nil, s.memberErr(err, memberID)
	}
	resp := toMeetingMemberResponse(member)
	return &resp, nil
}

// ────── ListByMeeting ──────

func (s *meetingMemberService) ListByMeeting(ctx context.Context, meetingID string) ([]dto.MeetingMemberResponse, error) {
	if _, err := s.loadMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	members, err := s.repo.MeetingMember.ListByMeeting(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to list meeting members", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.MeetingMemberResponse, 0, len(members))
	for i := range members {
		result = append(result, toMeetingMemberResponse(&members[i]))
	}
	return result, nil
}

// ────── Remove ──────

func (s *meetingMemberService) Remove(ctx context.Context, memberID string) error {
	if err := s.repo.MeetingMember.Delete(ctx, memberID); err != nil {
		return s.memberErr(err, memberID)
	}
	return nil
}

// ────── Attendance ──────

func (s *meetingMemberService) Attendance(ctx context.Context, meetingID string) (*dto.AttendanceResponse, error) {
	if _, err := s.loadMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	count, err := s.repo.MeetingMember.CountAttendance(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to count attendance", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	return &dto.AttendanceResponse{
		Total:                count.Total,
		Present:              count.Present,
		Absent:               count.Total - count.Present,
		AttendancePercentage: percentage(count.Present, count.Total),
	}, nil
}

// ────── StaffMeetings ──────

func (s *meetingMemberService) StaffMeetings(ctx context.Context, staffID string) ([]dto.StaffMeetingResponse, error) {
	if _, err := s.repo.Staff.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("failed to load staff", zap.String("staff_id", staffID), zap.Error(err))
		return nil, err
	}

	members, err := s.repo.MeetingMember.ListByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("failed to list staff meetings", zap.String("staff_id", staffID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffMeetingResponse, 0, len(members))
	for i := range members {
		item := dto.StaffMeetingResponse{
			MeetingMemberID: members[i].MeetingMemberID,
			IsPresent:       members[i].IsPresent,
			Remarks:         members[i].Remarks,
		}
		if members[i].Meeting != nil {
			m := toMeetingResponse(members[i].Meeting)
			item.Meeting = &m
		}
		result = append(result, item)
	}
	return result, nil
}

// ── helpers ──

func (s *meetingMemberService) loadMeeting(ctx context.Context, meetingID string) (*model.Meeting, error) {
	meeting, err := s.repo.Meeting.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("failed to load meeting", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}
	return meeting, nil
}

func (s *meetingMemberService) memberErr(err error, memberID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	s.logger.Error("meeting member operation failed", zap.String("member_id", memberID), zap.Error(err))
	return err
}

// uniqueIDs lower-cases ids to the form the store returns and keeps the first
// occurrence of each
func uniqueIDs(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
