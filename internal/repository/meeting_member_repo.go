package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mom-portal/backend/internal/model"
)

// AttendanceCount member totals of one meeting
type AttendanceCount struct {
	Total   int64
	Present int64
}

// MeetingMemberRepository attendance rows
type MeetingMemberRepository interface {
	Create(ctx context.Context, member *model.MeetingMember) error
	// CreateBatch inserts all members in one statement
	CreateBatch(ctx context.Context, members []model.MeetingMember) error
	// GetByID member with meeting and staff joined
	GetByID(ctx context.Context, id string) (*model.MeetingMember, error)
	GetByPair(ctx context.Context, meetingID, staffID string) (*model.MeetingMember, error)
	// ListByMeeting members with staff joined
	ListByMeeting(ctx context.Context, meetingID string) ([]model.MeetingMember, error)
	// ListByStaff memberships with meeting and meeting type joined, latest meeting first
	ListByStaff(ctx context.Context, staffID string) ([]model.MeetingMember, error)
	// StaffIDsInMeeting the subset of staffIDs already members of the meeting
	StaffIDsInMeeting(ctx context.Context, meetingID string, staffIDs []string) ([]string, error)
	Update(ctx context.Context, member *model.MeetingMember) error
	SetPresence(ctx context.Context, id string, isPresent bool) error
	Delete(ctx context.Context, id string) error
	CountAttendance(ctx context.Context, meetingID string) (AttendanceCount, error)
}

type meetingMemberRepo struct {
	db *gorm.DB
}

// NewMeetingMemberRepo creates a MeetingMemberRepository
func NewMeetingMemberRepo(db *gorm.DB) MeetingMemberRepository {
	return &meetingMemberRepo{db: db}
}

func (r *meetingMemberRepo) Create(ctx context.Context, member *model.MeetingMember) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(member).Error)
}

func (r *meetingMemberRepo) CreateBatch(ctx context.Context, members []model.MeetingMember) error {
	if len(members) == 0 {
		return nil
	}
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&members).Error)
}

func (r *meetingMemberRepo) GetByID(ctx context.Context, id string) (*model.MeetingMember, error) {
	var member model.MeetingMember
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Staff").
		Where("meeting_member_id = ?", id).
		First(&member).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &member, nil
}

func (r *meetingMemberRepo) GetByPair(ctx context.Context, meetingID, staffID string) (*model.MeetingMember, error) {
	var member model.MeetingMember
	err := r.db.WithContext(ctx).
		Where("meeting_id = ? AND staff_id = ?", meetingID, staffID).
		First(&member).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &member, nil
}

func (r *meetingMemberRepo) ListByMeeting(ctx context.Context, meetingID string) ([]model.MeetingMember, error) {
	var members []model.MeetingMember
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *meetingMemberRepo) ListByStaff(ctx context.Context, staffID string) ([]model.MeetingMember, error) {
	var members []model.MeetingMember
	err := r.db.WithContext(ctx).
		Joins("JOIN meetings ON meetings.meeting_id = meeting_members.meeting_id").
		Preload("Meeting").
		Preload("Meeting.MeetingType").
		Where("meeting_members.staff_id = ?", staffID).
		Order("meetings.meeting_date DESC, meetings.meeting_time DESC").
		Find(&members).Error
	return members, err
}

func (r *meetingMemberRepo) StaffIDsInMeeting(ctx context.Context, meetingID string, staffIDs []string) ([]string, error) {
	var ids []string
	if len(staffIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.MeetingMember{}).
		Where("meeting_id = ? AND staff_id IN ?", meetingID, staffIDs).
		Pluck("staff_id", &ids).Error
	return ids, err
}

func (r *meetingMemberRepo) Update(ctx context.Context, member *model.MeetingMember) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(member).Error)
}

func (r *meetingMemberRepo) SetPresence(ctx context.Context, id string, isPresent bool) error {
	res := r.db.WithContext(ctx).
		Model(&model.MeetingMember{}).
		Where("meeting_member_id = ?", id).
		Update("is_present", isPresent)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *meetingMemberRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("meeting_member_id = ?", id).
		Delete(&model.MeetingMember{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *meetingMemberRepo) CountAttendance(ctx context.Context, meetingID string) (AttendanceCount, error) {
	var c AttendanceCount
	err := r.db.WithContext(ctx).
		Model(&model.MeetingMember{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_present) AS present").
		Where("meeting_id = ?", meetingID).
		Scan(&c).Error
	return c, err
}
