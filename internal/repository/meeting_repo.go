package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mom-portal/backend/internal/model"
)

// MeetingFilter list criteria; zero values are ignored
type MeetingFilter struct {
	Search        string
	Status        model.MeetingStatus
	MeetingTypeID string
	StartDate     *time.Time
	EndDate       *time.Time
	Offset        int
	Limit         int
}

// MeetingRepository meetings and their cascade
type MeetingRepository interface {
	Create(ctx context.Context, meeting *model.Meeting) error
	GetByID(ctx context.Context, id string) (*model.Meeting, error)
	// GetDetail meeting with type, members (with staff) and documents by sequence
	GetDetail(ctx context.Context, id string) (*model.Meeting, error)
	List(ctx context.Context, filter MeetingFilter) ([]model.Meeting, int64, error)
	Update(ctx context.Context, meeting *model.Meeting) error
	// DeleteCascade removes members, documents and the meeting in one transaction
	DeleteCascade(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[model.MeetingStatus]int64, error)
	// CountUpcoming scheduled meetings on or after today
	CountUpcoming(ctx context.Context, today time.Time) (int64, error)
	// Upcoming scheduled meetings on or after today by date and time
	Upcoming(ctx context.Context, today time.Time, limit int) ([]model.Meeting, error)
}

type meetingRepo struct {
	db *gorm.DB
}

// NewMeetingRepo creates a MeetingRepository
func NewMeetingRepo(db *gorm.DB) MeetingRepository {
	return &meetingRepo{db: db}
}

func (r *meetingRepo) Create(ctx context.Context, meeting *model.Meeting) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(meeting).Error)
}

func (r *meetingRepo) GetByID(ctx context.Context, id string) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Where("meeting_id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &meeting, nil
}

func (r *meetingRepo) GetDetail(ctx context.Context, id string) (*model.Meeting, error) {
	var meeting model.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("meeting_members.created_at ASC")
		}).
		Preload("Members.Staff").
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("meeting_documents.sequence ASC, meeting_documents.created_at ASC")
		}).
		Preload("Documents.Uploader").
		Where("meeting_id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &meeting, nil
}

func (r *meetingRepo) List(ctx context.Context, f MeetingFilter) ([]model.Meeting, int64, error) {
	var meetings []model.Meeting
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Meeting{})
	if f.Search != "" {
		p := likePattern(f.Search)
		db = db.Where("meeting_title ILIKE ? OR meeting_description ILIKE ?", p, p)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.MeetingTypeID != "" {
		db = db.Where("meeting_type_id = ?", f.MeetingTypeID)
	}
	if f.StartDate != nil {
		db = db.Where("meeting_date >= ?", f.StartDate.Format("2006-01-02"))
	}
	if f.EndDate != nil {
		db = db.Where("meeting_date <= ?", f.EndDate.Format("2006-01-02"))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	if err := db.Preload("MeetingType").
		Order("meeting_date DESC, meeting_time DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&meetings).Error; err != nil {
		return nil, 0, translateError(err)
	}

	return meetings, total, nil
}

func (r *meetingRepo) Update(ctx context.Context, meeting *model.Meeting) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(meeting).Error)
}

func (r *meetingRepo) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&model.MeetingMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&model.MeetingDocument{}).Error; err != nil {
			return err
		}
		res := tx.Where("meeting_id = ?", id).Delete(&model.Meeting{})
		if res.Error != nil {
			return translateError(res.Error)
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *meetingRepo) CountByStatus(ctx context.Context) (map[model.MeetingStatus]int64, error) {
	var rows []struct {
		Status model.MeetingStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Meeting{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	counts := make(map[model.MeetingStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *meetingRepo) CountUpcoming(ctx context.Context, today time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Meeting{}).
		Where("status = ? AND meeting_date >= ?", model.StatusScheduled, today.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *meetingRepo) Upcoming(ctx context.Context, today time.Time, limit int) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Where("status = ? AND meeting_date >= ?", model.StatusScheduled, today.Format("2006-01-02")).
		Order("meeting_date ASC, meeting_time ASC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}
