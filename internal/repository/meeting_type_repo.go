package repository

import (
	"context"

	"gorm.io/gorm"

	"mom-portal/backend/internal/model"
)

// MeetingTypeRepository meeting type registry
type MeetingTypeRepository interface {
	Create(ctx context.Context, mt *model.MeetingType) error
	GetByID(ctx context.Context, id string) (*model.MeetingType, error)
	GetByName(ctx context.Context, name string) (*model.MeetingType, error)
	List(ctx context.Context, search string) ([]model.MeetingType, error)
	Update(ctx context.Context, mt *model.MeetingType) error
	Delete(ctx context.Context, id string) error
	CountMeetings(ctx context.Context, id string) (int64, error)
}

type meetingTypeRepo struct {
	db *gorm.DB
}

// NewMeetingTypeRepo creates a MeetingTypeRepository
func NewMeetingTypeRepo(db *gorm.DB) MeetingTypeRepository {
	return &meetingTypeRepo{db: db}
}

func (r *meetingTypeRepo) Create(ctx context.Context, mt *model.MeetingType) error {
	return translateError(r.db.WithContext(ctx).Create(mt).Error)
}

func (r *meetingTypeRepo) GetByID(ctx context.Context, id string) (*model.MeetingType, error) {
	var mt model.MeetingType
	err := r.db.WithContext(ctx).
		Where("meeting_type_id = ?", id).
		First(&mt).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &mt, nil
}

// GetByName exact, case-sensitive match
func (r *meetingTypeRepo) GetByName(ctx context.Context, name string) (*model.MeetingType, error) {
	var mt model.MeetingType
	err := r.db.WithContext(ctx).
		Where("meeting_type_name = ?", name).
		First(&mt).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &mt, nil
}

func (r *meetingTypeRepo) List(ctx context.Context, search string) ([]model.MeetingType, error) {
	var types []model.MeetingType
	db := r.db.WithContext(ctx)
	if search != "" {
		db = db.Where("meeting_type_name ILIKE ?", likePattern(search))
	}
	err := db.Order("meeting_type_name ASC").Find(&types).Error
	return types, err
}

func (r *meetingTypeRepo) Update(ctx context.Context, mt *model.MeetingType) error {
	return translateError(r.db.WithContext(ctx).Save(mt).Error)
}

func (r *meetingTypeRepo) Delete(ctx context.Context, id string) error {
	return translateError(r.db.WithContext(ctx).
		Where("meeting_type_id = ?", id).
		Delete(&model.MeetingType{}).Error)
}

func (r *meetingTypeRepo) CountMeetings(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Meeting{}).
		Where("meeting_type_id = ?", id).
		Count(&count).Error
	return count, err
}
