package repository

import (
	"context"

	"gorm.io/gorm"

	"mom-portal/backend/internal/model"
)

// StaffRepository staff directory
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	GetByEmail(ctx context.Context, email string) (*model.Staff, error)
	List(ctx context.Context, search string, offset, limit int) ([]model.Staff, int64, error)
	// CountByIDs number of the given ids that exist
	CountByIDs(ctx context.Context, ids []string) (int64, error)
	Update(ctx context.Context, staff *model.Staff) error
	Delete(ctx context.Context, id string) error
	// CountMemberships meeting_members rows referencing the staff member
	CountMemberships(ctx context.Context, id string) (int64, error)
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates a StaffRepository
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return translateError(r.db.WithContext(ctx).Create(staff).Error)
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &staff, nil
}

func (r *staffRepo) GetByEmail(ctx context.Context, email string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("email_address = ?", email).
		First(&staff).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context, search string, offset, limit int) ([]model.Staff, int64, error) {
	var staff []model.Staff
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Staff{})
	if search != "" {
		p := likePattern(search)
		db = db.Where("staff_name ILIKE ? OR email_address ILIKE ? OR mobile_no ILIKE ?", p, p, p)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	if err := db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&staff).Error; err != nil {
		return nil, 0, translateError(err)
	}

	return staff, total, nil
}

func (r *staffRepo) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Staff{}).
		Where("staff_id IN ?", ids).
		Count(&count).Error
	return count, err
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	return translateError(r.db.WithContext(ctx).Save(staff).Error)
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	return translateError(r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		Delete(&model.Staff{}).Error)
}

func (r *staffRepo) CountMemberships(ctx context.Context, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.MeetingMember{}).
		Where("staff_id = ?", id).
		Count(&count).Error
	return count, err
}
