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
	ErrStaffNotFound    = apperrors.NotFound("Staff member not found")
	ErrStaffNameBlank   = apperrors.Validation("Staff name is required")
	ErrStaffEmailExists = apperrors.Conflict("Staff member with this email already exists")
	ErrStaffInUse       = apperrors.Conflict("Staff member is assigned to meetings and cannot be deleted")
)

// StaffService staff directory
type StaffService interface {
	List(ctx context.Context, req *dto.StaffListRequest) (*dto.PageResult[dto.StaffResponse], error)
	GetByID(ctx context.Context, id string) (*dto.StaffResponse, error)
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates a StaffService
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

// ────── List ──────

func (s *staffService) List(ctx context.Context, req *dto.StaffListRequest) (*dto.PageResult[dto.StaffResponse], error) {
	staff, total, err := s.repo.Staff.List(ctx, strings.TrimSpace(req.Search), req.GetOffset(), req.GetLimit())
	if err != nil {
		s.logger.Error("failed to list staff", zap.Error(err))
		return nil, err
	}

	items := make([]dto.StaffResponse, 0, len(staff))
	for i := range staff {
		items = append(items, toStaffResponse(&staff[i]))
	}
	return &dto.PageResult[dto.StaffResponse]{
		Items: items,
		Total: total,
		Page:  req.GetPage(),
		Limit: req.GetLimit(),
	}, nil
}

// ────── GetByID ──────

func (s *staffService) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toStaffResponse(staff)
	return &resp, nil
}

// ────── Create ──────

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	name, err := requiredText(req.StaffName, ErrStaffNameBlank)
	if err != nil {
		return nil, err
	}
	email := normalizeEmail(req.EmailAddress)
	if err := s.checkEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	staff := &model.Staff{
		StaffName:    name,
		MobileNo:     strings.TrimSpace(req.MobileNo),
		EmailAddress: email,
		Role:         model.RoleStaff,
		Department:   req.Department,
		Remarks:      req.Remarks,
		IsActive:     true,
	}
	if req.Role != "" {
		staff.Role = model.Role(req.Role)
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrStaffEmailExists
		}
		s.logger.Error("failed to create staff", zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

// ────── Update ──────

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EmailAddress != nil {
		email := normalizeEmail(*req.EmailAddress)
		if email != staff.EmailAddress {
			if err := s.checkEmailFree(ctx, email, staff.StaffID); err != nil {
				return nil, err
			}
		}
		staff.EmailAddress = email
	}
	if req.StaffName != nil {
		name, err := requiredText(*req.StaffName, ErrStaffNameBlank)
		if err != nil {
			return nil, err
		}
		staff.StaffName = name
	}
	if req.MobileNo != nil {
		staff.MobileNo = strings.TrimSpace(*req.MobileNo)
	}
	if req.Role != nil {
		staff.Role = model.Role(*req.Role)
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	if req.Remarks != nil {
		staff.Remarks = *req.Remarks
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.repo.Staff.Update(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrStaffEmailExists
		}
		s.logger.Error("failed to update staff", zap.String("staff_id", id), zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

// ────── Delete ──────

func (s *staffService) Delete(ctx context.Context, id string) error {
	if _, err := s.getStaff(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.Staff.CountMemberships(ctx, id)
	if err != nil {
		s.logger.Error("failed to count memberships", zap.String("staff_id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrStaffInUse
	}

	if err := s.repo.Staff.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrStaffNotFound
		case errors.Is(err, repository.ErrReferenced):
			return ErrStaffInUse
		}
		s.logger.Error("failed to delete staff", zap.String("staff_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("staff deleted", zap.String("staff_id", id))
	return nil
}

// ── helpers ──

func (s *staffService) getStaff(ctx context.Context, id string) (*model.Staff, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("failed to load staff", zap.String("staff_id", id), zap.Error(err))
		return nil, err
	}
	return staff, nil
}

// checkEmailFree an empty email never conflicts
func (s *staffService) checkEmailFree(ctx context.Context, email, selfID string) error {
	if email == "" {
		return nil
	}
	existing, err := s.repo.Staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("failed to look up staff by email", zap.Error(err))
		return err
	}
	if existing.StaffID != selfID {
		return ErrStaffEmailExists
	}
	return nil
}
