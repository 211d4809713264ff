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
	ErrMeetingTypeNotFound   = apperrors.NotFound("Meeting type not found")
	ErrMeetingTypeNameExists = apperrors.Conflict("Meeting type with this name already exists")
	ErrMeetingTypeNameBlank  = apperrors.Validation("Meeting type name is required")
	ErrMeetingTypeInUse      = apperrors.Conflict("Meeting type is used by existing meetings and cannot be deleted")
)

// MeetingTypeService meeting type registry
type MeetingTypeService interface {
	List(ctx context.Context, req *dto.MeetingTypeListRequest) ([]dto.MeetingTypeResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MeetingTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateMeetingTypeRequest) (*dto.MeetingTypeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMeetingTypeRequest) (*dto.MeetingTypeResponse, error)
	Delete(ctx context.Context, id string) error
}

type meetingTypeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMeetingTypeService creates a MeetingTypeService
func NewMeetingTypeService(repo *repository.Repository, logger *zap.Logger) MeetingTypeService {
	return &meetingTypeService{repo: repo, logger: logger}
}

// ────── List ──────

func (s *meetingTypeService) List(ctx context.Context, req *dto.MeetingTypeListRequest) ([]dto.MeetingTypeResponse, error) {
	types, err := s.repo.MeetingType.List(ctx, strings.TrimSpace(req.Search))
	if err != nil {
		s.logger.Error("failed to list meeting types", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MeetingTypeResponse, 0, len(types))
	for i := range types {
		result = append(result, toMeetingTypeResponse(&types[i]))
	}
	return result, nil
}

// ────── GetByID ──────

func (s *meetingTypeService) GetByID(ctx context.Context, id string) (*dto.MeetingTypeResponse, error) {
	mt, err := s.getType(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toMeetingTypeResponse(mt)
	return &resp, nil
}

// ────── Create ──────

func (s *meetingTypeService) Create(ctx context.Context, req *dto.CreateMeetingTypeRequest) (*dto.MeetingTypeResponse, error) {
	name, err := requiredText(req.MeetingTypeName, ErrMeetingTypeNameBlank)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, name, ""); err != nil {
		return nil, err
	}

	mt := &model.MeetingType{
		MeetingTypeName: name,
		Remarks:         req.Remarks,
	}
	if err := s.repo.MeetingType.Create(ctx, mt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMeetingTypeNameExists
		}
		s.logger.Error("failed to create meeting type", zap.Error(err))
		return nil, err
	}

	resp := toMeetingTypeResponse(mt)
	return &resp, nil
}

// ────── Update ──────

func (s *meetingTypeService) Update(ctx context.Context, id string, req *dto.UpdateMeetingTypeRequest) (*dto.MeetingTypeResponse, error) {
	mt, err := s.getType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.MeetingTypeName != nil {
		name, err := requiredText(*req.MeetingTypeName, ErrMeetingTypeNameBlank)
		if err != nil {
			return nil, err
		}
		if name != mt.MeetingTypeName {
			if err := s.checkNameFree(ctx, name, mt.MeetingTypeID); err != nil {
				return nil, err
			}
		}
		mt.MeetingTypeName = name
	}
	if req.Remarks != nil {
		mt.Remarks = *req.Remarks
	}

	if err := s.repo.MeetingType.Update(ctx, mt); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMeetingTypeNameExists
		}
		s.logger.Error("failed to update meeting type", zap.String("meeting_type_id", id), zap.Error(err))
		return nil, err
	}

	resp := toMeetingTypeResponse(mt)
	return &resp, nil
}

// ────── Delete ──────

func (s *meetingTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.getType(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.MeetingType.CountMeetings(ctx, id)
	if err != nil {
		s.logger.Error("failed to count meetings of type", zap.String("meeting_type_id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrMeetingTypeInUse
	}

	if err := s.repo.MeetingType.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrMeetingTypeNotFound
		case errors.Is(err, repository.ErrReferenced):
			return ErrMeetingTypeInUse
		}
		s.logger.Error("failed to delete meeting type", zap.String("meeting_type_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("meeting type deleted", zap.String("meeting_type_id", id))
	return nil
}

// ── helpers ──

func (s *meetingTypeService) getType(ctx context.Context, id string) (*model.MeetingType, error) {
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

func (s *meetingTypeService) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.repo.MeetingType.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("failed to look up meeting type by name", zap.Error(err))
		return err
	}
	if existing.MeetingTypeID != selfID {
		return ErrMeetingTypeNameExists
	}
	return nil
}
