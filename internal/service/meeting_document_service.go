package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
	apperrors "mom-portal/backend/pkg/errors"
	"mom-portal/backend/pkg/storage"
)

var (
	ErrDocumentNotFound   = apperrors.NotFound("Document not found")
	ErrDocumentNameBlank  = apperrors.Validation("Document name is required")
	ErrEmptyDocumentOrder = apperrors.Validation("Please provide document order array")
	ErrNoFileUploaded     = apperrors.Validation("No file uploaded")
	ErrFileNotFound       = apperrors.NotFound("File not found on server")
	ErrFileTooLarge       = apperrors.Validation("File too large. Maximum size is 10MB")
	ErrFileTypeNotAllowed = apperrors.Validation("Invalid file type. Only documents and images are allowed.")
	ErrUploaderNotFound   = apperrors.NotFound("Uploader staff member not found")
)

// MeetingDocumentService document metadata, ordering and files
type MeetingDocumentService interface {
	// Add assigns the next sequence of the meeting when none is given
	Add(ctx context.Context, meetingID string, req *dto.AddMeetingDocumentRequest) (*dto.MeetingDocumentResponse, error)
	// Reorder applies only entries that belong to the meeting; the rest are reported as skipped
	Reorder(ctx context.Context, meetingID string, order []dto.DocumentOrder) (*dto.ReorderDocumentsResponse, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]dto.MeetingDocumentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.MeetingDocumentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateMeetingDocumentRequest) (*dto.MeetingDocumentResponse, error)
	Stats(ctx context.Context, meetingID string) (*dto.DocumentStatsResponse, error)
	// Delete removes the record only
	Delete(ctx context.Context, id string) error

	// Upload stores the file and creates its document record
	Upload(ctx context.Context, form *dto.UploadDocumentForm, fileName string, r io.Reader) (*dto.FileUploadResponse, error)
	// AttachFile replaces the file of an existing document
	AttachFile(ctx context.Context, id, fileName string, r io.Reader) (*dto.FileUploadResponse, error)
	Download(ctx context.Context, id string) (*dto.FileDownload, error)
	// DeleteWithFile removes the record, then its file
	DeleteWithFile(ctx context.Context, id string) error
}

type meetingDocumentService struct {
	repo   *repository.Repository
	store  FileStore
	logger *zap.Logger
}

// NewMeetingDocumentService creates a MeetingDocumentService
func NewMeetingDocumentService(repo *repository.Repository, store FileStore, logger *zap.Logger) MeetingDocumentService {
	return &meetingDocumentService{repo: repo, store: store, logger: logger}
}

// ────── Add ──────

func (s *meetingDocumentService) Add(ctx context.Context, meetingID string, req *dto.AddMeetingDocumentRequest) (*dto.MeetingDocumentResponse, error) {
	name, err := requiredText(req.DocumentName, ErrDocumentNameBlank)
	if err != nil {
		return nil, err
	}
	if err := s.checkMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	doc := &model.MeetingDocument{
		MeetingID:    meetingID,
		DocumentName: name,
		DocumentPath: req.DocumentPath,
		Remarks:      req.Remarks,
		FileSize:     req.FileSize,
		FileType:     req.FileType,
	}
	if req.UploadedBy != nil && *req.UploadedBy != "" {
		uploader, err := s.loadUploader(ctx, *req.UploadedBy)
		if err != nil {
			return nil, err
		}
		doc.UploadedBy = &uploader.StaffID
		doc.Uploader = uploader
	}

	if req.Sequence != nil {
		doc.Sequence = *req.Sequence
		err = s.repo.MeetingDocument.Create(ctx, doc)
	} else {
		err = s.repo.MeetingDocument.CreateWithNextSequence(ctx, doc)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrReferenced) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("failed to add document", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	resp := toMeetingDocumentResponse(doc)
	return &resp, nil
}

// ────── Reorder ──────

func (s *meetingDocumentService) Reorder(ctx context.Context, meetingID string, order []dto.DocumentOrder) (*dto.ReorderDocumentsResponse, error) {
	if len(order) == 0 {
		return nil, ErrEmptyDocumentOrder
	}
	if err := s.checkMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	updates := make([]repository.SequenceUpdate, 0, len(order))
	for _, o := range order {
		if o.Sequence == nil {
			continue
		}
		updates = append(updates, repository.SequenceUpdate{DocumentID: o.DocumentID, Sequence: *o.Sequence})
	}

	skipped, err := s.repo.MeetingDocument.Reorder(ctx, meetingID, updates)
	if err != nil {
		s.logger.Error("failed to reorder documents", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}
	if len(skipped) > 0 {
		s.logger.Warn("reorder ignored documents outside the meeting",
			zap.String("meeting_id", meetingID),
			zap.Strings("document_ids", skipped),
		)
	}

	docs, err := s.repo.MeetingDocument.ListByMeeting(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to list documents", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	if skipped == nil {
		skipped = []string{}
	}
	return &dto.ReorderDocumentsResponse{
		Documents: toMeetingDocumentResponses(docs),
		Skipped:   skipped,
	}, nil
}

// ────── ListByMeeting ──────

func (s *meetingDocumentService) ListByMeeting(ctx context.Context, meetingID string) ([]dto.MeetingDocumentResponse, error) {
	if err := s.checkMeeting(ctx, meetingID); err != nil {
		return nil, err
	}
	docs, err := s.repo.MeetingDocument.ListByMeeting(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to list documents", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}
	return toMeetingDocumentResponses(docs), nil
}

// ────── GetByID ──────

func (s *meetingDocumentService) GetByID(ctx context.Context, id string) (*dto.MeetingDocumentResponse, error) {
	doc, err := s.getDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toMeetingDocumentResponse(doc)
	return &resp, nil
}

// ────── Update ──────

func (s *meetingDocumentService) Update(ctx context.Context, id string, req *dto.UpdateMeetingDocumentRequest) (*dto.MeetingDocumentResponse, error) {
	doc, err := s.getDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DocumentName != nil {
		name, err := requiredText(*req.DocumentName, ErrDocumentNameBlank)
		if err != nil {
			return nil, err
		}
		doc.DocumentName = name
	}
	if req.DocumentPath != nil {
		doc.DocumentPath = *req.DocumentPath
	}
	if req.Sequence != nil {
		doc.Sequence = *req.Sequence
	}
	if req.Remarks != nil {
		doc.Remarks = *req.Remarks
	}

	if err := s.repo.MeetingDocument.Update(ctx, doc); err != nil {
		s.logger.Error("failed to update document", zap.String("document_id", id), zap.Error(err))
		return nil, err
	}

	resp := toMeetingDocumentResponse(doc)
	return &resp, nil
}

// ────── Stats ──────

func (s *meetingDocumentService) Stats(ctx context.Context, meetingID string) (*dto.DocumentStatsResponse, error) {
	if err := s.checkMeeting(ctx, meetingID); err != nil {
		return nil, err
	}

	stats, err := s.repo.MeetingDocument.Stats(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to compute document stats", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, err
	}

	fileTypes := stats.FileTypes
	if fileTypes == nil {
		fileTypes = map[string]int64{}
	}
	return &dto.DocumentStatsResponse{
		TotalDocuments: stats.TotalDocuments,
		TotalSize:      stats.TotalSize,
		TotalSizeMB:    round2(float64(stats.TotalSize) / (1024 * 1024)),
		FileTypes:      fileTypes,
	}, nil
}

// ────── Delete ──────

func (s *meetingDocumentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.MeetingDocument.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDocumentNotFound
		}
		s.logger.Error("failed to delete document", zap.String("document_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────── Upload ──────

func (s *meetingDocumentService) Upload(ctx context.Context, form *dto.UploadDocumentForm, fileName string, r io.Reader) (*dto.FileUploadResponse, error) {
	if err := s.checkMeeting(ctx, form.MeetingID); err != nil {
		return nil, err
	}

	doc := &model.MeetingDocument{
		MeetingID:    form.MeetingID,
		DocumentName: strings.TrimSpace(form.DocumentName),
		Remarks:      form.Remarks,
	}
	if doc.DocumentName == "" {
		doc.DocumentName = filepath.Base(fileName)
	}
	if form.UploadedBy != "" {
		uploader, err := s.loadUploader(ctx, form.UploadedBy)
		if err != nil {
			return nil, err
		}
		doc.UploadedBy = &uploader.StaffID
	}

	stored, err := s.saveFile(fileName, r)
	if err != nil {
		return nil, err
	}
	doc.DocumentPath = stored.Path
	doc.FileSize = stored.Size
	doc.FileType = stored.MIME

	if err := s.repo.MeetingDocument.CreateWithNextSequence(ctx, doc); err != nil {
		s.discardFile(stored.Path)
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, repository.ErrReferenced) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("failed to create document for upload", zap.String("meeting_id", form.MeetingID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.MeetingDocumentID),
		zap.String("meeting_id", doc.MeetingID),
		zap.Int64("size", doc.FileSize),
	)
	return toFileUploadResponse(doc), nil
}

// ────── AttachFile ──────

func (s *meetingDocumentService) AttachFile(ctx context.Context, id, fileName string, r io.Reader) (*dto.FileUploadResponse, error) {
	doc, err := s.getDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	stored, err := s.saveFile(fileName, r)
	if err != nil {
		return nil, err
	}

	previous := doc.DocumentPath
	doc.DocumentPath = stored.Path
	doc.FileSize = stored.Size
	doc.FileType = stored.MIME

	if err := s.repo.MeetingDocument.Update(ctx, doc); err != nil {
		s.discardFile(stored.Path)
		s.logger.Error("failed to attach file", zap.String("document_id", id), zap.Error(err))
		return nil, err
	}

	if previous != "" && previous != stored.Path {
		s.discardFile(previous)
	}
	return toFileUploadResponse(doc), nil
}

// ────── Download ──────

func (s *meetingDocumentService) Download(ctx context.Context, id string) (*dto.FileDownload, error) {
	doc, err := s.getDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	path, ok := s.store.Resolve(doc.DocumentPath)
	if !ok {
		return nil, ErrFileNotFound
	}

	name := doc.DocumentName
	if filepath.Ext(name) == "" {
		name += filepath.Ext(doc.DocumentPath)
	}
	return &dto.FileDownload{
		Path:     path,
		FileName: name,
		FileType: doc.FileType,
	}, nil
}

// ────── DeleteWithFile ──────

func (s *meetingDocumentService) DeleteWithFile(ctx context.Context, id string) error {
	doc, err := s.getDocument(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Delete(ctx, id); err != nil {
		return err
	}
	if doc.DocumentPath != "" {
		s.discardFile(doc.DocumentPath)
	}
	return nil
}

// ── helpers ──

func (s *meetingDocumentService) checkMeeting(ctx context.Context, meetingID string) error {
	if _, err := s.repo.Meeting.GetByID(ctx, meetingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMeetingNotFound
		}
		s.logger.Error("failed to load meeting", zap.String("meeting_id", meetingID), zap.Error(err))
		return err
	}
	return nil
}

func (s *meetingDocumentService) getDocument(ctx context.Context, id string) (*model.MeetingDocument, error) {
	doc, err := s.repo.MeetingDocument.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		s.logger.Error("failed to load document", zap.String("document_id", id), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

func (s *meetingDocumentService) loadUploader(ctx context.Context, staffID string) (*model.Staff, error) {
	staff, err := s.repo.Staff.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploaderNotFound
		}
		s.logger.Error("failed to load uploader", zap.String("staff_id", staffID), zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func (s *meetingDocumentService) saveFile(fileName string, r io.Reader) (*storage.StoredFile, error) {
	stored, err := s.store.Save(fileName, r)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			return nil, ErrFileTooLarge
		case errors.Is(err, storage.ErrFileTypeNotAllowed):
			return nil, ErrFileTypeNotAllowed
		case errors.Is(err, storage.ErrEmptyFile):
			return nil, ErrNoFileUploaded
		}
		s.logger.Error("failed to store file", zap.String("file_name", fileName), zap.Error(err))
		return nil, err
	}
	return stored, nil
}

// discardFile best-effort removal, failures are logged only
func (s *meetingDocumentService) discardFile(path string) {
	if err := s.store.Remove(path); err != nil {
		s.logger.Warn("failed to remove stored file", zap.String("path", path), zap.Error(err))
	}
}

func toFileUploadResponse(doc *model.MeetingDocument) *dto.FileUploadResponse {
	return &dto.FileUploadResponse{
		DocumentID: doc.MeetingDocumentID,
		FileName:   doc.DocumentName,
		FilePath:   doc.DocumentPath,
		FileSize:   doc.FileSize,
		FileType:   doc.FileType,
	}
}
