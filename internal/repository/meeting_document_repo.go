package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mom-portal/backend/internal/model"
)

// SequenceUpdate new sequence for one document
type SequenceUpdate struct {
	DocumentID string
	Sequence   float64
}

// DocumentStats aggregate over one meeting's documents
type DocumentStats struct {
	TotalDocuments int64
	TotalSize      int64
	FileTypes      map[string]int64
}

// MeetingDocumentRepository document metadata
type MeetingDocumentRepository interface {
	Create(ctx context.Context, doc *model.MeetingDocument) error
	// CreateWithNextSequence assigns max(sequence)+1 for the meeting (1 when empty) and
	// inserts, serialized per meeting by a row lock on the parent meeting
	CreateWithNextSequence(ctx context.Context, doc *model.MeetingDocument) error
	GetByID(ctx context.Context, id string) (*model.MeetingDocument, error)
	ListByMeeting(ctx context.Context, meetingID string) ([]model.MeetingDocument, error)
	Update(ctx context.Context, doc *model.MeetingDocument) error
	// Reorder applies updates scoped to (document, meeting) in one transaction and
	// returns the document ids that matched no row of the meeting
	Reorder(ctx context.Context, meetingID string, updates []SequenceUpdate) ([]string, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context, meetingID string) (*DocumentStats, error)
}

type meetingDocumentRepo struct {
	db *gorm.DB
}

// NewMeetingDocumentRepo creates a MeetingDocumentRepository
func NewMeetingDocumentRepo(db *gorm.DB) MeetingDocumentRepository {
	return &meetingDocumentRepo{db: db}
}

func (r *meetingDocumentRepo) Create(ctx context.Context, doc *model.MeetingDocument) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(doc).Error)
}

func (r *meetingDocumentRepo) CreateWithNextSequence(ctx context.Context, doc *model.MeetingDocument) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meeting model.Meeting
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("meeting_id").
			Where("meeting_id = ?", doc.MeetingID).
			First(&meeting).Error; err != nil {
			return err
		}

		var next float64
		if err := tx.Model(&model.MeetingDocument{}).
			Select("COALESCE(MAX(sequence), 0) + 1").
			Where("meeting_id = ?", doc.MeetingID).
			Scan(&next).Error; err != nil {
			return err
		}
		doc.Sequence = next

		return tx.Omit(clause.Associations).Create(doc).Error
	})
	return translateError(err)
}

func (r *meetingDocumentRepo) GetByID(ctx context.Context, id string) (*model.MeetingDocument, error) {
	var doc model.MeetingDocument
	err := r.db.WithContext(ctx).
		Preload("Uploader").
		Where("meeting_document_id = ?", id).
		First(&doc).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &doc, nil
}

func (r *meetingDocumentRepo) ListByMeeting(ctx context.Context, meetingID string) ([]model.MeetingDocument, error) {
	var docs []model.MeetingDocument
	err := r.db.WithContext(ctx).
		Preload("Uploader").
		Where("meeting_id = ?", meetingID).
		Order("sequence ASC, created_at ASC").
		Find(&docs).Error
	return docs, err
}

func (r *meetingDocumentRepo) Update(ctx context.Context, doc *model.MeetingDocument) error {
	return translateError(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(doc).Error)
}

func (r *meetingDocumentRepo) Reorder(ctx context.Context, meetingID string, updates []SequenceUpdate) ([]string, error) {
	skipped := make([]string, 0)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			res := tx.Model(&model.MeetingDocument{}).
				Where("meeting_document_id = ? AND meeting_id = ?", u.DocumentID, meetingID).
				Update("sequence", u.Sequence)
			if res.Error != nil {
				return translateError(res.Error)
			}
			if res.RowsAffected == 0 {
				skipped = append(skipped, u.DocumentID)
			}
		}
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return skipped, nil
}

func (r *meetingDocumentRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("meeting_document_id = ?", id).
		Delete(&model.MeetingDocument{})
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *meetingDocumentRepo) Stats(ctx context.Context, meetingID string) (*DocumentStats, error) {
	var rows []struct {
		FileType string
		Count    int64
		Size     int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.MeetingDocument{}).
		Select("COALESCE(NULLIF(file_type, ''), 'unknown') AS file_type, COUNT(*) AS count, COALESCE(SUM(file_size), 0) AS size").
		Where("meeting_id = ?", meetingID).
		Group("COALESCE(NULLIF(file_type, ''), 'unknown')").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	stats := &DocumentStats{FileTypes: make(map[string]int64, len(rows))}
	for _, row := range rows {
		stats.TotalDocuments += row.Count
		stats.TotalSize += row.Size
		stats.FileTypes[row.FileType] = row.Count
	}
	return stats, nil
}
