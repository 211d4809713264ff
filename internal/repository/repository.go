package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate a unique constraint rejected the write
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenced a foreign key rejected the write or delete
	ErrReferenced = errors.New("row is referenced")
)

// Repository aggregate of every repository
type Repository struct {
	User            UserRepository
	Staff           StaffRepository
	MeetingType     MeetingTypeRepository
	Meeting         MeetingRepository
	MeetingMember   MeetingMemberRepository
	MeetingDocument MeetingDocumentRepository
	Dashboard       DashboardRepository
}

// NewRepository creates the Repository aggregate
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:            NewUserRepo(db),
		Staff:           NewStaffRepo(db),
		MeetingType:     NewMeetingTypeRepo(db),
		Meeting:         NewMeetingRepo(db),
		MeetingMember:   NewMeetingMemberRepo(db),
		MeetingDocument: NewMeetingDocumentRepo(db),
		Dashboard:       NewDashboardRepo(db),
	}
}

// translateError maps PostgreSQL constraint violations to repository errors and
// malformed keys to gorm.ErrRecordNotFound
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return errors.Join(ErrDuplicate, err)
		case "23503": // foreign_key_violation
			return errors.Join(ErrReferenced, err)
		case "22P02": // invalid_text_representation, e.g. a malformed uuid
			return errors.Join(gorm.ErrRecordNotFound, err)
		}
	}
	return err
}

// likePattern wraps s for a substring ILIKE match, escaping wildcards
func likePattern(s string) string {
	r := make([]rune, 0, len(s)+2)
	r = append(r, '%')
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(append(r, '%'))
}
