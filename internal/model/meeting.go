package model

import "time"

// MeetingStatus lifecycle state of a meeting
type MeetingStatus string

const (
	StatusScheduled MeetingStatus = "Scheduled"
	StatusOngoing   MeetingStatus = "Ongoing"
	StatusCompleted MeetingStatus = "Completed"
	StatusCancelled MeetingStatus = "Cancelled"
)

// MeetingStatuses all statuses in display order
var MeetingStatuses = []MeetingStatus{StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled}

// statusTransitions moves allowed through a plain update.
// Cancelled is reached only through Cancel; Completed and Cancelled are terminal.
var statusTransitions = map[MeetingStatus][]MeetingStatus{
	StatusScheduled: {StatusOngoing, StatusCompleted},
	StatusOngoing:   {StatusCompleted, StatusScheduled},
}

// Valid reports whether s is a known status
func (s MeetingStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further change is possible
func (s MeetingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether an update may move s to next. Same status is a no-op.
func (s MeetingStatus) CanTransitionTo(next MeetingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Meeting aggregate root (table meetings)
type Meeting struct {
	MeetingID            string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingDate          time.Time     `gorm:"type:date;not null"                             json:"meetingDate"`
	MeetingTime          string        `gorm:"type:varchar(5);not null"                       json:"meetingTime"` // HH:MM
	MeetingTypeID        string        `gorm:"type:uuid;not null"                             json:"meetingTypeId"`
	MeetingTitle         string        `gorm:"type:varchar(500);not null"                     json:"meetingTitle"`
	MeetingDescription   string        `gorm:"type:varchar(2500)"                             json:"meetingDescription,omitempty"`
	DocumentPath         string        `gorm:"type:varchar(250)"                              json:"documentPath,omitempty"`
	Remarks              string        `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	Status               MeetingStatus `gorm:"type:varchar(20);not null"                      json:"status"`
	CancellationDateTime *time.Time    `                                                      json:"cancellationDateTime,omitempty"`
	CancellationReason   string        `gorm:"type:varchar(500)"                              json:"cancellationReason,omitempty"`
	BaseModel

	// associations, read-only joins
	MeetingType *MeetingType      `gorm:"foreignKey:MeetingTypeID;references:MeetingTypeID" json:"meetingType,omitempty"`
	Members     []MeetingMember   `gorm:"foreignKey:MeetingID;references:MeetingID"         json:"members,omitempty"`
	Documents   []MeetingDocument `gorm:"foreignKey:MeetingID;references:MeetingID"         json:"documents,omitempty"`
}

// TableName table name
func (Meeting) TableName() string { return "meetings" }

// IsCancelled status and cancellation timestamp agree on cancellation
func (m *Meeting) IsCancelled() bool {
	return m.Status == StatusCancelled && m.CancellationDateTime != nil
}

// StartsAt combines date and HH:MM time in loc. Falls back to midnight on a malformed time.
func (m *Meeting) StartsAt(loc *time.Location) time.Time {
	d := m.MeetingDate
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	if t, err := time.Parse("15:04", m.MeetingTime); err == nil {
		start = start.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
	}
	return start
}
