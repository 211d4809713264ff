package model

// MeetingMember attendance of one staff member at one meeting (table meeting_members)
type MeetingMember struct {
	MeetingMemberID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingID       string `gorm:"type:uuid;not null"                             json:"meetingId"`
	StaffID         string `gorm:"type:uuid;not null"                             json:"staffId"`
	IsPresent       bool   `gorm:"not null"                                       json:"isPresent"`
	Remarks         string `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	BaseModel

	// associations
	Meeting *Meeting `gorm:"foreignKey:MeetingID;references:MeetingID" json:"meeting,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID;references:StaffID"     json:"staff,omitempty"`
}

// TableName table name
func (MeetingMember) TableName() string { return "meeting_members" }
