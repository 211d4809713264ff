package model

// MeetingType category of meeting (table meeting_types)
type MeetingType struct {
	MeetingTypeID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingTypeName string `gorm:"type:varchar(250);not null;uniqueIndex"         json:"meetingTypeName"`
	Remarks         string `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	BaseModel
}

// TableName table name
func (MeetingType) TableName() string { return "meeting_types" }
