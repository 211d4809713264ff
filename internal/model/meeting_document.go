package model

// MeetingDocument document attached to a meeting, ordered by Sequence (table meeting_documents)
type MeetingDocument struct {
	MeetingDocumentID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MeetingID         string  `gorm:"type:uuid;not null"                             json:"meetingId"`
	DocumentName      string  `gorm:"type:varchar(250);not null"                     json:"documentName"`
	DocumentPath      string  `gorm:"type:varchar(250)"                              json:"documentPath,omitempty"`
	Sequence          float64 `gorm:"type:numeric(10,2);not null"                    json:"sequence"`
	Remarks           string  `gorm:"type:varchar(500)"                              json:"remarks,omitempty"`
	FileSize          int64   `gorm:"type:bigint"                                    json:"fileSize"`
	FileType          string  `gorm:"type:varchar(100)"                              json:"fileType,omitempty"`
	UploadedBy        *string `gorm:"type:uuid"                                      json:"uploadedBy,omitempty"`
	BaseModel

	// associations
	Uploader *Staff `gorm:"foreignKey:UploadedBy;references:StaffID" json:"uploader,omitempty"`
}

// TableName table name
func (MeetingDocument) TableName() string { return "meeting_documents" }
