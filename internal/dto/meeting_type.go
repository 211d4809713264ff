package dto

// MeetingTypeListRequest GET /meeting-types
type MeetingTypeListRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
}

// CreateMeetingTypeRequest POST /meeting-types
type CreateMeetingTypeRequest struct {
	MeetingTypeName string `json:"meetingTypeName" binding:"required,max=250"`
	Remarks         string `json:"remarks"         binding:"omitempty,max=500"`
}

// UpdateMeetingTypeRequest PUT /meeting-types/:id
type UpdateMeetingTypeRequest struct {
	MeetingTypeName *string `json:"meetingTypeName" binding:"omitempty,min=1,max=250"`
	Remarks         *string `json:"remarks"         binding:"omitempty,max=500"`
}

// MeetingTypeResponse meeting type record
type MeetingTypeResponse struct {
	ID              string `json:"id"`
	MeetingTypeName string `json:"meetingTypeName"`
	Remarks         string `json:"remarks,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}
