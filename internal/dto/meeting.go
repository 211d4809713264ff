package dto

// MeetingListRequest GET /meetings
type MeetingListRequest struct {
	PaginationRequest
	Search        string `form:"search"        binding:"omitempty,max=200"`
	Status        string `form:"status"        binding:"omitempty,oneof=Scheduled Ongoing Completed Cancelled"`
	MeetingTypeID string `form:"meetingTypeId" binding:"omitempty,uuid"`
	StartDate     string `form:"startDate"     binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"endDate"       binding:"omitempty,datetime=2006-01-02"`
}

// UpcomingMeetingsRequest GET /meetings/upcoming
type UpcomingMeetingsRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CreateMeetingRequest POST /meetings
type CreateMeetingRequest struct {
	MeetingDate        string `json:"meetingDate"        binding:"required,datetime=2006-01-02"`
	MeetingTime        string `json:"meetingTime"        binding:"required,hhmm"`
	MeetingTypeID      string `json:"meetingTypeId"      binding:"required,uuid"`
	MeetingTitle       string `json:"meetingTitle"       binding:"required,max=500"`
	MeetingDescription string `json:"meetingDescription" binding:"omitempty,max=2500"`
	DocumentPath       string `json:"documentPath"       binding:"omitempty,max=250"`
	Remarks            string `json:"remarks"            binding:"omitempty,max=500"`
}

// UpdateMeetingRequest PUT /meetings/:id, nil fields stay unchanged
type UpdateMeetingRequest struct {
	MeetingDate        *string `json:"meetingDate"        binding:"omitempty,datetime=2006-01-02"`
	MeetingTime        *string `json:"meetingTime"        binding:"omitempty,hhmm"`
	MeetingTypeID      *string `json:"meetingTypeId"      binding:"omitempty,uuid"`
	MeetingTitle       *string `json:"meetingTitle"       binding:"omitempty,min=1,max=500"`
	MeetingDescription *string `json:"meetingDescription" binding:"omitempty,max=2500"`
	DocumentPath       *string `json:"documentPath"       binding:"omitempty,max=250"`
	Remarks            *string `json:"remarks"            binding:"omitempty,max=500"`
	Status             *string `json:"status"             binding:"omitempty,oneof=Scheduled Ongoing Completed Cancelled"`
}

// CancelMeetingRequest PUT /meetings/:id/cancel
type CancelMeetingRequest struct {
	CancellationReason string `json:"cancellationReason" binding:"omitempty,max=500"`
}

// MeetingResponse meeting with its joined type, members and documents
type MeetingResponse struct {
	ID                   string                    `json:"id"`
	MeetingDate          string                    `json:"meetingDate"`
	MeetingTime          string                    `json:"meetingTime"`
	MeetingTypeID        string                    `json:"meetingTypeId"`
	MeetingType          *MeetingTypeBrief         `json:"meetingType,omitempty"`
	MeetingTitle         string                    `json:"meetingTitle"`
	MeetingDescription   string                    `json:"meetingDescription,omitempty"`
	DocumentPath         string                    `json:"documentPath,omitempty"`
	Remarks              string                    `json:"remarks,omitempty"`
	Status               string                    `json:"status"`
	CancellationDateTime *string                   `json:"cancellationDateTime"`
	CancellationReason   string                    `json:"cancellationReason,omitempty"`
	Members              []MeetingMemberResponse   `json:"members,omitempty"`
	Documents            []MeetingDocumentResponse `json:"documents,omitempty"`
	CreatedAt            string                    `json:"createdAt"`
	UpdatedAt            string                    `json:"updatedAt"`
}

// MeetingTypeBrief type name embedded in meeting responses
type MeetingTypeBrief struct {
	ID              string `json:"id"`
	MeetingTypeName string `json:"meetingTypeName"`
}

// MeetingBrief meeting fields embedded in member responses
type MeetingBrief struct {
	ID           string `json:"id"`
	MeetingTitle string `json:"meetingTitle"`
	MeetingDate  string `json:"meetingDate"`
	MeetingTime  string `json:"meetingTime"`
	Status       string `json:"status"`
}

// MeetingStatsResponse GET /meetings/stats
type MeetingStatsResponse struct {
	Total     int64 `json:"total"`
	Scheduled int64 `json:"scheduled"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Upcoming  int64 `json:"upcoming"`
}
