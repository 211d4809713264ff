package dto

// AddMeetingMemberRequest POST /meetings/:id/members
type AddMeetingMemberRequest struct {
	StaffID   string `json:"staffId"   binding:"required,uuid"`
	IsPresent bool   `json:"isPresent"`
	Remarks   string `json:"remarks"   binding:"omitempty,max=500"`
}

// BulkAddMeetingMembersRequest POST /meetings/:id/members/bulk
type BulkAddMeetingMembersRequest struct {
	StaffIDs []string `json:"staffIds" binding:"omitempty,dive,uuid"`
}

// UpdateMeetingMemberRequest PUT /meeting-members/:id
type UpdateMeetingMemberRequest struct {
	IsPresent *bool   `json:"isPresent"`
	Remarks   *string `json:"remarks"   binding:"omitempty,max=500"`
}

// MarkAttendanceRequest PUT /meeting-members/:id/attendance
type MarkAttendanceRequest struct {
	IsPresent *bool `json:"isPresent" binding:"required"`
}

// MeetingMemberResponse attendance row with staff and meeting joined
type MeetingMemberResponse struct {
	ID        string        `json:"id"`
	MeetingID string        `json:"meetingId"`
	StaffID   string        `json:"staffId"`
	IsPresent bool          `json:"isPresent"`
	Remarks   string        `json:"remarks,omitempty"`
	Staff     *StaffBrief   `json:"staff,omitempty"`
	Meeting   *MeetingBrief `json:"meeting,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// AttendanceResponse GET /meetings/:id/attendance
type AttendanceResponse struct {
	Total                int64   `json:"total"`
	Present              int64   `json:"present"`
	Absent               int64   `json:"absent"`
	AttendancePercentage float64 `json:"attendancePercentage"`
}

// StaffMeetingResponse one entry of a staff member's meeting history
type StaffMeetingResponse struct {
	MeetingMemberID string           `json:"meetingMemberId"`
	IsPresent       bool             `json:"isPresent"`
	Remarks         string           `json:"remarks,omitempty"`
	Meeting         *MeetingResponse `json:"meeting"`
}
