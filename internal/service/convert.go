package service

import (
	"math"
	"strings"
	"time"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
)

// requiredText trims s; a blank result fails with err
func requiredText(s string, err error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", err
	}
	return s, nil
}

func formatTime(t time.Time) string {
	return t.Format(dto.TimeLayout)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func formatDate(t time.Time) string {
	return t.Format(dto.DateLayout)
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage part/total×100 to two decimals, 0 when total is 0
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.UserID,
		Name:        u.Name,
		Email:       u.Email,
		MobileNo:    u.MobileNo,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLoginAt: formatTimePtr(u.LastLoginAt),
		CreatedAt:   formatTime(u.CreatedAt),
	}
}

func toStaffResponse(s *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:           s.StaffID,
		StaffName:    s.StaffName,
		MobileNo:     s.MobileNo,
		EmailAddress: s.EmailAddress,
		Role:         string(s.Role),
		Department:   s.Department,
		Remarks:      s.Remarks,
		IsActive:     s.IsActive,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func toStaffBrief(s *model.Staff) *dto.StaffBrief {
	if s == nil {
		return nil
	}
	return &dto.StaffBrief{
		ID:           s.StaffID,
		StaffName:    s.StaffName,
		EmailAddress: s.EmailAddress,
		MobileNo:     s.MobileNo,
	}
}

func toMeetingTypeResponse(mt *model.MeetingType) dto.MeetingTypeResponse {
	return dto.MeetingTypeResponse{
		ID:              mt.MeetingTypeID,
		MeetingTypeName: mt.MeetingTypeName,
		Remarks:         mt.Remarks,
		CreatedAt:       formatTime(mt.CreatedAt),
		UpdatedAt:       formatTime(mt.UpdatedAt),
	}
}

func toMeetingResponse(m *model.Meeting) dto.MeetingResponse {
	resp := dto.MeetingResponse{
		ID:                   m.MeetingID,
		MeetingDate:          formatDate(m.MeetingDate),
		MeetingTime:          m.MeetingTime,
		MeetingTypeID:        m.MeetingTypeID,
		MeetingTitle:         m.MeetingTitle,
		MeetingDescription:   m.MeetingDescription,
		DocumentPath:         m.DocumentPath,
		Remarks:              m.Remarks,
		Status:               string(m.Status),
		CancellationDateTime: formatTimePtr(m.CancellationDateTime),
		CancellationReason:   m.CancellationReason,
		CreatedAt:            formatTime(m.CreatedAt),
		UpdatedAt:            formatTime(m.UpdatedAt),
	}
	if m.MeetingType != nil {
		resp.MeetingType = &dto.MeetingTypeBrief{
			ID:              m.MeetingType.MeetingTypeID,
			MeetingTypeName: m.MeetingType.MeetingTypeName,
		}
	}
	for i := range m.Members {
		resp.Members = append(resp.Members, toMeetingMemberResponse(&m.Members[i]))
	}
	for i := range m.Documents {
		resp.Documents = append(resp.Documents, toMeetingDocumentResponse(&m.Documents[i]))
	}
	return resp
}

func toMeetingResponses(meetings []model.Meeting) []dto.MeetingResponse {
	result := make([]dto.MeetingResponse, 0, len(meetings))
	for i := range meetings {
		result = append(result, toMeetingResponse(&meetings[i]))
	}
	return result
}

func toMeetingBrief(m *model.Meeting) *dto.MeetingBrief {
	if m == nil {
		return nil
	}
	return &dto.MeetingBrief{
		ID:           m.MeetingID,
		MeetingTitle: m.MeetingTitle,
		MeetingDate:  formatDate(m.MeetingDate),
		MeetingTime:  m.MeetingTime,
		Status:       string(m.Status),
	}
}

func toMeetingMemberResponse(mm *model.MeetingMember) dto.MeetingMemberResponse {
	return dto.MeetingMemberResponse{
		ID:        mm.MeetingMemberID,
		MeetingID: mm.MeetingID,
		StaffID:   mm.StaffID,
		IsPresent: mm.IsPresent,
		Remarks:   mm.Remarks,
		Staff:     toStaffBrief(mm.Staff),
		Meeting:   toMeetingBrief(mm.Meeting),
		CreatedAt: formatTime(mm.CreatedAt),
		UpdatedAt: formatTime(mm.UpdatedAt),
	}
}

func toMeetingDocumentResponse(d *model.MeetingDocument) dto.MeetingDocumentResponse {
	return dto.MeetingDocumentResponse{
		ID:           d.MeetingDocumentID,
		MeetingID:    d.MeetingID,
		DocumentName: d.DocumentName,
		DocumentPath: d.DocumentPath,
		Sequence:     d.Sequence,
		Remarks:      d.Remarks,
		FileSize:     d.FileSize,
		FileType:     d.FileType,
		UploadedBy:   toStaffBrief(d.Uploader),
		CreatedAt:    formatTime(d.CreatedAt),
		UpdatedAt:    formatTime(d.UpdatedAt),
	}
}

func toMeetingDocumentResponses(docs []model.MeetingDocument) []dto.MeetingDocumentResponse {
	result := make([]dto.MeetingDocumentResponse, 0, len(docs))
	for i := range docs {
		result = append(result, toMeetingDocumentResponse(&docs[i]))
	}
	return result
}
