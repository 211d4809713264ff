package dto

// DashboardPeriodRequest ?period=7d|30d|90d|1y
type DashboardPeriodRequest struct {
	Period string `form:"period" binding:"omitempty,oneof=7d 30d 90d 1y"`
}

// RecentActivityRequest ?limit=
type RecentActivityRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// ── overview ──

// OverviewCounts headline numbers
type OverviewCounts struct {
	TotalMeetings     int64 `json:"totalMeetings"`
	TotalStaff        int64 `json:"totalStaff"`
	TotalMeetingTypes int64 `json:"totalMeetingTypes"`
	TotalDocuments    int64 `json:"totalDocuments"`
	MeetingsThisMonth int64 `json:"meetingsThisMonth"`
	MeetingsThisWeek  int64 `json:"meetingsThisWeek"`
	UpcomingMeetings  int64 `json:"upcomingMeetings"`
}

// StatusCount meetings per status
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// AttendanceTotals all member rows across all meetings
type AttendanceTotals struct {
	TotalMembers   int64 `json:"totalMembers"`
	PresentMembers int64 `json:"presentMembers"`
}

// ActiveStaff staff ranked by number of meetings
type ActiveStaff struct {
	StaffID         string  `json:"staffId"`
	StaffName       string  `json:"staffName"`
	EmailAddress    string  `json:"emailAddress,omitempty"`
	MeetingCount    int64   `json:"meetingCount"`
	AttendanceCount int64   `json:"attendanceCount"`
	AttendanceRate  float64 `json:"attendanceRate"`
}

// MeetingTypeUsage meetings per type
type MeetingTypeUsage struct {
	MeetingTypeID   string `json:"meetingTypeId"`
	MeetingTypeName string `json:"meetingTypeName"`
	Count           int64  `json:"count"`
}

// DashboardOverviewResponse GET /dashboard/overview
type DashboardOverviewResponse struct {
	Overview           OverviewCounts     `json:"overview"`
	MeetingStatusStats []StatusCount      `json:"meetingStatusStats"`
	AttendanceStats    AttendanceTotals   `json:"attendanceStats"`
	ActiveStaff        []ActiveStaff      `json:"activeStaff"`
	MeetingTypeUsage   []MeetingTypeUsage `json:"meetingTypeUsage"`
	RecentMeetings     []MeetingResponse  `json:"recentMeetings"`
}

// ── analytics ──

// MeetingTrend meetings on one day
type MeetingTrend struct {
	Date      string `json:"date"`
	Count     int64  `json:"count"`
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
}

// MeetingAttendance attendance of one meeting
type MeetingAttendance struct {
	MeetingID      string  `json:"meetingId"`
	MeetingTitle   string  `json:"meetingTitle"`
	MeetingDate    string  `json:"meetingDate"`
	TotalMembers   int64   `json:"totalMembers"`
	PresentMembers int64   `json:"presentMembers"`
	AttendanceRate float64 `json:"attendanceRate"`
}

// MeetingAnalyticsResponse GET /dashboard/analytics
type MeetingAnalyticsResponse struct {
	Period              string              `json:"period"`
	StartDate           string              `json:"startDate"`
	EndDate             string              `json:"endDate"`
	MeetingTrends       []MeetingTrend      `json:"meetingTrends"`
	AttendanceAnalytics []MeetingAttendance `json:"attendanceAnalytics"`
	AvgAttendanceRate   float64             `json:"avgAttendanceRate"`
}

// StaffPerformance attendance record of one staff member
type StaffPerformance struct {
	StaffID          string  `json:"staffId"`
	StaffName        string  `json:"staffName"`
	EmailAddress     string  `json:"emailAddress,omitempty"`
	MobileNo         string  `json:"mobileNo,omitempty"`
	TotalMeetings    int64   `json:"totalMeetings"`
	AttendedMeetings int64   `json:"attendedMeetings"`
	MissedMeetings   int64   `json:"missedMeetings"`
	AttendanceRate   float64 `json:"attendanceRate"`
}

// StaffPerformanceResponse GET /dashboard/staff-performance
type StaffPerformanceResponse struct {
	Period           string             `json:"period"`
	StartDate        string             `json:"startDate"`
	EndDate          string             `json:"endDate"`
	StaffPerformance []StaffPerformance `json:"staffPerformance"`
}

// MeetingTypeStats GET /dashboard/meeting-types
type MeetingTypeStats struct {
	MeetingTypeID     string  `json:"meetingTypeId"`
	MeetingTypeName   string  `json:"meetingTypeName"`
	TotalMeetings     int64   `json:"totalMeetings"`
	CompletedMeetings int64   `json:"completedMeetings"`
	CancelledMeetings int64   `json:"cancelledMeetings"`
	ScheduledMeetings int64   `json:"scheduledMeetings"`
	CompletionRate    float64 `json:"completionRate"`
}

// RecentActivityResponse GET /dashboard/recent-activity
type RecentActivityResponse struct {
	RecentMeetings  []MeetingResponse         `json:"recentMeetings"`
	RecentStaff     []StaffResponse           `json:"recentStaff"`
	RecentDocuments []MeetingDocumentResponse `json:"recentDocuments"`
}
