package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
)

const (
	defaultPeriod        = "30d"
	overviewListLimit    = 5
	defaultActivityLimit = 10
	recentDirectoryLimit = 5
)

// periodDays length of each analytics period
var periodDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
	"1y":  365,
}

// DashboardService read-only aggregations
type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardOverviewResponse, error)
	Analytics(ctx context.Context, period string) (*dto.MeetingAnalyticsResponse, error)
	StaffPerformance(ctx context.Context, period string) (*dto.StaffPerformanceResponse, error)
	MeetingTypeAnalytics(ctx context.Context) ([]dto.MeetingTypeStats, error)
	RecentActivity(ctx context.Context, limit int) (*dto.RecentActivityResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates a DashboardService
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger, now: time.Now}
}

// periodRange resolves an unknown or empty period to the default
func (s *dashboardService) periodRange(period string) (string, time.Time, time.Time) {
	days, ok := periodDays[period]
	if !ok {
		period = defaultPeriod
		days = periodDays[defaultPeriod]
	}
	end := s.now().UTC()
	return period, end.AddDate(0, 0, -days), end
}

// ────── Overview ──────

func (s *dashboardService) Overview(ctx context.Context) (*dto.DashboardOverviewResponse, error) {
	now := s.now()
	today := dateOf(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	counts, err := s.repo.Dashboard.Counts(ctx, monthStart, weekStart, today)
	if err != nil {
		s.logger.Error("failed to load overview counts", zap.Error(err))
		return nil, err
	}

	byStatus, err := s.repo.Meeting.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("failed to count meetings by status", zap.Error(err))
		return nil, err
	}

	total, present, err := s.repo.Dashboard.AttendanceTotals(ctx)
	if err != nil {
		s.logger.Error("failed to load attendance totals", zap.Error(err))
		return nil, err
	}

	active, err := s.repo.Dashboard.ActiveStaff(ctx, overviewListLimit)
	if err != nil {
		s.logger.Error("failed to load active staff", zap.Error(err))
		return nil, err
	}

	usage, err := s.repo.Dashboard.TypeUsage(ctx)
	if err != nil {
		s.logger.Error("failed to load meeting type usage", zap.Error(err))
		return nil, err
	}

	recent, err := s.repo.Dashboard.LatestMeetings(ctx, overviewListLimit)
	if err != nil {
		s.logger.Error("failed to load recent meetings", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardOverviewResponse{
		Overview: dto.OverviewCounts{
			TotalMeetings:     counts.TotalMeetings,
			TotalStaff:        counts.TotalStaff,
			TotalMeetingTypes: counts.TotalMeetingTypes,
			TotalDocuments:    counts.TotalDocuments,
			MeetingsThisMonth: counts.MeetingsThisMonth,
			MeetingsThisWeek:  counts.MeetingsThisWeek,
			UpcomingMeetings:  counts.UpcomingMeetings,
		},
		AttendanceStats: dto.AttendanceTotals{TotalMembers: total, PresentMembers: present},
		RecentMeetings:  toMeetingResponses(recent),
	}

	resp.MeetingStatusStats = make([]dto.StatusCount, 0, len(model.MeetingStatuses))
	for _, st := range model.MeetingStatuses {
		resp.MeetingStatusStats = append(resp.MeetingStatusStats, dto.StatusCount{Status: string(st), Count: byStatus[st]})
	}

	resp.ActiveStaff = make([]dto.ActiveStaff, 0, len(active))
	for _, row := range active {
		resp.ActiveStaff = append(resp.ActiveStaff, dto.ActiveStaff{
			StaffID:         row.StaffID,
			StaffName:       row.StaffName,
			EmailAddress:    row.EmailAddress,
			MeetingCount:    row.Total,
			AttendanceCount: row.Attended,
			AttendanceRate:  percentage(row.Attended, row.Total),
		})
	}

	resp.MeetingTypeUsage = make([]dto.MeetingTypeUsage, 0, len(usage))
	for _, row := range usage {
		resp.MeetingTypeUsage = append(resp.MeetingTypeUsage, dto.MeetingTypeUsage{
			MeetingTypeID:   row.MeetingTypeID,
			MeetingTypeName: row.MeetingTypeName,
			Count:           row.Total,
		})
	}

	return resp, nil
}

// ────── Analytics ──────

func (s *dashboardService) Analytics(ctx context.Context, period string) (*dto.MeetingAnalyticsResponse, error) {
	period, start, end := s.periodRange(period)
	since := dateOf(start)

	trends, err := s.repo.Dashboard.Trends(ctx, since)
	if err != nil {
		s.logger.Error("failed to load meeting trends", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Dashboard.MeetingAttendanceSince(ctx, since)
	if err != nil {
		s.logger.Error("failed to load meeting attendance", zap.Error(err))
		return nil, err
	}

	resp := &dto.MeetingAnalyticsResponse{
		Period:              period,
		StartDate:           formatTime(start),
		EndDate:             formatTime(end),
		MeetingTrends:       make([]dto.MeetingTrend, 0, len(trends)),
		AttendanceAnalytics: make([]dto.MeetingAttendance, 0, len(rows)),
	}
	for _, t := range trends {
		resp.MeetingTrends = append(resp.MeetingTrends, dto.MeetingTrend{
			Date:      formatDate(t.Day),
			Count:     t.Count,
			Completed: t.Completed,
			Cancelled: t.Cancelled,
		})
	}

	// the average is taken over unrounded per-meeting rates
	var sum float64
	for _, row := range rows {
		rate := float64(row.Present) / float64(row.Total) * 100
		sum += rate
		resp.AttendanceAnalytics = append(resp.AttendanceAnalytics, dto.MeetingAttendance{
			MeetingID:      row.MeetingID,
			MeetingTitle:   row.MeetingTitle,
			MeetingDate:    formatDate(row.MeetingDate),
			TotalMembers:   row.Total,
			PresentMembers: row.Present,
			AttendanceRate: round2(rate),
		})
	}
	if len(rows) > 0 {
		resp.AvgAttendanceRate = round2(sum / float64(len(rows)))
	}

	return resp, nil
}

// ────── StaffPerformance ──────

func (s *dashboardService) StaffPerformance(ctx context.Context, period string) (*dto.StaffPerformanceResponse, error) {
	period, start, end := s.periodRange(period)

	rows, err := s.repo.Dashboard.StaffAttendanceSince(ctx, dateOf(start))
	if err != nil {
		s.logger.Error("failed to load staff performance", zap.Error(err))
		return nil, err
	}

	resp := &dto.StaffPerformanceResponse{
		Period:           period,
		StartDate:        formatTime(start),
		EndDate:          formatTime(end),
		StaffPerformance: make([]dto.StaffPerformance, 0, len(rows)),
	}
	for _, row := range rows {
		resp.StaffPerformance = append(resp.StaffPerformance, dto.StaffPerformance{
			StaffID:          row.StaffID,
			StaffName:        row.StaffName,
			EmailAddress:     row.EmailAddress,
			MobileNo:         row.MobileNo,
			TotalMeetings:    row.Total,
			AttendedMeetings: row.Attended,
			MissedMeetings:   row.Total - row.Attended,
			AttendanceRate:   percentage(row.Attended, row.Total),
		})
	}
	return resp, nil
}

// ────── MeetingTypeAnalytics ──────

func (s *dashboardService) MeetingTypeAnalytics(ctx context.Context) ([]dto.MeetingTypeStats, error) {
	rows, err := s.repo.Dashboard.TypeUsage(ctx)
	if err != nil {
		s.logger.Error("failed to load meeting type analytics", zap.Error(err))
		return nil, err
	}

	result := make([]dto.MeetingTypeStats, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.MeetingTypeStats{
			MeetingTypeID:     row.MeetingTypeID,
			MeetingTypeName:   row.MeetingTypeName,
			TotalMeetings:     row.Total,
			CompletedMeetings: row.Completed,
			CancelledMeetings: row.Cancelled,
			ScheduledMeetings: row.Scheduled,
			CompletionRate:    percentage(row.Completed, row.Total),
		})
	}
	return result, nil
}

// ────── RecentActivity ──────

func (s *dashboardService) RecentActivity(ctx context.Context, limit int) (*dto.RecentActivityResponse, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}

	meetings, err := s.repo.Dashboard.RecentlyUpdatedMeetings(ctx, limit)
	if err != nil {
		s.logger.Error("failed to load recent meetings", zap.Error(err))
		return nil, err
	}
	staff, err := s.repo.Dashboard.RecentStaff(ctx, recentDirectoryLimit)
	if err != nil {
		s.logger.Error("failed to load recent staff", zap.Error(err))
		return nil, err
	}
	docs, err := s.repo.Dashboard.RecentDocuments(ctx, recentDirectoryLimit)
	if err != nil {
		s.logger.Error("failed to load recent documents", zap.Error(err))
		return nil, err
	}

	resp := &dto.RecentActivityResponse{
		RecentMeetings:  toMeetingResponses(meetings),
		RecentStaff:     make([]dto.StaffResponse, 0, len(staff)),
		RecentDocuments: toMeetingDocumentResponses(docs),
	}
	for i := range staff {
		resp.RecentStaff = append(resp.RecentStaff, toStaffResponse(&staff[i]))
	}
	return resp, nil
}
