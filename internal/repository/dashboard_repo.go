package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mom-portal/backend/internal/model"
)

// ── aggregate rows ──

// OverviewCounts headline counts for the dashboard
type OverviewCounts struct {
	TotalMeetings     int64
	TotalStaff        int64
	TotalMeetingTypes int64
	TotalDocuments    int64
	MeetingsThisMonth int64
	MeetingsThisWeek  int64
	UpcomingMeetings  int64
}

// StaffAttendanceRow member rows of one staff member
type StaffAttendanceRow struct {
	StaffID      string
	StaffName    string
	EmailAddress string
	MobileNo     string
	Total        int64
	Attended     int64
}

// TypeUsageRow meetings of one type by status
type TypeUsageRow struct {
	MeetingTypeID   string
	MeetingTypeName string
	Total           int64
	Completed       int64
	Cancelled       int64
	Scheduled       int64
}

// TrendRow meetings held on one day
type TrendRow struct {
	Day       time.Time
	Count     int64
	Completed int64
	Cancelled int64
}

// MeetingAttendanceRow member rows of one meeting
type MeetingAttendanceRow struct {
	MeetingID    string
	MeetingTitle string
	MeetingDate  time.Time
	Total        int64
	Present      int64
}

// DashboardRepository read-only aggregations
type DashboardRepository interface {
	Counts(ctx context.Context, monthStart, weekStart, today time.Time) (*OverviewCounts, error)
	AttendanceTotals(ctx context.Context) (total, present int64, err error)
	// ActiveStaff staff with the most meeting memberships
	ActiveStaff(ctx context.Context, limit int) ([]StaffAttendanceRow, error)
	// StaffAttendanceSince per-staff attendance for meetings on or after since, best rate first
	StaffAttendanceSince(ctx context.Context, since time.Time) ([]StaffAttendanceRow, error)
	// TypeUsage per meeting type, most used first
	TypeUsage(ctx context.Context) ([]TypeUsageRow, error)
	Trends(ctx context.Context, since time.Time) ([]TrendRow, error)
	MeetingAttendanceSince(ctx context.Context, since time.Time) ([]MeetingAttendanceRow, error)
	// LatestMeetings non-cancelled meetings, latest meeting date first
	LatestMeetings(ctx context.Context, limit int) ([]model.Meeting, error)
	// RecentlyUpdatedMeetings non-cancelled meetings, latest change first
	RecentlyUpdatedMeetings(ctx context.Context, limit int) ([]model.Meeting, error)
	RecentStaff(ctx context.Context, limit int) ([]model.Staff, error)
	RecentDocuments(ctx context.Context, limit int) ([]model.MeetingDocument, error)
}

type dashboardRepo struct {
	db *gorm.DB
}

// NewDashboardRepo creates a DashboardRepository
func NewDashboardRepo(db *gorm.DB) DashboardRepository {
	return &dashboardRepo{db: db}
}

const dateLayout = "2006-01-02"

func (r *dashboardRepo) Counts(ctx context.Context, monthStart, weekStart, today time.Time) (*OverviewCounts, error) {
	var c OverviewCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM meetings)          AS total_meetings,
			(SELECT COUNT(*) FROM staff)             AS total_staff,
			(SELECT COUNT(*) FROM meeting_types)     AS total_meeting_types,
			(SELECT COUNT(*) FROM meeting_documents) AS total_documents,
			(SELECT COUNT(*) FROM meetings WHERE meeting_date >= ? AND status <> ?) AS meetings_this_month,
			(SELECT COUNT(*) FROM meetings WHERE meeting_date >= ? AND status <> ?) AS meetings_this_week,
			(SELECT COUNT(*) FROM meetings WHERE meeting_date >= ? AND status = ?)  AS upcoming_meetings`,
		monthStart.Format(dateLayout), model.StatusCancelled,
		weekStart.Format(dateLayout), model.StatusCancelled,
		today.Format(dateLayout), model.StatusScheduled,
	).Scan(&c).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &c, nil
}

func (r *dashboardRepo) AttendanceTotals(ctx context.Context) (int64, int64, error) {
	var row struct {
		Total   int64
		Present int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.MeetingMember{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE is_present) AS present").
		Scan(&row).Error
	return row.Total, row.Present, err
}

func (r *dashboardRepo) ActiveStaff(ctx context.Context, limit int) ([]StaffAttendanceRow, error) {
	var rows []StaffAttendanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.staff_id, s.staff_name, COALESCE(s.email_address, '') AS email_address,
		       COALESCE(s.mobile_no, '') AS mobile_no,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE mm.is_present) AS attended
		FROM meeting_members mm
		JOIN staff s ON s.staff_id = mm.staff_id
		GROUP BY s.staff_id, s.staff_name, s.email_address, s.mobile_no
		ORDER BY total DESC, s.staff_name ASC
		LIMIT ?`, limit).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) StaffAttendanceSince(ctx context.Context, since time.Time) ([]StaffAttendanceRow, error) {
	var rows []StaffAttendanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT s.staff_id, s.staff_name, COALESCE(s.email_address, '') AS email_address,
		       COALESCE(s.mobile_no, '') AS mobile_no,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE mm.is_present) AS attended
		FROM meeting_members mm
		JOIN meetings m ON m.meeting_id = mm.meeting_id
		JOIN staff s ON s.staff_id = mm.staff_id
		WHERE m.meeting_date >= ?
		GROUP BY s.staff_id, s.staff_name, s.email_address, s.mobile_no
		ORDER BY COUNT(*) FILTER (WHERE mm.is_present)::float / COUNT(*) DESC, s.staff_name ASC`,
		since.Format(dateLayout)).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) TypeUsage(ctx context.Context) ([]TypeUsageRow, error) {
	var rows []TypeUsageRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT mt.meeting_type_id, mt.meeting_type_name,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE m.status = ?) AS completed,
		       COUNT(*) FILTER (WHERE m.status = ?) AS cancelled,
		       COUNT(*) FILTER (WHERE m.status = ?) AS scheduled
		FROM meetings m
		JOIN meeting_types mt ON mt.meeting_type_id = m.meeting_type_id
		GROUP BY mt.meeting_type_id, mt.meeting_type_name
		ORDER BY total DESC, mt.meeting_type_name ASC`,
		model.StatusCompleted, model.StatusCancelled, model.StatusScheduled,
	).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) Trends(ctx context.Context, since time.Time) ([]TrendRow, error) {
	var rows []TrendRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT meeting_date AS day,
		       COUNT(*) AS count,
		       COUNT(*) FILTER (WHERE status = ?) AS completed,
		       COUNT(*) FILTER (WHERE status = ?) AS cancelled
		FROM meetings
		WHERE meeting_date >= ?
		GROUP BY meeting_date
		ORDER BY meeting_date ASC`,
		model.StatusCompleted, model.StatusCancelled, since.Format(dateLayout),
	).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) MeetingAttendanceSince(ctx context.Context, since time.Time) ([]MeetingAttendanceRow, error) {
	var rows []MeetingAttendanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.meeting_id, m.meeting_title, m.meeting_date,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE mm.is_present) AS present
		FROM meeting_members mm
		JOIN meetings m ON m.meeting_id = mm.meeting_id
		WHERE m.meeting_date >= ?
		GROUP BY m.meeting_id, m.meeting_title, m.meeting_date
		ORDER BY m.meeting_date DESC`,
		since.Format(dateLayout),
	).Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepo) LatestMeetings(ctx context.Context, limit int) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Where("status <> ?", model.StatusCancelled).
		Order("meeting_date DESC, meeting_time DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

func (r *dashboardRepo) RecentlyUpdatedMeetings(ctx context.Context, limit int) ([]model.Meeting, error) {
	var meetings []model.Meeting
	err := r.db.WithContext(ctx).
		Preload("MeetingType").
		Where("status <> ?", model.StatusCancelled).
		Order("updated_at DESC").
		Limit(limit).
		Find(&meetings).Error
	return meetings, err
}

func (r *dashboardRepo) RecentStaff(ctx context.Context, limit int) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&staff).Error
	return staff, err
}

func (r *dashboardRepo) RecentDocuments(ctx context.Context, limit int) ([]model.MeetingDocument, error) {
	var docs []model.MeetingDocument
	err := r.db.WithContext(ctx).
		Preload("Uploader").
		Order("created_at DESC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}
