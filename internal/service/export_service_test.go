package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
)

func setupTestExportService() (ExportService, *testRepos) {
	repo, mocks := newTestRepos()
	return NewExportService(repo, zap.NewNop()), mocks
}

func cellValue(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	if err != nil {
		t.Fatalf("read %s!%s: %v", sheet, axis, err)
	}
	return v
}

// ── ExportMeetings ──

func TestExportService_ExportMeetings(t *testing.T) {
	svc, mocks := setupTestExportService()
	mocks.meetings.add("m1", day(2), model.StatusScheduled)
	old := mocks.meetings.add("m2", day(-4), model.StatusCancelled)
	old.CancellationReason = "Room unavailable"

	buf, name, err := svc.ExportMeetings(context.Background(), &dto.MeetingListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 3, Limit: 1},
		StartDate:         "2026-03-01",
	})
	if err != nil {
		t.Fatalf("ExportMeetings failed: %v", err)
	}
	if name != "meetings.xlsx" {
		t.Errorf("unexpected file name %q", name)
	}
	if mocks.meetings.lastList.Limit != maxExportRows || mocks.meetings.lastList.Offset != 0 {
		t.Errorf("paging must be ignored, got %+v", mocks.meetings.lastList)
	}
	if mocks.meetings.lastList.StartDate == nil {
		t.Error("date filter must be forwarded")
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := cellValue(t, f, "Meetings", "C1"); got != "Title" {
		t.Errorf("unexpected header %q", got)
	}
	// newest meeting date first
	if got := cellValue(t, f, "Meetings", "A2"); got != "2026-03-12" {
		t.Errorf("unexpected first date %q", got)
	}
	if got := cellValue(t, f, "Meetings", "D2"); got != "Board" {
		t.Errorf("unexpected type name %q", got)
	}
	if got := cellValue(t, f, "Meetings", "F3"); got != "Room unavailable" {
		t.Errorf("unexpected cancellation reason %q", got)
	}
}

func TestExportService_ExportMeetings_InvalidDate(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportMeetings(context.Background(), &dto.MeetingListRequest{EndDate: "31/12/2026"})
	if !errors.Is(err, ErrInvalidMeetingDate) {
		t.Errorf("expected ErrInvalidMeetingDate, got %v", err)
	}
}

func TestExportService_ExportMeetings_InvertedRange(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportMeetings(context.Background(), &dto.MeetingListRequest{StartDate: "2026-04-01", EndDate: "2026-03-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

// ── ExportAttendance ──

func TestExportService_ExportAttendance(t *testing.T) {
	svc, mocks := setupTestExportService()
	ctx := context.Background()
	mocks.meetings.add("m1", day(-1), model.StatusCompleted)
	mocks.staff.add("s1", "Anna", "anna@example.com")
	mocks.staff.add("s2", "Ben", "ben@example.com")
	_ = mocks.members.Create(ctx, &model.MeetingMember{MeetingMemberID: "mm-1", MeetingID: "m1", StaffID: "s1", IsPresent: true})
	_ = mocks.members.Create(ctx, &model.MeetingMember{MeetingMemberID: "mm-2", MeetingID: "m1", StaffID: "s2", Remarks: "Sick"})

	buf, name, err := svc.ExportAttendance(ctx, "m1")
	if err != nil {
		t.Fatalf("ExportAttendance failed: %v", err)
	}
	if name != "attendance_m1.xlsx" {
		t.Errorf("unexpected file name %q", name)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Attendance"
	if got := cellValue(t, f, sheet, "A1"); got != "Meeting m1 (2026-03-09 10:00)" {
		t.Errorf("unexpected title %q", got)
	}
	if got := cellValue(t, f, sheet, "B3"); got != "Anna" {
		t.Errorf("unexpected first member %q", got)
	}
	if got := cellValue(t, f, sheet, "E3"); got != "Yes" {
		t.Errorf("unexpected presence %q", got)
	}
	if got := cellValue(t, f, sheet, "F4"); got != "Sick" {
		t.Errorf("unexpected remarks %q", got)
	}
	// summary starts one blank row after the last member
	if got := cellValue(t, f, sheet, "C6"); got != "2" {
		t.Errorf("unexpected total %q", got)
	}
	if got := cellValue(t, f, sheet, "C8"); got != "1" {
		t.Errorf("unexpected absent count %q", got)
	}
	if got := cellValue(t, f, sheet, "C9"); got != "50" {
		t.Errorf("unexpected attendance percentage %q", got)
	}
}

func TestExportService_ExportAttendance_MeetingNotFound(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportAttendance(context.Background(), "missing")
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}
