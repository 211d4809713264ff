package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/model"
	"mom-portal/backend/internal/repository"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return dateOf(fixedNow).AddDate(0, 0, offset)
}

func setupTestMeetingService() (*meetingService, *testRepos) {
	repo, mocks := newTestRepos()
	svc := NewMeetingService(repo, zap.NewNop()).(*meetingService)
	svc.now = func() time.Time { return fixedNow }
	svc.loc = time.UTC
	return svc, mocks
}

func strPtr(s string) *string { return &s }

// ── Create ──

func TestMeetingService_Create_Success(t *testing.T) {
	svc, mocks := setupTestMeetingService()

	resp, err := svc.Create(context.Background(), &dto.CreateMeetingRequest{
		MeetingDate:   "2026-03-20",
		MeetingTime:   "14:30",
		MeetingTypeID: "type-board",
		MeetingTitle:  "  Quarterly review ",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if resp.Status != string(model.StatusScheduled) {
		t.Errorf("expected Scheduled, got %s", resp.Status)
	}
	if resp.MeetingTitle != "Quarterly review" {
		t.Errorf("title not trimmed: %q", resp.MeetingTitle)
	}
	if resp.MeetingType == nil || resp.MeetingType.MeetingTypeName != "Board" {
		t.Errorf("expected meeting type to be attached, got %+v", resp.MeetingType)
	}
	if resp.CancellationDateTime != nil {
		t.Error("new meeting must not carry a cancellation time")
	}
	if _, ok := mocks.meetings.meetings[resp.ID]; !ok {
		t.Error("meeting not stored")
	}
}

func TestMeetingService_Create_UnknownType(t *testing.T) {
	svc, _ := setupTestMeetingService()

	_, err := svc.Create(context.Background(), &dto.CreateMeetingRequest{
		MeetingDate:   "2026-03-20",
		MeetingTime:   "14:30",
		MeetingTypeID: "type-missing",
		MeetingTitle:  "Review",
	})
	if !errors.Is(err, ErrMeetingTypeNotFound) {
		t.Errorf("expected ErrMeetingTypeNotFound, got %v", err)
	}
}

func TestMeetingService_Create_BadDate(t *testing.T) {
	svc, _ := setupTestMeetingService()

	_, err := svc.Create(context.Background(), &dto.CreateMeetingRequest{
		MeetingDate:   "20/03/2026",
		MeetingTime:   "14:30",
		MeetingTypeID: "type-board",
		MeetingTitle:  "Review",
	})
	if !errors.Is(err, ErrInvalidMeetingDate) {
		t.Errorf("expected ErrInvalidMeetingDate, got %v", err)
	}
}

func TestMeetingService_BlankTitle(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateMeetingRequest{
		MeetingDate:   "2026-03-20",
		MeetingTime:   "14:30",
		MeetingTypeID: "type-board",
		MeetingTitle:  "   ",
	})
	if !errors.Is(err, ErrMeetingTitleRequired) {
		t.Errorf("expected ErrMeetingTitleRequired, got %v", err)
	}
	if len(mocks.meetings.meetings) != 0 {
		t.Error("no meeting should be stored")
	}

	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	_, err = svc.Update(ctx, "m1", &dto.UpdateMeetingRequest{MeetingTitle: strPtr("\t ")})
	if !errors.Is(err, ErrMeetingTitleRequired) {
		t.Errorf("expected ErrMeetingTitleRequired on update, got %v", err)
	}
}

// ── Cancel ──

func TestMeetingService_Cancel(t *testing.T) {
	tests := []struct {
		name    string
		status  model.MeetingStatus
		wantErr error
	}{
		{"scheduled", model.StatusScheduled, nil},
		{"ongoing", model.StatusOngoing, nil},
		{"already cancelled", model.StatusCancelled, ErrMeetingAlreadyCancelled},
		{"completed", model.StatusCompleted, ErrCancelCompletedMeeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := setupTestMeetingService()
			mocks.meetings.add("m1", day(3), tt.status)

			resp, err := svc.Cancel(context.Background(), "m1", &dto.CancelMeetingRequest{CancellationReason: "Venue closed"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if mocks.meetings.meetings["m1"].Status != tt.status {
					t.Error("rejected cancel must not change the status")
				}
				return
			}
			if err != nil {
				t.Fatalf("Cancel failed: %v", err)
			}
			stored := mocks.meetings.meetings["m1"]
			if !stored.IsCancelled() {
				t.Errorf("expected cancelled meeting with timestamp, got %+v", stored)
			}
			if !stored.CancellationDateTime.Equal(fixedNow) {
				t.Errorf("expected cancellation time %v, got %v", fixedNow, stored.CancellationDateTime)
			}
			if resp.CancellationReason != "Venue closed" {
				t.Errorf("unexpected reason %q", resp.CancellationReason)
			}
		})
	}
}

func TestMeetingService_Cancel_NotFound(t *testing.T) {
	svc, _ := setupTestMeetingService()

	_, err := svc.Cancel(context.Background(), "missing", &dto.CancelMeetingRequest{})
	if !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}

// ── Update ──

func TestMeetingService_Update_StatusTransitions(t *testing.T) {
	tests := []struct {
		from    model.MeetingStatus
		to      model.MeetingStatus
		wantErr error
	}{
		{model.StatusScheduled, model.StatusOngoing, nil},
		{model.StatusScheduled, model.StatusCompleted, nil},
		{model.StatusOngoing, model.StatusScheduled, nil},
		{model.StatusOngoing, model.StatusCompleted, nil},
		{model.StatusScheduled, model.StatusScheduled, nil},
		{model.StatusCompleted, model.StatusScheduled, ErrInvalidStatusTransition},
		{model.StatusCompleted, model.StatusOngoing, ErrInvalidStatusTransition},
		{model.StatusCancelled, model.StatusScheduled, ErrInvalidStatusTransition},
		{model.StatusScheduled, model.StatusCancelled, ErrCancelThroughUpdate},
		{model.StatusOngoing, model.StatusCancelled, ErrCancelThroughUpdate},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			svc, mocks := setupTestMeetingService()
			mocks.meetings.add("m1", day(1), tt.from)

			_, err := svc.Update(context.Background(), "m1", &dto.UpdateMeetingRequest{Status: strPtr(string(tt.to))})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			want := tt.to
			if tt.wantErr != nil {
				want = tt.from
			}
			stored := mocks.meetings.meetings["m1"]
			if stored.Status != want {
				t.Errorf("expected status %s, got %s", want, stored.Status)
			}
			if (stored.Status == model.StatusCancelled) != (stored.CancellationDateTime != nil) {
				t.Error("status and cancellation timestamp disagree")
			}
		})
	}
}

func TestMeetingService_Update_Fields(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.types.types["type-staff"] = &model.MeetingType{MeetingTypeID: "type-staff", MeetingTypeName: "Staff"}

	resp, err := svc.Update(context.Background(), "m1", &dto.UpdateMeetingRequest{
		MeetingDate:   strPtr("2026-04-01"),
		MeetingTime:   strPtr("08:15"),
		MeetingTypeID: strPtr("type-staff"),
		Remarks:       strPtr("moved"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if resp.MeetingDate != "2026-04-01" || resp.MeetingTime != "08:15" {
		t.Errorf("unexpected date/time %s %s", resp.MeetingDate, resp.MeetingTime)
	}
	if resp.MeetingTypeID != "type-staff" || resp.MeetingType == nil || resp.MeetingType.MeetingTypeName != "Staff" {
		t.Errorf("meeting type not switched: %+v", resp.MeetingType)
	}
	if resp.Status != string(model.StatusScheduled) {
		t.Errorf("status must be untouched, got %s", resp.Status)
	}
}

func TestMeetingService_Update_UnknownType(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)

	_, err := svc.Update(context.Background(), "m1", &dto.UpdateMeetingRequest{MeetingTypeID: strPtr("type-missing")})
	if !errors.Is(err, ErrMeetingTypeNotFound) {
		t.Errorf("expected ErrMeetingTypeNotFound, got %v", err)
	}
}

// ── Delete ──

func TestMeetingService_Delete_Cascades(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.meetings.add("m2", day(2), model.StatusScheduled)
	mocks.staff.add("s1", "Ann", "ann@example.com")
	mocks.members.members["mm1"] = &model.MeetingMember{MeetingMemberID: "mm1", MeetingID: "m1", StaffID: "s1"}
	mocks.members.members["mm2"] = &model.MeetingMember{MeetingMemberID: "mm2", MeetingID: "m2", StaffID: "s1"}
	mocks.docs.docs["d1"] = &model.MeetingDocument{MeetingDocumentID: "d1", MeetingID: "m1", Sequence: 1}

	if err := svc.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, ok := mocks.meetings.meetings["m1"]; ok {
		t.Error("meeting still present")
	}
	for _, mm := range mocks.members.members {
		if mm.MeetingID == "m1" {
			t.Error("member of deleted meeting still present")
		}
	}
	for _, d := range mocks.docs.docs {
		if d.MeetingID == "m1" {
			t.Error("document of deleted meeting still present")
		}
	}
	if _, ok := mocks.members.members["mm2"]; !ok {
		t.Error("members of other meetings must survive")
	}
}

func TestMeetingService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestMeetingService()

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrMeetingNotFound) {
		t.Errorf("expected ErrMeetingNotFound, got %v", err)
	}
}

// ── GetByID ──

func TestMeetingService_GetByID_JoinsChildren(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.staff.add("s1", "Ann", "ann@example.com")
	mocks.members.members["mm1"] = &model.MeetingMember{MeetingMemberID: "mm1", MeetingID: "m1", StaffID: "s1"}
	mocks.docs.docs["d2"] = &model.MeetingDocument{MeetingDocumentID: "d2", MeetingID: "m1", Sequence: 2}
	mocks.docs.docs["d1"] = &model.MeetingDocument{MeetingDocumentID: "d1", MeetingID: "m1", Sequence: 1}

	resp, err := svc.GetByID(context.Background(), "m1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(resp.Members) != 1 || resp.Members[0].Staff == nil || resp.Members[0].Staff.StaffName != "Ann" {
		t.Errorf("unexpected members %+v", resp.Members)
	}
	if len(resp.Documents) != 2 || resp.Documents[0].ID != "d1" {
		t.Errorf("documents must be ordered by sequence, got %+v", resp.Documents)
	}
}

// ── List ──

func TestMeetingService_List_Filters(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.meetings.add("m2", day(2), model.StatusCompleted)

	page, err := svc.List(context.Background(), &dto.MeetingListRequest{
		PaginationRequest: dto.PaginationRequest{Page: 2, Limit: 5},
		Search:            " review ",
		Status:            "Completed",
		StartDate:         "2026-03-01",
		EndDate:           "2026-03-31",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Total != 1 || page.Page != 2 || page.Limit != 5 {
		t.Errorf("unexpected page %+v", page)
	}

	f := mocks.meetings.lastList
	if f.Search != "review" || f.Offset != 5 || f.Limit != 5 || f.Status != model.StatusCompleted {
		t.Errorf("unexpected filter %+v", f)
	}
	if f.StartDate == nil || f.EndDate == nil || f.StartDate.Day() != 1 || f.EndDate.Day() != 31 {
		t.Errorf("date range not parsed: %+v %+v", f.StartDate, f.EndDate)
	}
}

func TestMeetingService_List_InvertedRange(t *testing.T) {
	svc, _ := setupTestMeetingService()

	_, err := svc.List(context.Background(), &dto.MeetingListRequest{StartDate: "2026-04-01", EndDate: "2026-03-01"})
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestMeetingService_List_RepoError(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.listErr = errors.New("connection reset")

	if _, err := svc.List(context.Background(), &dto.MeetingListRequest{}); err == nil {
		t.Error("expected repository error to surface")
	}
}

// ── Stats / Upcoming ──

func TestMeetingService_Stats(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("past", day(-2), model.StatusScheduled)
	mocks.meetings.add("today", day(0), model.StatusScheduled)
	mocks.meetings.add("later", day(5), model.StatusScheduled)
	mocks.meetings.add("done", day(-1), model.StatusCompleted)
	mocks.meetings.add("off", day(4), model.StatusCancelled)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 5 || stats.Scheduled != 3 || stats.Completed != 1 || stats.Cancelled != 1 || stats.Ongoing != 0 {
		t.Errorf("unexpected counts %+v", stats)
	}
	if stats.Upcoming != 2 {
		t.Errorf("expected 2 upcoming (today and later), got %d", stats.Upcoming)
	}
}

func TestMeetingService_Upcoming_SortedAndLimited(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	for i := 6; i >= 0; i-- {
		mocks.meetings.add("m"+string(rune('a'+i)), day(i), model.StatusScheduled)
	}
	mocks.meetings.add("cancelled", day(0), model.StatusCancelled)

	result, err := svc.Upcoming(context.Background(), 0)
	if err != nil {
		t.Fatalf("Upcoming failed: %v", err)
	}
	if len(result) != defaultUpcomingLimit {
		t.Fatalf("expected default limit %d, got %d", defaultUpcomingLimit, len(result))
	}
	for i := 1; i < len(result); i++ {
		if result[i-1].MeetingDate > result[i].MeetingDate {
			t.Errorf("not sorted ascending: %s before %s", result[i-1].MeetingDate, result[i].MeetingDate)
		}
	}
	for _, m := range result {
		if m.Status != string(model.StatusScheduled) {
			t.Errorf("unexpected status %s in upcoming", m.Status)
		}
	}
}

// ── Calendar ──

func TestMeetingService_Calendar(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	m := mocks.meetings.add("m1", day(2), model.StatusCancelled)
	m.MeetingTime = "14:30"

	data, name, err := svc.Calendar(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if name != "meeting-m1.ics" {
		t.Errorf("unexpected file name %s", name)
	}
	body := string(data)
	for _, want := range []string{"BEGIN:VCALENDAR", "BEGIN:VEVENT", "SUMMARY:Meeting m1", "STATUS:CANCELLED", "CATEGORIES:Board", "20260312T143000Z"} {
		if !strings.Contains(body, want) {
			t.Errorf("calendar missing %q:\n%s", want, body)
		}
	}
}

func TestMeetingService_UpcomingCalendar(t *testing.T) {
	svc, mocks := setupTestMeetingService()
	mocks.meetings.add("m1", day(1), model.StatusScheduled)
	mocks.meetings.add("m2", day(2), model.StatusScheduled)

	data, _, err := svc.UpcomingCalendar(context.Background(), 10)
	if err != nil {
		t.Fatalf("UpcomingCalendar failed: %v", err)
	}
	if n := strings.Count(string(data), "BEGIN:VEVENT"); n != 2 {
		t.Errorf("expected 2 events, got %d", n)
	}
}

var _ repository.MeetingRepository = (*mockMeetingRepo)(nil)
