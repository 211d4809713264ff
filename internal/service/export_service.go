package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mom-portal/backend/internal/dto"
	"mom-portal/backend/internal/repository"
	apperrors "mom-portal/backend/pkg/errors"
)

var ErrExportGenerateFail = &apperrors.AppError{Kind: apperrors.KindInternal, Message: "Failed to generate Excel file"}

// maxExportRows upper bound on meetings written to one workbook
const maxExportRows = 5000

// ExportService Excel exports.
// Workbooks are returned as a buffer plus a suggested file name; the handler sets the headers.
type ExportService interface {
	// ExportMeetings meetings matching the list filters, paging ignored
	ExportMeetings(ctx context.Context, req *dto.MeetingListRequest) (*bytes.Buffer, string, error)
	// ExportAttendance attendance sheet of one meeting
	ExportAttendance(ctx context.Context, meetingID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportMeetings
// ═══════════════════════════════════════════════════════════
//
// One sheet "Meetings": date, time, title, type, status, cancellation reason, remarks.

func (s *exportService) ExportMeetings(ctx context.Context, req *dto.MeetingListRequest) (*bytes.Buffer, string, error) {
	filter, err := meetingFilter(req)
	if err != nil {
		return nil, "", err
	}
	filter.Limit = maxExportRows

	meetings, _, err := s.repo.Meeting.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list meetings for export", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Meetings"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Time", "Title", "Meeting Type", "Status", "Cancellation Reason", "Remarks"}
	widths := []float64{12, 8, 40, 22, 12, 30, 30}
	writeHeader(f, sheet, headers, widths)

	for i := range meetings {
		m := &meetings[i]
		row := i + 2
		typeName := ""
		if m.MeetingType != nil {
			typeName = m.MeetingType.MeetingTypeName
		}
		values := []interface{}{
			formatDate(m.MeetingDate),
			m.MeetingTime,
			m.MeetingTitle,
			typeName,
			string(m.Status),
			m.CancellationReason,
			m.Remarks,
		}
		for col, v := range values {
			f.SetCellValue(sheet, cell(colName(col), row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail.Wrap(err)
	}
	return buf, "meetings.xlsx", nil
}

// ═══════════════════════════════════════════════════════════
// ExportAttendance
// ═══════════════════════════════════════════════════════════
//
// Title row with the meeting, one row per member, then a summary block.

func (s *exportService) ExportAttendance(ctx context.Context, meetingID string) (*bytes.Buffer, string, error) {
	meeting, err := s.repo.Meeting.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrMeetingNotFound
		}
		s.logger.Error("failed to load meeting for export", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, "", err
	}

	members, err := s.repo.MeetingMember.ListByMeeting(ctx, meetingID)
	if err != nil {
		s.logger.Error("failed to list members for export", zap.String("meeting_id", meetingID), zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance"
	idx, _ := f.NewSheet(sheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"#", "Staff Name", "Email", "Mobile", "Present", "Remarks"}
	widths := []float64{6, 28, 30, 16, 10, 30}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s (%s %s)", meeting.MeetingTitle, formatDate(meeting.MeetingDate), meeting.MeetingTime))
	f.MergeCell(sheet, "A1", cell(colName(len(headers)-1), 1))

	// header on row 2
	style, _ := f.NewStyle(headerStyle())
	for i, h := range headers {
		col := colName(i)
		f.SetColWidth(sheet, col, col, widths[i])
		f.SetCellValue(sheet, cell(col, 2), h)
	}
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 2), style)

	var present int64
	row := 3
	for i := range members {
		mm := &members[i]
		name, email, mobile := "", "", ""
		if mm.Staff != nil {
			name, email, mobile = mm.Staff.StaffName, mm.Staff.EmailAddress, mm.Staff.MobileNo
		}
		mark := "No"
		if mm.IsPresent {
			mark = "Yes"
			present++
		}
		values := []interface{}{i + 1, name, email, mobile, mark, mm.Remarks}
		for col, v := range values {
			f.SetCellValue(sheet, cell(colName(col), row), v)
		}
		row++
	}

	total := int64(len(members))
	row++
	f.SetCellValue(sheet, cell("B", row), "Total")
	f.SetCellValue(sheet, cell("C", row), total)
	f.SetCellValue(sheet, cell("B", row+1), "Present")
	f.SetCellValue(sheet, cell("C", row+1), present)
	f.SetCellValue(sheet, cell("B", row+2), "Absent")
	f.SetCellValue(sheet, cell("C", row+2), total-present)
	f.SetCellValue(sheet, cell("B", row+3), "Attendance %")
	f.SetCellValue(sheet, cell("C", row+3), percentage(present, total))

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
		return nil, "", ErrExportGenerateFail.Wrap(err)
	}
	return buf, fmt.Sprintf("attendance_%s.xlsx", meeting.MeetingID), nil
}

// ── helpers ──

func headerStyle() *excelize.Style {
	return &excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	}
}

// writeHeader header on row 1 with column widths
func writeHeader(f *excelize.File, sheet string, headers []string, widths []float64) {
	style, _ := f.NewStyle(headerStyle())
	for i, h := range headers {
		col := colName(i)
		f.SetColWidth(sheet, col, col, widths[i])
		f.SetCellValue(sheet, cell(col, 1), h)
	}
	f.SetCellStyle(sheet, "A1", cell(colName(len(headers)-1), 1), style)
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
