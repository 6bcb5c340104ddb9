package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/pkg/export"
)

// dateLayout matches the date format the dashboards display.
const dateLayout = "02.01.2006"

type exportGradeSource interface {
	All(ctx context.Context) []models.Grade
	ForStudent(ctx context.Context, studentID string) []models.Grade
}

type exportScheduleSource interface {
	WeekView(ctx context.Context) []models.ScheduleDay
}

type exportUserSource interface {
	DisplayName(ctx context.Context, id string) string
	Roster(ctx context.Context) []models.RosterRow
}

// ExportService renders the dashboard read models as CSV or PDF bytes.
// It never touches the filesystem; callers decide where bytes go.
type ExportService struct {
	grades   exportGradeSource
	schedule exportScheduleSource
	users    exportUserSource
	csv      *export.CSVRenderer
	pdf      *export.PDFRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService instance.
func NewExportService(grades exportGradeSource, schedule exportScheduleSource, users exportUserSource, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		grades:   grades,
		schedule: schedule,
		users:    users,
		csv:      export.NewCSVRenderer(),
		pdf:      export.NewPDFRenderer(),
		logger:   logger,
	}
}

// StudentReport tabulates one student's grades with resolved teacher
// names and issue dates.
func (s *ExportService) StudentReport(ctx context.Context, studentID string) export.Table {
	table := export.Table{
		Title:   "Grade report: " + s.users.DisplayName(ctx, studentID),
		Columns: []string{"Subject", "Grade", "Teacher", "Date"},
	}
	for _, grade := range s.grades.ForStudent(ctx, studentID) {
		table.Rows = append(table.Rows, []string{
			grade.Subject,
			strconv.Itoa(grade.Value),
			s.users.DisplayName(ctx, grade.TeacherID),
			grade.CreatedAt.Format(dateLayout),
		})
	}
	return table
}

// GradeBook tabulates every grade with resolved student and teacher
// names.
func (s *ExportService) GradeBook(ctx context.Context) export.Table {
	table := export.Table{
		Title:   "Grade book",
		Columns: []string{"Student", "Subject", "Grade", "Teacher", "Date"},
	}
	for _, grade := range s.grades.All(ctx) {
		table.Rows = append(table.Rows, []string{
			s.users.DisplayName(ctx, grade.StudentID),
			grade.Subject,
			strconv.Itoa(grade.Value),
			s.users.DisplayName(ctx, grade.TeacherID),
			grade.CreatedAt.Format(dateLayout),
		})
	}
	return table
}

// WeekSchedule tabulates the week view with one row per lesson.
func (s *ExportService) WeekSchedule(ctx context.Context) export.Table {
	table := export.Table{
		Title:   "Class schedule",
		Columns: []string{"Day", "Time", "Subject", "Room", "Teacher"},
	}
	for _, day := range s.schedule.WeekView(ctx) {
		for _, entry := range day.Entries {
			table.Rows = append(table.Rows, []string{
				day.Day,
				entry.TimeSlot,
				entry.Subject,
				entry.Room,
				s.users.DisplayName(ctx, entry.TeacherID),
			})
		}
	}
	return table
}

// Roster tabulates the student roster.
func (s *ExportService) Roster(ctx context.Context) export.Table {
	table := export.Table{
		Title:   "Students",
		Columns: []string{"Name", "Email", "Grades", "Average"},
	}
	for _, row := range s.users.Roster(ctx) {
		average := "-"
		if row.GradeCount > 0 {
			average = strconv.FormatFloat(row.Average, 'f', 2, 64)
		}
		table.Rows = append(table.Rows, []string{
			row.Name,
			row.Email,
			strconv.Itoa(row.GradeCount),
			average,
		})
	}
	return table
}

// RenderCSV encodes a table as CSV bytes.
func (s *ExportService) RenderCSV(table export.Table) ([]byte, error) {
	return s.csv.Render(table)
}

// RenderPDF encodes a table as a PDF document.
func (s *ExportService) RenderPDF(table export.Table) ([]byte, error) {
	return s.pdf.Render(table)
}
