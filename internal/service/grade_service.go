package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
	appErrors "github.com/Abeke05/Aristotel/pkg/errors"
)

type gradeRepository interface {
	All(ctx context.Context) []models.Grade
	ForStudent(ctx context.Context, studentID string) []models.Grade
	Append(ctx context.Context, grade *models.Grade) error
}

// GradeService records and reads grades. Grades are append-only and
// carry unvalidated references; the grade value is conventionally 1-5
// but this layer does not range-check it.
type GradeService struct {
	grades gradeRepository
	logger *zap.Logger
}

// NewGradeService constructs a GradeService instance.
func NewGradeService(grades gradeRepository, logger *zap.Logger) *GradeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{grades: grades, logger: logger}
}

// All returns every grade in insertion order.
func (s *GradeService) All(ctx context.Context) []models.Grade {
	return s.grades.All(ctx)
}

// ForStudent returns the grades referencing the given student.
func (s *GradeService) ForStudent(ctx context.Context, studentID string) []models.Grade {
	return s.grades.ForStudent(ctx, studentID)
}

// Add records a new grade at the tail of the collection. The only
// failure mode is the persistence step, reported as a storage error.
func (s *GradeService) Add(ctx context.Context, studentID, subject string, value int, teacherID string) (*models.Grade, error) {
	grade := &models.Grade{
		StudentID: studentID,
		Subject:   subject,
		Value:     value,
		TeacherID: teacherID,
	}
	if err := s.grades.Append(ctx, grade); err != nil {
		s.logger.Warn("failed to persist grade", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "failed to persist grade")
	}
	s.logger.Info("grade recorded",
		zap.String("grade_id", grade.ID),
		zap.String("student_id", studentID),
		zap.String("subject", subject))
	return grade, nil
}

// StudentSummary aggregates a student's grades: total count, average
// value and the number of top marks (value 5).
func (s *GradeService) StudentSummary(ctx context.Context, studentID string) models.GradeSummary {
	grades := s.grades.ForStudent(ctx, studentID)
	summary := models.GradeSummary{Total: len(grades)}
	if len(grades) == 0 {
		return summary
	}
	sum := 0
	for _, g := range grades {
		sum += g.Value
		if g.Value == 5 {
			summary.TopMarks++
		}
	}
	summary.Average = float64(sum) / float64(len(grades))
	return summary
}
