package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
)

// UnknownName is what a dangling user reference resolves to. References
// held by grades and schedule entries are never validated at write time,
// so display paths must tolerate misses.
const UnknownName = "Unknown"

type userDirectory interface {
	All(ctx context.Context) []models.User
	FindByEmail(ctx context.Context, email string) *models.User
	FindByID(ctx context.Context, id string) *models.User
	ListByRole(ctx context.Context, role models.Role) []models.User
}

type studentGradeReader interface {
	ForStudent(ctx context.Context, studentID string) []models.Grade
}

// UserService provides account lookups and the student roster read model.
type UserService struct {
	users  userDirectory
	grades studentGradeReader
	logger *zap.Logger
}

// NewUserService constructs a UserService instance.
func NewUserService(users userDirectory, grades studentGradeReader, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, grades: grades, logger: logger}
}

// FindByEmail returns the user with the given email, or nil if none
// exists. A miss is normal control flow, not an error.
func (s *UserService) FindByEmail(ctx context.Context, email string) *models.User {
	return s.users.FindByEmail(ctx, email)
}

// FindByID returns the user with the given identifier, or nil on a miss.
func (s *UserService) FindByID(ctx context.Context, id string) *models.User {
	return s.users.FindByID(ctx, id)
}

// ListStudents returns all accounts with the student role.
func (s *UserService) ListStudents(ctx context.Context) []models.User {
	return s.users.ListByRole(ctx, models.RoleStudent)
}

// ListTeachers returns all accounts with the teacher role.
func (s *UserService) ListTeachers(ctx context.Context) []models.User {
	return s.users.ListByRole(ctx, models.RoleTeacher)
}

// DisplayName resolves a user reference to a name for display, falling
// back to UnknownName when the reference dangles.
func (s *UserService) DisplayName(ctx context.Context, id string) string {
	if user := s.users.FindByID(ctx, id); user != nil {
		return user.Name
	}
	return UnknownName
}

// Roster lists every student with their grade count and average value.
// Students without grades report a zero average.
func (s *UserService) Roster(ctx context.Context) []models.RosterRow {
	students := s.ListStudents(ctx)
	rows := make([]models.RosterRow, 0, len(students))
	for _, student := range students {
		grades := s.grades.ForStudent(ctx, student.ID)
		row := models.RosterRow{
			StudentID:  student.ID,
			Name:       student.Name,
			Email:      student.Email,
			GradeCount: len(grades),
		}
		if len(grades) > 0 {
			sum := 0
			for _, g := range grades {
				sum += g.Value
			}
			row.Average = float64(sum) / float64(len(grades))
		}
		rows = append(rows, row)
	}
	return rows
}
