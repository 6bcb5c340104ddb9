package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/internal/service"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

// DemoPassword is the plaintext behind every seeded account.
const DemoPassword = "password"

// Ensure installs the demo dataset when the users collection is empty:
// three accounts, five grades and five schedule entries. Existing data,
// even partial, is left untouched.
func Ensure(store *storage.Store, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(storage.LoadAll[models.User](store, "users")) > 0 {
		return nil
	}

	now := time.Now().UTC()
	hash := service.HashPassword(DemoPassword)

	student := models.User{
		ID: uuid.NewString(), Email: "student@university.edu",
		Name: "Ivan Petrov", Role: models.RoleStudent,
		PasswordHash: hash, CreatedAt: now,
	}
	teacher := models.User{
		ID: uuid.NewString(), Email: "teacher@university.edu",
		Name: "Maria Ivanova", Role: models.RoleTeacher,
		PasswordHash: hash, CreatedAt: now,
	}
	student2 := models.User{
		ID: uuid.NewString(), Email: "student2@university.edu",
		Name: "Anna Sidorova", Role: models.RoleStudent,
		PasswordHash: hash, CreatedAt: now,
	}
	users := []models.User{student, teacher, student2}

	grades := []models.Grade{
		{ID: uuid.NewString(), StudentID: student.ID, Subject: "Math", Value: 5, TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), StudentID: student.ID, Subject: "Physics", Value: 4, TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), StudentID: student.ID, Subject: "Chemistry", Value: 5, TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), StudentID: student2.ID, Subject: "Math", Value: 4, TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), StudentID: student2.ID, Subject: "Physics", Value: 3, TeacherID: teacher.ID, CreatedAt: now},
	}

	schedule := []models.ScheduleEntry{
		{ID: uuid.NewString(), Subject: "Math", DayOfWeek: "Monday", TimeSlot: "09:00-10:30", Room: "101", TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), Subject: "Physics", DayOfWeek: "Monday", TimeSlot: "11:00-12:30", Room: "102", TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), Subject: "Chemistry", DayOfWeek: "Tuesday", TimeSlot: "09:00-10:30", Room: "103", TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), Subject: "Math", DayOfWeek: "Wednesday", TimeSlot: "10:00-11:30", Room: "101", TeacherID: teacher.ID, CreatedAt: now},
		{ID: uuid.NewString(), Subject: "Physics", DayOfWeek: "Thursday", TimeSlot: "14:00-15:30", Room: "102", TeacherID: teacher.ID, CreatedAt: now},
	}

	if err := storage.SaveAll(store, "users", users); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := storage.SaveAll(store, "grades", grades); err != nil {
		return fmt.Errorf("seed grades: %w", err)
	}
	if err := storage.SaveAll(store, "schedule", schedule); err != nil {
		return fmt.Errorf("seed schedule: %w", err)
	}

	logger.Info("demo data installed",
		zap.Int("users", len(users)),
		zap.Int("grades", len(grades)),
		zap.Int("schedule_entries", len(schedule)))
	return nil
}
