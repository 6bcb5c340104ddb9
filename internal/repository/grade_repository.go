package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

const gradesCollection = "grades"

// GradeRepository provides collection access for grade entries. The
// collection is append-only.
type GradeRepository struct {
	store *storage.Store
}

// NewGradeRepository creates a new instance of GradeRepository.
func NewGradeRepository(store *storage.Store) *GradeRepository {
	return &GradeRepository{store: store}
}

// All returns every stored grade in insertion order.
func (r *GradeRepository) All(ctx context.Context) []models.Grade {
	return storage.LoadAll[models.Grade](r.store, gradesCollection)
}

// ForStudent returns the grades whose student reference matches exactly,
// in insertion order. The reference is not resolved against the users
// collection.
func (r *GradeRepository) ForStudent(ctx context.Context, studentID string) []models.Grade {
	var result []models.Grade
	for _, grade := range r.All(ctx) {
		if grade.StudentID == studentID {
			result = append(result, grade)
		}
	}
	return result
}

// Append adds a new grade at the tail of the collection and persists it.
func (r *GradeRepository) Append(ctx context.Context, grade *models.Grade) error {
	if grade.ID == "" {
		grade.ID = uuid.NewString()
	}
	if grade.CreatedAt.IsZero() {
		grade.CreatedAt = time.Now().UTC()
	}
	grades := r.All(ctx)
	grades = append(grades, *grade)
	if err := storage.SaveAll(r.store, gradesCollection, grades); err != nil {
		return fmt.Errorf("append grade: %w", err)
	}
	return nil
}
