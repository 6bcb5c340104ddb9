package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Abeke05/Aristotel/internal/models"
	"github.com/Abeke05/Aristotel/pkg/storage"
)

const scheduleCollection = "schedule"

// ScheduleRepository provides collection access for schedule entries.
// The collection is append-only.
type ScheduleRepository struct {
	store *storage.Store
}

// NewScheduleRepository creates a new instance of ScheduleRepository.
func NewScheduleRepository(store *storage.Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

// All returns every stored schedule entry in insertion order.
func (r *ScheduleRepository) All(ctx context.Context) []models.ScheduleEntry {
	return storage.LoadAll[models.ScheduleEntry](r.store, scheduleCollection)
}

// Append adds a new entry at the tail of the collection and persists it.
func (r *ScheduleRepository) Append(ctx context.Context, entry *models.ScheduleEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	entries := r.All(ctx)
	entries = append(entries, *entry)
	if err := storage.SaveAll(r.store, scheduleCollection, entries); err != nil {
		return fmt.Errorf("append schedule entry: %w", err)
	}
	return nil
}
