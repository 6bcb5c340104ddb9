package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/Abeke05/Aristotel/internal/models"
	appErrors "github.com/Abeke05/Aristotel/pkg/errors"
)

type scheduleRepository interface {
	All(ctx context.Context) []models.ScheduleEntry
	Append(ctx context.Context, entry *models.ScheduleEntry) error
}

// weekOrder is the conventional display order for day labels. Day values
// are free text, so unknown labels sort after these, in first-seen order.
var weekOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// ScheduleService records and reads the shared class schedule.
type ScheduleService struct {
	entries scheduleRepository
	logger  *zap.Logger
}

// NewScheduleService constructs a ScheduleService instance.
func NewScheduleService(entries scheduleRepository, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{entries: entries, logger: logger}
}

// All returns every schedule entry in insertion order.
func (s *ScheduleService) All(ctx context.Context) []models.ScheduleEntry {
	return s.entries.All(ctx)
}

// Add records a new schedule entry at the tail of the collection. The
// only failure mode is the persistence step.
func (s *ScheduleService) Add(ctx context.Context, subject, dayOfWeek, timeSlot, room, teacherID string) (*models.ScheduleEntry, error) {
	entry := &models.ScheduleEntry{
		Subject:   subject,
		DayOfWeek: dayOfWeek,
		TimeSlot:  timeSlot,
		Room:      room,
		TeacherID: teacherID,
	}
	if err := s.entries.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to persist schedule entry", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrStorage.Code, "failed to persist schedule entry")
	}
	s.logger.Info("schedule entry recorded",
		zap.String("entry_id", entry.ID),
		zap.String("day", dayOfWeek),
		zap.String("subject", subject))
	return entry, nil
}

// WeekView groups entries by weekday in week order, each day sorted by
// time slot. Days without entries are omitted; unrecognised day labels
// follow the known weekdays in first-seen order.
func (s *ScheduleService) WeekView(ctx context.Context) []models.ScheduleDay {
	byDay := make(map[string][]models.ScheduleEntry)
	var dayOrder []string
	known := make(map[string]bool, len(weekOrder))
	for _, day := range weekOrder {
		known[day] = true
	}

	for _, entry := range s.entries.All(ctx) {
		if _, seen := byDay[entry.DayOfWeek]; !seen && !known[entry.DayOfWeek] {
			dayOrder = append(dayOrder, entry.DayOfWeek)
		}
		byDay[entry.DayOfWeek] = append(byDay[entry.DayOfWeek], entry)
	}

	var view []models.ScheduleDay
	for _, day := range append(append([]string{}, weekOrder...), dayOrder...) {
		entries := byDay[day]
		if len(entries) == 0 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].TimeSlot < entries[j].TimeSlot
		})
		view = append(view, models.ScheduleDay{Day: day, Entries: entries})
	}
	return view
}
