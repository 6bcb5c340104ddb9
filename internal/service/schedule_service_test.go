package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abeke05/Aristotel/internal/models"
	appErrors "github.com/Abeke05/Aristotel/pkg/errors"
)

type mockScheduleRepo struct {
	entries   []models.ScheduleEntry
	appendErr error
}

func (m *mockScheduleRepo) All(ctx context.Context) []models.ScheduleEntry { return m.entries }

func (m *mockScheduleRepo) Append(ctx context.Context, entry *models.ScheduleEntry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	if entry.ID == "" {
		entry.ID = "generated"
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func TestAddEntryAppends(t *testing.T) {
	repo := &mockScheduleRepo{}
	svc := NewScheduleService(repo, nil)

	entry, err := svc.Add(context.Background(), "Biology", "Friday", "13:00-14:30", "201", "tea")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, "Biology", repo.entries[0].Subject)
}

func TestAddEntryReportsStorageFailure(t *testing.T) {
	repo := &mockScheduleRepo{appendErr: errors.New("read-only fs")}
	svc := NewScheduleService(repo, nil)

	_, err := svc.Add(context.Background(), "Biology", "Friday", "13:00-14:30", "201", "tea")
	assert.ErrorIs(t, err, appErrors.ErrStorage)
}

func TestWeekViewGroupsAndSorts(t *testing.T) {
	repo := &mockScheduleRepo{entries: []models.ScheduleEntry{
		{Subject: "Physics", DayOfWeek: "Monday", TimeSlot: "11:00-12:30"},
		{Subject: "Chemistry", DayOfWeek: "Tuesday", TimeSlot: "09:00-10:30"},
		{Subject: "Math", DayOfWeek: "Monday", TimeSlot: "09:00-10:30"},
	}}
	svc := NewScheduleService(repo, nil)

	view := svc.WeekView(context.Background())
	require.Len(t, view, 2)

	assert.Equal(t, "Monday", view[0].Day)
	require.Len(t, view[0].Entries, 2)
	assert.Equal(t, "Math", view[0].Entries[0].Subject)
	assert.Equal(t, "Physics", view[0].Entries[1].Subject)

	assert.Equal(t, "Tuesday", view[1].Day)
}

func TestWeekViewKeepsUnknownDayLabels(t *testing.T) {
	repo := &mockScheduleRepo{entries: []models.ScheduleEntry{
		{Subject: "Seminar", DayOfWeek: "Someday", TimeSlot: "10:00-11:00"},
		{Subject: "Math", DayOfWeek: "Friday", TimeSlot: "09:00-10:30"},
	}}
	svc := NewScheduleService(repo, nil)

	view := svc.WeekView(context.Background())
	require.Len(t, view, 2)
	// Known weekdays come first, free-text labels trail in first-seen order.
	assert.Equal(t, "Friday", view[0].Day)
	assert.Equal(t, "Someday", view[1].Day)
}

func TestWeekViewEmptySchedule(t *testing.T) {
	svc := NewScheduleService(&mockScheduleRepo{}, nil)
	assert.Empty(t, svc.WeekView(context.Background()))
}
