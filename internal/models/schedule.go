package models

import "time"

// ScheduleEntry is one lesson slot in the shared class schedule. Day and
// time slot are free text; by convention the day is one of the six named
// weekdays and the slot looks like "09:00-10:30".
type ScheduleEntry struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	DayOfWeek string    `json:"day_of_week"`
	TimeSlot  string    `json:"time_slot"`
	Room      string    `json:"room"`
	TeacherID string    `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ScheduleDay groups entries for a single weekday, sorted by time slot.
type ScheduleDay struct {
	Day     string          `json:"day"`
	Entries []ScheduleEntry `json:"entries"`
}
