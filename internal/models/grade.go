package models

import "time"

// Grade is a single mark issued by a teacher to a student. Entries are
// append-only; there is no update or delete path. StudentID and TeacherID
// are plain references and are not checked against the users collection —
// a dangling reference is resolved to "Unknown" at display time.
type Grade struct {
	ID        string    `json:"id"`
	StudentID string    `json:"student_id"`
	Subject   string    `json:"subject"`
	Value     int       `json:"grade"`
	TeacherID string    `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GradeSummary aggregates a student's grades for dashboard display.
type GradeSummary struct {
	Total    int     `json:"total"`
	Average  float64 `json:"average"`
	TopMarks int     `json:"top_marks"`
}
