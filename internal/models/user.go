package models

import "time"

// Role is the closed set of account roles. It is fixed at registration
// and never changes afterwards.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is an account stored in the users collection. The password is held
// only as a one-way digest.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// RosterRow summarises one student for the roster view.
type RosterRow struct {
	StudentID  string  `json:"student_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	GradeCount int     `json:"grade_count"`
	Average    float64 `json:"average"`
}
