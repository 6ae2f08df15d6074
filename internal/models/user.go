package models

import "time"

// Account roles. Public signup always produces a student; teacher and
// admin accounts are seeded or promoted out of band.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PIC is the person-in-charge directory entry exposed to the report form.
type PIC struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
