package entity

import "time"

// User is an application operator. Users are created by an admin (or the
// seed), never through public self-registration.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
