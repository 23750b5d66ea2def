package domain

import "time"

// StaffAccount is an authenticated help-desk operator.
type StaffAccount struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
