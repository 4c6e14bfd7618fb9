package models

import "time"

// User is a stored credential plus the profile fields exposed to its owner.
// PasswordHash doubles as the signing secret for the user's session tokens.
type User struct {
	ID           string
	UserName     string
	Email        string
	PasswordSalt string
	PasswordHash string
	CreatedAt    time.Time
}
