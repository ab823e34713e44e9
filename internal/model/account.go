package model

import "time"

// AccountID uniquely identifies an operator account
type AccountID string

// Account is an operator login. Accounts gate the mutating surface of the
// service; they are unrelated to roster Players, who never log in.
type Account struct {
	ID           AccountID
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
