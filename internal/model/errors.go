package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmptyPlayerName = errors.New("player name must not be empty")
	ErrNegativeWins    = errors.New("wins must not be negative")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidGameType = errors.New("invalid game type")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime     = errors.New("time must be in HH:MM format")
	ErrNegativeBuyIn   = errors.New("buy-in must not be negative")

	// Membership errors
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrAlreadyInSession    = errors.New("player already has a membership in this session")
	ErrMembershipCompleted = errors.New("membership is already completed")
	ErrNonPositiveRebuy    = errors.New("rebuy amount must be positive")
	ErrNegativeAmount      = errors.New("amount must not be negative")

	// Leaderboard errors
	ErrInvalidSortKey = errors.New("invalid sort key")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
)
