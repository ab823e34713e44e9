package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlayerID uniquely identifies a roster player across the system
type PlayerID string

// Player is a roster entry with cumulative season stats.
//
// Earnings and Wins are season bookkeeping edited independently of session
// ledgers; they are not derived from settled memberships.
type Player struct {
	ID        PlayerID
	Name      string
	Earnings  decimal.Decimal
	Wins      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
