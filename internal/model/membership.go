package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MembershipID uniquely identifies a membership row
type MembershipID string

// MembershipStatus is the lifecycle state of a membership
type MembershipStatus string

const (
	// StatusPlaying means the player is still in the game; rebuys and a
	// single cash-out are accepted.
	StatusPlaying MembershipStatus = "playing"
	// StatusCompleted is terminal: the player has cashed out and the row
	// is frozen.
	StatusCompleted MembershipStatus = "completed"
)

// ProfitClass is the presentation bucket for a settled membership's profit
type ProfitClass string

const (
	ProfitGain ProfitClass = "gain"
	ProfitLoss ProfitClass = "loss"
	ProfitEven ProfitClass = "even"
)

// Membership records one player's financial participation in one session.
//
// InitialBuyIn is set once at join time and never changes. TotalBuyIn starts
// equal to InitialBuyIn and only ever increases (rebuys). CashOut is nil
// while playing and set exactly once at settlement.
type Membership struct {
	ID           MembershipID
	SessionID    SessionID
	PlayerID     PlayerID
	InitialBuyIn decimal.Decimal
	TotalBuyIn   decimal.Decimal
	CashOut      *decimal.Decimal
	Status       MembershipStatus
	JoinedAt     time.Time
	UpdatedAt    time.Time
}

// Profit returns cash_out - total_buy_in. The second return is false until
// the membership is completed; profit is undefined while playing.
func (m *Membership) Profit() (decimal.Decimal, bool) {
	if m.Status != StatusCompleted || m.CashOut == nil {
		return decimal.Decimal{}, false
	}
	return m.CashOut.Sub(m.TotalBuyIn), true
}

// ProfitClass buckets the profit sign for display. Returns false while the
// membership is still playing.
func (m *Membership) ProfitClass() (ProfitClass, bool) {
	profit, ok := m.Profit()
	if !ok {
		return "", false
	}
	switch profit.Sign() {
	case 1:
		return ProfitGain, true
	case -1:
		return ProfitLoss, true
	default:
		return ProfitEven, true
	}
}
