package request

import "github.com/shopspring/decimal"

// RegisterRequest is the request body for registering an operator account
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for adding a player to the roster
type CreatePlayerRequest struct {
	Name     string           `json:"name"`
	Wins     int              `json:"wins,omitempty"`
	Earnings *decimal.Decimal `json:"earnings,omitempty"`
}

// UpdatePlayerRequest is the request body for updating a roster player.
// All fields are required; the update is a full overwrite.
type UpdatePlayerRequest struct {
	Name     string          `json:"name"`
	Wins     int             `json:"wins"`
	Earnings decimal.Decimal `json:"earnings"`
}

// CreateSessionRequest is the request body for scheduling a session
type CreateSessionRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	GameType    string          `json:"game_type"`
	BuyIn       decimal.Decimal `json:"buy_in"`
	Date        string          `json:"date"`
	Time        string          `json:"time"`
}

// UpdateSessionRequest is the request body for editing a session.
// Absent fields are left unchanged.
type UpdateSessionRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Location    *string          `json:"location,omitempty"`
	GameType    *string          `json:"game_type,omitempty"`
	BuyIn       *decimal.Decimal `json:"buy_in,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Time        *string          `json:"time,omitempty"`
}

// JoinSessionRequest is the request body for adding a player to a session.
// BuyIn is a pointer so a missing amount can be told apart from an explicit
// zero buy-in.
type JoinSessionRequest struct {
	PlayerID string           `json:"player_id"`
	BuyIn    *decimal.Decimal `json:"buy_in"`
}

// RebuyRequest is the request body for recording a rebuy
type RebuyRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CashOutRequest is the request body for cashing a player out
type CashOutRequest struct {
	Amount decimal.Decimal `json:"amount"`
}
