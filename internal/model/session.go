package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionID uniquely identifies a scheduled game night
type SessionID string

// GameType is the poker variant played at a session
type GameType string

const (
	GameTypeTexasHoldem   GameType = "Texas Hold'em"
	GameTypeOmaha         GameType = "Omaha"
	GameTypeSevenCardStud GameType = "Seven Card Stud"
	GameTypeFiveCardDraw  GameType = "Five Card Draw"
)

// GameTypes lists every valid game type in display order
func GameTypes() []GameType {
	return []GameType{
		GameTypeTexasHoldem,
		GameTypeOmaha,
		GameTypeSevenCardStud,
		GameTypeFiveCardDraw,
	}
}

// IsValid reports whether gt is one of the fixed game types
func (gt GameType) IsValid() bool {
	switch gt {
	case GameTypeTexasHoldem, GameTypeOmaha, GameTypeSevenCardStud, GameTypeFiveCardDraw:
		return true
	}
	return false
}

// DateFormat and TimeFormat are the wire formats for session scheduling fields
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Session is a scheduled (or already played) game night.
//
// Date is normalized to midnight UTC; TimeOfDay is the validated "HH:MM"
// start time. BuyIn is the session's standard stake, used to pre-fill a new
// membership's initial buy-in but not to constrain it.
type Session struct {
	ID          SessionID
	Name        string
	Description string
	Location    string
	GameType    GameType
	BuyIn       decimal.Decimal
	Date        time.Time
	TimeOfDay   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartsAt returns the session's chronological position, combining Date and
// TimeOfDay. TimeOfDay is validated at creation, so a parse failure falls
// back to midnight.
func (s *Session) StartsAt() time.Time {
	t, err := time.Parse(TimeFormat, s.TimeOfDay)
	if err != nil {
		return s.Date
	}
	return s.Date.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}
