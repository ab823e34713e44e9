package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/services/auth"
	"github.com/mwjones-dev/pokernight/internal/services/leaderboard"
	"github.com/mwjones-dev/pokernight/internal/services/ledger"
	"github.com/mwjones-dev/pokernight/internal/services/schedule"
)

// Player represents a roster player in API responses
type Player struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Wins      int             `json:"wins"`
	Earnings  decimal.Decimal `json:"earnings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		Wins:      p.Wins,
		Earnings:  p.Earnings,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayersFromModel converts a slice of model players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	AccountID    string    `json:"account_id"`
	Email        string    `json:"email"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		AccountID:    string(s.AccountID),
		Email:        s.Email,
		SessionToken: s.Token,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Session represents a scheduled session in API responses
type Session struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	GameType    string          `json:"game_type"`
	BuyIn       decimal.Decimal `json:"buy_in"`
	Date        string          `json:"date"`
	Time        string          `json:"time,omitempty"`
	StartsAt    time.Time       `json:"starts_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SessionFromModel converts a model.Session to a response Session
func SessionFromModel(s *model.Session) Session {
	return Session{
		ID:          string(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Location:    s.Location,
		GameType:    string(s.GameType),
		BuyIn:       s.BuyIn,
		Date:        s.Date.Format(model.DateFormat),
		Time:        s.TimeOfDay,
		StartsAt:    s.StartsAt(),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SessionsFromModel converts a slice of model sessions
func SessionsFromModel(sessions []*model.Session) []Session {
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		out[i] = SessionFromModel(s)
	}
	return out
}

// Schedule splits sessions into upcoming and past
type Schedule struct {
	Upcoming []Session `json:"upcoming"`
	Past     []Session `json:"past"`
}

// ScheduleFromPartition converts a schedule partition
func ScheduleFromPartition(p *schedule.Partition) Schedule {
	return Schedule{
		Upcoming: SessionsFromModel(p.Upcoming),
		Past:     SessionsFromModel(p.Past),
	}
}

// SessionPlayer is one ledger row: a membership joined with the player name.
// Profit and ProfitClass are only present once the player has cashed out.
type SessionPlayer struct {
	PlayerID     string           `json:"player_id"`
	PlayerName   string           `json:"player_name"`
	InitialBuyIn decimal.Decimal  `json:"initial_buy_in"`
	TotalBuyIn   decimal.Decimal  `json:"total_buy_in"`
	CashOut      *decimal.Decimal `json:"cash_out"`
	Status       string           `json:"status"`
	Profit       *decimal.Decimal `json:"profit,omitempty"`
	ProfitClass  string           `json:"profit_class,omitempty"`
	JoinedAt     time.Time        `json:"joined_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// SessionPlayerFromMembership converts a membership with a player name
func SessionPlayerFromMembership(m *model.Membership, playerName string) SessionPlayer {
	sp := SessionPlayer{
		PlayerID:     string(m.PlayerID),
		PlayerName:   playerName,
		InitialBuyIn: m.InitialBuyIn,
		TotalBuyIn:   m.TotalBuyIn,
		CashOut:      m.CashOut,
		Status:       string(m.Status),
		JoinedAt:     m.JoinedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if profit, ok := m.Profit(); ok {
		sp.Profit = &profit
	}
	if class, ok := m.ProfitClass(); ok {
		sp.ProfitClass = string(class)
	}
	return sp
}

// SessionPlayersFromMembers converts ledger members
func SessionPlayersFromMembers(members []ledger.Member) []SessionPlayer {
	out := make([]SessionPlayer, len(members))
	for i, m := range members {
		out[i] = SessionPlayerFromMembership(m.Membership, m.PlayerName)
	}
	return out
}

// LeaderboardEntry is one ranked leaderboard row
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
}

// LeaderboardFromEntries converts leaderboard entries
func LeaderboardFromEntries(entries []leaderboard.Entry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Rank:   e.Rank,
			Player: PlayerFromModel(e.Player),
		}
	}
	return out
}
