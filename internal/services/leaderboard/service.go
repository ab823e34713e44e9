package leaderboard

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// SortKey selects the primary ranking column.
type SortKey string

const (
	SortByWins     SortKey = "wins"
	SortByEarnings SortKey = "earnings"
)

// IsValid reports whether k is a recognised sort key.
func (k SortKey) IsValid() bool {
	return k == SortByWins || k == SortByEarnings
}

// Entry is one ranked row. Rank is 1-based and consecutive; tied players
// still receive distinct ranks in tie-break order.
type Entry struct {
	Rank   int
	Player *model.Player
}

// Service ranks the roster by lifetime wins or earnings.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new leaderboard Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Rank returns the whole roster ordered by the given key, descending, with
// the other key as tie-breaker, also descending. An empty key defaults to
// wins.
func (s *Service) Rank(ctx context.Context, key SortKey) ([]Entry, error) {
	if key == "" {
		key = SortByWins
	}
	if !key.IsValid() {
		return nil, model.ErrInvalidSortKey
	}

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		switch key {
		case SortByEarnings:
			if !a.Earnings.Equal(b.Earnings) {
				return a.Earnings.GreaterThan(b.Earnings)
			}
			return a.Wins > b.Wins
		default:
			if a.Wins != b.Wins {
				return a.Wins > b.Wins
			}
			return a.Earnings.GreaterThan(b.Earnings)
		}
	})

	entries := make([]Entry, len(players))
	for i, p := range players {
		entries[i] = Entry{Rank: i + 1, Player: p}
	}
	return entries, nil
}
