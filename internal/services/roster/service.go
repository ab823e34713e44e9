package roster

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwjones-dev/pokernight/internal/dependencies/clock"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// SortKey selects the ordering for ListPlayers
type SortKey string

const (
	SortByEarnings SortKey = "earnings"
	SortByName     SortKey = "name"
)

// Service manages the player directory
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new roster Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// AddPlayer creates a new roster entry. Earnings and wins seed values are
// accepted so existing season records can be carried in.
func (s *Service) AddPlayer(ctx context.Context, name string, earnings decimal.Decimal, wins int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}
	if wins < 0 {
		return nil, model.ErrNegativeWins
	}

	now := s.clock.Now()
	player := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		Name:      name,
		Earnings:  earnings,
		Wins:      wins,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player added", slog.String("player_id", string(player.ID)), slog.String("name", name))
	return player, nil
}

// UpdatePlayer overwrites all mutable fields of a player
func (s *Service) UpdatePlayer(ctx context.Context, id model.PlayerID, name string, earnings decimal.Decimal, wins int) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyPlayerName
	}
	if wins < 0 {
		return nil, model.ErrNegativeWins
	}

	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.Name = name
	player.Earnings = earnings
	player.Wins = wins
	player.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// RemovePlayer deletes a roster entry. Memberships referencing the player
// are left in place; member listings degrade to an empty display name.
func (s *Service) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	return s.storage.DeletePlayer(ctx, id)
}

// GetPlayer fetches a single player
func (s *Service) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// ListPlayers returns the directory ordered by the requested key. desc
// selects descending order; the directory page defaults to earnings
// descending.
func (s *Service) ListPlayers(ctx context.Context, key SortKey, desc bool) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(players, func(i, j int) bool {
		var less bool
		switch key {
		case SortByName:
			less = strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
		default:
			less = players[i].Earnings.LessThan(players[j].Earnings)
		}
		if desc {
			return !less && !equalByKey(players[i], players[j], key)
		}
		return less
	})

	return players, nil
}

func equalByKey(a, b *model.Player, key SortKey) bool {
	if key == SortByName {
		return strings.EqualFold(a.Name, b.Name)
	}
	return a.Earnings.Equal(b.Earnings)
}
