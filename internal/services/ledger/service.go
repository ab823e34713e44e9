package ledger

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwjones-dev/pokernight/internal/dependencies/clock"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// Member is a membership joined with the player's display name for listing.
// PlayerName is empty when the roster entry has since been removed.
type Member struct {
	Membership *model.Membership
	PlayerName string
}

// Service runs the session ledger: joins, rebuys and cash-outs.
//
// Every mutation is a read-modify-write against the store, serialized under
// mu so a double-submitted operation cannot interleave within this process.
// Nothing defends against a concurrent writer in another process.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new ledger Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Join adds a player to a session with an opening buy-in. The session's
// standard buy-in is a UI default only; any non-negative amount is accepted,
// including zero. A player may hold at most one membership per session,
// in any status.
func (s *Service) Join(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, buyIn decimal.Decimal) (*model.Membership, error) {
	if buyIn.IsNegative() {
		return nil, model.ErrNegativeAmount
	}

	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.storage.GetMembership(ctx, sessionID, playerID)
	if err == nil {
		return nil, model.ErrAlreadyInSession
	}
	if !errors.Is(err, model.ErrMembershipNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	m := &model.Membership{
		ID:           model.MembershipID(uuid.NewString()),
		SessionID:    sessionID,
		PlayerID:     playerID,
		InitialBuyIn: buyIn,
		TotalBuyIn:   buyIn,
		Status:       model.StatusPlaying,
		JoinedAt:     now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveMembership(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("player joined session",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
		slog.String("buy_in", buyIn.String()),
	)
	return m, nil
}

// Rebuy adds to a playing membership's total buy-in. The amount must be
// strictly positive; the initial buy-in is never touched.
func (s *Service) Rebuy(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, amount decimal.Decimal) (*model.Membership, error) {
	if !amount.IsPositive() {
		return nil, model.ErrNonPositiveRebuy
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.storage.GetMembership(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}
	if m.Status != model.StatusPlaying {
		return nil, model.ErrMembershipCompleted
	}

	m.TotalBuyIn = m.TotalBuyIn.Add(amount)
	m.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveMembership(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("rebuy recorded",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
		slog.String("amount", amount.String()),
		slog.String("total_buy_in", m.TotalBuyIn.String()),
	)
	return m, nil
}

// CashOut settles a playing membership. The cash-out amount is set exactly
// once and the membership becomes completed, which is terminal: there is no
// reopen and no second cash-out.
func (s *Service) CashOut(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID, amount decimal.Decimal) (*model.Membership, error) {
	if amount.IsNegative() {
		return nil, model.ErrNegativeAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.storage.GetMembership(ctx, sessionID, playerID)
	if err != nil {
		return nil, err
	}
	if m.Status != model.StatusPlaying {
		return nil, model.ErrMembershipCompleted
	}

	m.CashOut = &amount
	m.Status = model.StatusCompleted
	m.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveMembership(ctx, m); err != nil {
		return nil, err
	}

	profit, _ := m.Profit()
	s.logger.Info("cash-out recorded",
		slog.String("session_id", string(sessionID)),
		slog.String("player_id", string(playerID)),
		slog.String("cash_out", amount.String()),
		slog.String("profit", profit.String()),
	)
	return m, nil
}

// Members lists a session's memberships in join order, joined with player
// names. A failed name lookup is not an error: the row is listed with an
// empty name so a removed player doesn't break the ledger view.
func (s *Service) Members(ctx context.Context, sessionID model.SessionID) ([]Member, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	memberships, err := s.storage.ListMembershipsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(memberships))
	for _, m := range memberships {
		member := Member{Membership: m}
		if player, err := s.storage.GetPlayer(ctx, m.PlayerID); err == nil {
			member.PlayerName = player.Name
		}
		members = append(members, member)
	}
	return members, nil
}

// EligiblePlayers returns roster entries not yet in the session, in any
// status, sorted by name. This is what keeps the add-player selector from
// offering a player twice.
func (s *Service) EligiblePlayers(ctx context.Context, sessionID model.SessionID) ([]*model.Player, error) {
	if _, err := s.storage.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	memberships, err := s.storage.ListMembershipsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	present := make(map[model.PlayerID]bool, len(memberships))
	for _, m := range memberships {
		present[m.PlayerID] = true
	}

	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if !present[p.ID] {
			eligible = append(eligible, p)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return strings.ToLower(eligible[i].Name) < strings.ToLower(eligible[j].Name)
	})
	return eligible, nil
}
