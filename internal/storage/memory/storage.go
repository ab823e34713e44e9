package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.Player
	sessions    map[model.SessionID]*model.Session
	memberships map[membershipKey]*model.Membership
	// joinOrder preserves insertion order per session so that
	// ListMembershipsForSession can honor the join-order contract
	joinOrder  map[model.SessionID][]membershipKey
	accounts   map[model.AccountID]*model.Account
	emailIndex map[string]model.AccountID
}

type membershipKey struct {
	sessionID model.SessionID
	playerID  model.PlayerID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:     make(map[model.PlayerID]*model.Player),
		sessions:    make(map[model.SessionID]*model.Session),
		memberships: make(map[membershipKey]*model.Membership),
		joinOrder:   make(map[model.SessionID][]membershipKey),
		accounts:    make(map[model.AccountID]*model.Account),
		emailIndex:  make(map[string]model.AccountID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	return players, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) ListSessions(ctx context.Context, from *time.Time) ([]*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]*model.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if from != nil && sess.Date.Before(*from) {
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// Membership operations

func (s *Storage) SaveMembership(ctx context.Context, m *model.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := membershipKey{sessionID: m.SessionID, playerID: m.PlayerID}
	if _, exists := s.memberships[key]; !exists {
		s.joinOrder[m.SessionID] = append(s.joinOrder[m.SessionID], key)
	}
	s.memberships[key] = m
	return nil
}

func (s *Storage) GetMembership(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.memberships[membershipKey{sessionID: sessionID, playerID: playerID}]
	if !ok {
		return nil, model.ErrMembershipNotFound
	}
	return m, nil
}

func (s *Storage) ListMembershipsForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := s.joinOrder[sessionID]
	memberships := make([]*model.Membership, 0, len(keys))
	for _, key := range keys {
		if m, ok := s.memberships[key]; ok {
			memberships = append(memberships, m)
		}
	}
	return memberships, nil
}

func (s *Storage) DeleteMembershipsForSession(ctx context.Context, sessionID model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range s.joinOrder[sessionID] {
		delete(s.memberships, key)
	}
	delete(s.joinOrder, sessionID)
	return nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	s.emailIndex[account.Email] = account.ID
	return nil
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}
