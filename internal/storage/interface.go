package storage

import (
	"context"
	"time"

	"github.com/mwjones-dev/pokernight/internal/model"
)

// Storage defines the interface for data persistence.
//
// Contractual requirements beyond plain CRUD:
//   - ListMembershipsForSession returns rows in join order.
//   - DeleteMembershipsForSession is the cascade primitive invoked when a
//     session is deleted; implementations must remove every membership for
//     the session.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	ListPlayers(ctx context.Context) ([]*model.Player, error)

	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	// ListSessions returns all sessions; from, when non-nil, is an
	// inclusive lower bound on the session date.
	ListSessions(ctx context.Context, from *time.Time) ([]*model.Session, error)

	// Membership operations
	SaveMembership(ctx context.Context, m *model.Membership) error
	GetMembership(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Membership, error)
	ListMembershipsForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Membership, error)
	DeleteMembershipsForSession(ctx context.Context, sessionID model.SessionID) error

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*model.Account, error)
}
