package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, cfg: cfg}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{client: client, cfg: cfg}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	key := playerKey(player.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, playersIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	key := playerKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playersIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	keys, err := s.client.SMembers(ctx, playersIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Player{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // removed between index read and fetch
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}
	return players, nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.ID)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, sessionsIndexKey(), key)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	key := sessionKey(id)

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, sessionsIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) ListSessions(ctx context.Context, from *time.Time) ([]*model.Session, error) {
	keys, err := s.client.SMembers(ctx, sessionsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Session{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	sessions := make([]*model.Session, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var session model.Session
		if err := json.Unmarshal([]byte(val.(string)), &session); err != nil {
			continue
		}
		if from != nil && session.Date.Before(*from) {
			continue
		}
		sessions = append(sessions, &session)
	}
	return sessions, nil
}

// Membership operations

func (s *Storage) SaveMembership(ctx context.Context, m *model.Membership) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	key := membershipKey(m.SessionID, m.PlayerID)
	indexKey := membershipsForSessionKey(m.SessionID)

	// Only append to the join-order list on first insert; updates keep the
	// row's original position.
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	if exists == 0 {
		pipe.RPush(ctx, indexKey, key)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMembership(ctx context.Context, sessionID model.SessionID, playerID model.PlayerID) (*model.Membership, error) {
	data, err := s.client.Get(ctx, membershipKey(sessionID, playerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMembershipNotFound
		}
		return nil, err
	}

	var m model.Membership
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) ListMembershipsForSession(ctx context.Context, sessionID model.SessionID) ([]*model.Membership, error) {
	keys, err := s.client.LRange(ctx, membershipsForSessionKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Membership{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	memberships := make([]*model.Membership, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var m model.Membership
		if err := json.Unmarshal([]byte(val.(string)), &m); err != nil {
			continue
		}
		memberships = append(memberships, &m)
	}
	return memberships, nil
}

func (s *Storage) DeleteMembershipsForSession(ctx context.Context, sessionID model.SessionID) error {
	indexKey := membershipsForSessionKey(sessionID)

	keys, err := s.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, accountKey(account.ID), data, 0)
	pipe.Set(ctx, emailIndexKey(account.Email), string(account.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	accountID, err := s.client.Get(ctx, emailIndexKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	data, err := s.client.Get(ctx, accountKey(model.AccountID(accountID))).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
