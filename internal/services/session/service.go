package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwjones-dev/pokernight/internal/dependencies/clock"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage"
)

// Service manages session records
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new session Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateParams holds the fields for scheduling a new session
type CreateParams struct {
	Name        string
	Description string
	Location    string
	GameType    model.GameType
	BuyIn       decimal.Decimal
	Date        string // YYYY-MM-DD
	TimeOfDay   string // HH:MM
}

// UpdateParams holds a partial overwrite of a session; nil fields are left
// unchanged.
type UpdateParams struct {
	Name        *string
	Description *string
	Location    *string
	GameType    *model.GameType
	BuyIn       *decimal.Decimal
	Date        *string
	TimeOfDay   *string
}

// Create schedules a new session
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Session, error) {
	if !params.GameType.IsValid() {
		return nil, model.ErrInvalidGameType
	}
	date, err := parseDate(params.Date)
	if err != nil {
		return nil, err
	}
	if err := validateTimeOfDay(params.TimeOfDay); err != nil {
		return nil, err
	}
	if params.BuyIn.IsNegative() {
		return nil, model.ErrNegativeBuyIn
	}

	now := s.clock.Now()
	session := &model.Session{
		ID:          model.SessionID(uuid.NewString()),
		Name:        params.Name,
		Description: params.Description,
		Location:    params.Location,
		GameType:    params.GameType,
		BuyIn:       params.BuyIn,
		Date:        date,
		TimeOfDay:   params.TimeOfDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("date", params.Date),
		slog.String("game_type", string(params.GameType)),
	)
	return session, nil
}

// Update applies a partial overwrite to a session
func (s *Service) Update(ctx context.Context, id model.SessionID, params UpdateParams) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate every supplied field before applying any of them.
	var date time.Time
	if params.GameType != nil && !params.GameType.IsValid() {
		return nil, model.ErrInvalidGameType
	}
	if params.BuyIn != nil && params.BuyIn.IsNegative() {
		return nil, model.ErrNegativeBuyIn
	}
	if params.Date != nil {
		if date, err = parseDate(*params.Date); err != nil {
			return nil, err
		}
	}
	if params.TimeOfDay != nil {
		if err := validateTimeOfDay(*params.TimeOfDay); err != nil {
			return nil, err
		}
	}

	// Work on a copy; the memory backend hands out the stored pointer.
	updated := *session
	if params.Name != nil {
		updated.Name = *params.Name
	}
	if params.Description != nil {
		updated.Description = *params.Description
	}
	if params.Location != nil {
		updated.Location = *params.Location
	}
	if params.GameType != nil {
		updated.GameType = *params.GameType
	}
	if params.BuyIn != nil {
		updated.BuyIn = *params.BuyIn
	}
	if params.Date != nil {
		updated.Date = date
	}
	if params.TimeOfDay != nil {
		updated.TimeOfDay = *params.TimeOfDay
	}
	updated.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveSession(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a session and cascades to its memberships. The cascade is
// explicit here rather than assumed of the backing store.
func (s *Service) Delete(ctx context.Context, id model.SessionID) error {
	if _, err := s.storage.GetSession(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteMembershipsForSession(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return err
	}

	s.logger.Info("session deleted", slog.String("session_id", string(id)))
	return nil
}

// Get fetches a single session
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return s.storage.GetSession(ctx, id)
}

// List returns sessions, optionally bounded below by date (inclusive)
func (s *Service) List(ctx context.Context, from *time.Time) ([]*model.Session, error) {
	return s.storage.ListSessions(ctx, from)
}

func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(model.DateFormat, value, time.UTC)
	if err != nil {
		return time.Time{}, model.ErrInvalidDate
	}
	return date, nil
}

func validateTimeOfDay(value string) error {
	if _, err := time.Parse(model.TimeFormat, value); err != nil {
		return model.ErrInvalidTime
	}
	return nil
}
