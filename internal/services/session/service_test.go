package session

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mwjones-dev/pokernight/internal/dependencies/mocks"
	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/storage/memory"
	"github.com/mwjones-dev/pokernight/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) validParams() CreateParams {
	return CreateParams{
		Name:      "Friday Night",
		Location:  "Dave's place",
		GameType:  model.GameTypeTexasHoldem,
		BuyIn:     decimal.NewFromInt(50),
		Date:      "2024-04-20",
		TimeOfDay: "19:00",
	}
}

func (s *ServiceSuite) TestCreateSucceeds() {
	session, err := s.service.Create(s.ctx, s.validParams())
	s.Require().NoError(err)

	s.NotEmpty(session.ID)
	s.Equal("Friday Night", session.Name)
	s.Equal(model.GameTypeTexasHoldem, session.GameType)
	s.Equal(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), session.Date)
	s.Equal("19:00", session.TimeOfDay)
}

func (s *ServiceSuite) TestCreateRejectsUnknownGameType() {
	params := s.validParams()
	params.GameType = "Blackjack"

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, model.ErrInvalidGameType)
}

func (s *ServiceSuite) TestCreateRejectsBadDate() {
	params := s.validParams()
	params.Date = "20-04-2024"

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, model.ErrInvalidDate)
}

func (s *ServiceSuite) TestCreateRejectsBadTime() {
	params := s.validParams()
	params.TimeOfDay = "7pm"

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, model.ErrInvalidTime)
}

func (s *ServiceSuite) TestCreateRejectsNegativeBuyIn() {
	params := s.validParams()
	params.BuyIn = decimal.NewFromInt(-10)

	_, err := s.service.Create(s.ctx, params)
	s.ErrorIs(err, model.ErrNegativeBuyIn)
}

func (s *ServiceSuite) TestCreateAcceptsZeroBuyIn() {
	params := s.validParams()
	params.BuyIn = decimal.Zero

	_, err := s.service.Create(s.ctx, params)
	s.NoError(err)
}

func (s *ServiceSuite) TestUpdatePartialOverwrite() {
	session, _ := s.service.Create(s.ctx, s.validParams())

	newLocation := "Mike's garage"
	updated, err := s.service.Update(s.ctx, session.ID, UpdateParams{Location: &newLocation})
	s.Require().NoError(err)

	s.Equal("Mike's garage", updated.Location)
	// Untouched fields survive
	s.Equal("Friday Night", updated.Name)
	s.Equal("19:00", updated.TimeOfDay)
}

func (s *ServiceSuite) TestUpdateValidatesGameType() {
	session, _ := s.service.Create(s.ctx, s.validParams())

	bad := model.GameType("Blackjack")
	_, err := s.service.Update(s.ctx, session.ID, UpdateParams{GameType: &bad})
	s.ErrorIs(err, model.ErrInvalidGameType)
}

func (s *ServiceSuite) TestRejectedUpdateLeavesRecordUnchanged() {
	session, _ := s.service.Create(s.ctx, s.validParams())

	newName := "Razz Night"
	bad := model.GameType("Razz")
	_, err := s.service.Update(s.ctx, session.ID, UpdateParams{Name: &newName, GameType: &bad})
	s.Require().ErrorIs(err, model.ErrInvalidGameType)

	stored, err := s.service.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal("Friday Night", stored.Name)
	s.Equal(model.GameTypeTexasHoldem, stored.GameType)
}

func (s *ServiceSuite) TestRejectedUpdateBadDateLeavesRecordUnchanged() {
	session, _ := s.service.Create(s.ctx, s.validParams())

	newLocation := "Mike's garage"
	badDate := "04/20/2024"
	_, err := s.service.Update(s.ctx, session.ID, UpdateParams{Location: &newLocation, Date: &badDate})
	s.Require().ErrorIs(err, model.ErrInvalidDate)

	stored, err := s.service.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal("Dave's place", stored.Location)
	s.Equal(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), stored.Date)
}

func (s *ServiceSuite) TestUpdateNotFound() {
	name := "x"
	_, err := s.service.Update(s.ctx, "ghost", UpdateParams{Name: &name})
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestDeleteCascadesToMemberships() {
	session, _ := s.service.Create(s.ctx, s.validParams())

	_ = s.storage.SaveMembership(s.ctx, &model.Membership{
		ID:        "m-1",
		SessionID: session.ID,
		PlayerID:  "player-1",
		Status:    model.StatusPlaying,
	})

	err := s.service.Delete(s.ctx, session.ID)
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)

	memberships, err := s.storage.ListMembershipsForSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Empty(memberships)
}

func (s *ServiceSuite) TestDeleteNotFound() {
	err := s.service.Delete(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestListWithLowerBound() {
	early := s.validParams()
	early.Date = "2024-01-15"
	_, _ = s.service.Create(s.ctx, early)

	late := s.validParams()
	late.Date = "2024-04-20"
	_, _ = s.service.Create(s.ctx, late)

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	sessions, err := s.service.List(s.ctx, &from)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), sessions[0].Date)
}
