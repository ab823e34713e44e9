package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mwjones-dev/pokernight/internal/dependencies/mocks"
	"github.com/mwjones-dev/pokernight/internal/storage/memory"
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
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, DefaultConfig())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice@example.com", session.Email)
	s.NotEmpty(session.AccountID)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	account, err := s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEmpty(account.PasswordHash)
	s.NotEqual("password123", account.PasswordHash) // Should be hashed
}

func (s *ServiceSuite) TestRegisterNormalisesEmail() {
	_, err := s.service.Register(s.ctx, "  Alice@Example.COM ", "password123")
	s.Require().NoError(err)

	_, err = s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.NoError(err)
}

func (s *ServiceSuite) TestRegisterFailsIfEmailExists() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "ALICE@example.com", "different123")
	s.ErrorIs(err, ErrEmailExists)
}

func (s *ServiceSuite) TestRegisterRejectsEmptyEmail() {
	_, err := s.service.Register(s.ctx, "   ", "password123")
	s.ErrorIs(err, ErrEmptyEmail)
}

func (s *ServiceSuite) TestRegisterRejectsShortPassword() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "short")
	s.ErrorIs(err, ErrShortPassword)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("alice@example.com", session.Email)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, "alice@example.com", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.AccountID, validated.AccountID)
}

func (s *ServiceSuite) TestValidateSessionFailsWithInvalidToken() {
	_, err := s.service.ValidateSession("invalid_token")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsWhenExpired() {
	session, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	// Advance time past expiration
	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

// InvalidateSession tests

func (s *ServiceSuite) TestInvalidateSessionRemovesSession() {
	session, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.service.InvalidateSession(session.Token)

	_, err = s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSessionNoopForUnknownToken() {
	// Should not panic
	s.service.InvalidateSession("unknown_token")
}

// CleanExpiredSessions tests

func (s *ServiceSuite) TestCleanExpiredSessionsRemovesExpired() {
	session1, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	// Advance time so session1 expires
	s.clock.Advance(25 * time.Hour)

	session2, err := s.service.Register(s.ctx, "bob@example.com", "password123")
	s.Require().NoError(err)

	s.service.CleanExpiredSessions()

	// session1 should be gone
	_, err = s.service.ValidateSession(session1.Token)
	s.ErrorIs(err, ErrInvalidSession)

	// session2 should still be valid
	_, err = s.service.ValidateSession(session2.Token)
	s.NoError(err)
}
