package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mwjones-dev/pokernight/internal/model"
	"github.com/mwjones-dev/pokernight/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeSessionNotFound     = "SESSION_NOT_FOUND"
	CodeMembershipNotFound  = "MEMBERSHIP_NOT_FOUND"
	CodeAlreadyInSession    = "ALREADY_IN_SESSION"
	CodeMembershipCompleted = "MEMBERSHIP_COMPLETED"
	CodeEmailExists         = "EMAIL_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrMembershipNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMembershipNotFound, "Player is not in this session"}}
	case errors.Is(err, model.ErrAlreadyInSession):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyInSession, "Player is already in this session"}}
	case errors.Is(err, model.ErrMembershipCompleted):
		return &httpError{http.StatusConflict, APIError{CodeMembershipCompleted, "Player has already cashed out"}}
	case errors.Is(err, model.ErrEmptyPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Player name must not be empty"}}
	case errors.Is(err, model.ErrNegativeWins):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Wins must not be negative"}}
	case errors.Is(err, model.ErrInvalidGameType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Invalid game type"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Date must be in YYYY-MM-DD format"}}
	case errors.Is(err, model.ErrInvalidTime):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Time must be in HH:MM format"}}
	case errors.Is(err, model.ErrNegativeBuyIn):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Buy-in must not be negative"}}
	case errors.Is(err, model.ErrNonPositiveRebuy):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Rebuy amount must be positive"}}
	case errors.Is(err, model.ErrNegativeAmount):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Amount must not be negative"}}
	case errors.Is(err, model.ErrInvalidSortKey):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Sort key must be wins or earnings"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid email or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}
	case errors.Is(err, auth.ErrEmptyEmail):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Email must not be empty"}}
	case errors.Is(err, auth.ErrShortPassword):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Password must be at least 8 characters"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
