package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mmynk/utilityportal/internal/apperr"
	"github.com/mmynk/utilityportal/internal/auth"
	"github.com/mmynk/utilityportal/internal/httpx"
	"github.com/mmynk/utilityportal/internal/storage"
)

// Client-facing auth messages.
const (
	msgCredentialsRequired = "Email and password required"
	msgEmailRegistered     = "Email already registered"
	msgInvalidCredentials  = "Invalid credentials"
	msgUserNotFound        = "User not found"
)

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(userID, email string) (string, error)
}

// AuthService handles registration, login and the current-user profile.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        TokenIssuer
	users         storage.UserStore
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, tokens TokenIssuer, users storage.UserStore, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		users:         users,
		logger:        logger,
	}
}

type registerRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`
}

func (req registerRequest) Validate() error {
	if req.Email == "" || req.Password == "" {
		return apperr.InvalidInput(msgCredentialsRequired)
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account and returns a session token.
func (s *AuthService) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, r, s.logger, apperr.InvalidInput(msgInvalidBody))
		return
	}
	if err := req.Validate(); err != nil {
		fail(w, r, s.logger, err)
		return
	}

	s.logger.Info("Register request", "email", req.Email)

	user, err := s.authenticator.Register(r.Context(), req.Email, req.Password, auth.Profile{
		FirstName: optional(req.FirstName),
		LastName:  optional(req.LastName),
		Address:   optional(req.Address),
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailExists):
			s.logger.Warn("Registration rejected", "email", req.Email, "reason", "duplicate email")
			fail(w, r, s.logger, apperr.Conflict(msgEmailRegistered))
		case errors.Is(err, auth.ErrEmptyPassword):
			fail(w, r, s.logger, apperr.InvalidInput(msgCredentialsRequired))
		case errors.Is(err, auth.ErrPasswordTooLong):
			fail(w, r, s.logger, apperr.InvalidInput("Password must be at most 72 bytes"))
		default:
			fail(w, r, s.logger, err)
		}
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		fail(w, r, s.logger, apperr.InvalidInput(msgInvalidBody))
		return
	}
	if req.Email == "" || req.Password == "" {
		fail(w, r, s.logger, apperr.Unauthenticated(msgInvalidCredentials))
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("Login failed", "email", req.Email)
			fail(w, r, s.logger, apperr.Unauthenticated(msgInvalidCredentials))
			return
		}
		fail(w, r, s.logger, err)
		return
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(w http.ResponseWriter, r *http.Request) {
	id, err := requireIdentity(r)
	if err != nil {
		fail(w, r, s.logger, err)
		return
	}

	user, err := s.users.GetUserByID(r.Context(), id.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fail(w, r, s.logger, apperr.NotFound(msgUserNotFound))
			return
		}
		fail(w, r, s.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}
