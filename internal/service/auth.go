package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/notedown/notedown/internal/auth"
	"github.com/notedown/notedown/internal/metrics"
	"github.com/notedown/notedown/internal/model"
	"github.com/notedown/notedown/internal/repository"
)

// AuthService handles registration and credential checks.
type AuthService struct {
	users   UserStore
	logger  *slog.Logger
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, logger *slog.Logger, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		logger:  logger,
		metrics: recorder,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// RegisterResult reports the outcome of a registration attempt.
// Validation failures are returned as structured descriptions,
// not as errors; Identity is set only on success.
type RegisterResult struct {
	Success  bool
	Errors   []string
	Identity *model.Identity
}

// Register creates a new account. The password is checked against the
// account policy and hashed with Argon2id before storage.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	// Check if the user already exists
	_, err := s.users.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return &RegisterResult{Success: false, Errors: []string{"User already exists"}}, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	if policyErrs := auth.ValidatePassword(input.Password); len(policyErrs) > 0 {
		return &RegisterResult{Success: false, Errors: policyErrs}, nil
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Lost a registration race for the same email
		if errors.Is(err, repository.ErrEmailExists) {
			return &RegisterResult{Success: false, Errors: []string{"User already exists"}}, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncUserRegistered()
	s.logger.Info("user_registered", "user_id", user.ID)

	return &RegisterResult{
		Success: true,
		Identity: &model.Identity{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
	}, nil
}

// LoginInput defines input for a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult reports the outcome of a login attempt.
type LoginResult struct {
	Success  bool
	Message  string
	Identity *model.Identity
}

// Login verifies credentials. Unknown email and bad password produce the
// same result so nothing beyond pass/fail is leaked.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	invalid := &LoginResult{Success: false, Message: "Invalid credentials"}

	user, err := s.users.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return invalid, nil
		}
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}

	match, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailed()
		return invalid, nil
	}

	s.metrics.IncLoginSucceeded()
	s.logger.Info("user_logged_in", "user_id", user.ID)

	return &LoginResult{
		Success: true,
		Identity: &model.Identity{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
		},
	}, nil
}
