package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"integraservicios/internal/auth"
	apperr "integraservicios/internal/errors"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
)

// AuthService handles registration and authentication.
type AuthService interface {
	Register(ctx context.Context, name, email, phone, password string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	log    *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		log:    log.Named("auth"),
	}
}

// Register creates a user with a hashed password. The email check and insert share a transaction;
// the unique index on email settles concurrent registrations.
func (s *authService) Register(ctx context.Context, name, email, phone, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}

	err = s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		existing, err := repo.FindByEmail(ctx, email)
		if err == nil && existing != nil {
			return apperr.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
		return repo.Create(ctx, user)
	})
	if errors.Is(err, apperr.ErrConflict) {
		return nil, apperr.ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Authenticate verifies the credentials and issues a bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperr.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.Debug("password mismatch", zap.Uint("user_id", user.ID))
		return "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
