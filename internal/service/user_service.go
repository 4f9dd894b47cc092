package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"integraservicios/internal/auth"
	"integraservicios/internal/cache"
	apperr "integraservicios/internal/errors"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes user administration.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, update model.UserUpdate) error
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
	log    *zap.Logger
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, cache *cache.Client, log *zap.Logger) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		cache:  cache,
		log:    log.Named("users"),
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// UpdateUser applies the non nil fields. A new password is stored hashed.
func (s *userService) UpdateUser(ctx context.Context, id uint, update model.UserUpdate) error {
	if update.Empty() {
		return apperr.ErrNothingToUpdate
	}

	fields := make(map[string]interface{}, 4)
	if update.Name != nil {
		fields["nombre"] = *update.Name
	}
	if update.Email != nil {
		fields["email"] = strings.TrimSpace(*update.Email)
	}
	if update.Phone != nil {
		fields["telefono"] = *update.Phone
	}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		fields["contrasena"] = hash
	}

	found, err := s.repo.Update(ctx, id, fields)
	if errors.Is(err, apperr.ErrConflict) && update.Email != nil {
		return apperr.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrUserNotFound
	}

	s.cache.Delete(ctx, s.cacheKey(id))
	s.log.Info("user updated", zap.Uint("user_id", id))
	return nil
}

// DeleteUser removes the user. Deleting an absent user succeeds.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, s.cacheKey(id))
	s.log.Info("user deleted", zap.Uint("user_id", id))
	return nil
}
