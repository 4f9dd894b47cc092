package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"integraservicios/internal/db"
	"integraservicios/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id uint) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	return errors.Wrap(db.TranslateError(err), "create user")
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "find user")
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "find user by email")
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id_usuario = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrap(db.TranslateError(err), "user exists")
	}
	return n > 0, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id_usuario").Find(&users).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list users")
	}
	return users, nil
}

// Update applies column updates and reports whether the user existed.
func (r *userRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id_usuario = ?", id).Updates(fields)
	if res.Error != nil {
		return false, errors.Wrap(db.TranslateError(res.Error), "update user")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	return r.Exists(ctx, id)
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&model.User{}, id).Error
	return errors.Wrap(db.TranslateError(err), "delete user")
}

// WithTransaction executes fn within a serializable transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return db.TranslateError(err)
}
