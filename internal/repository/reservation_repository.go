package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"integraservicios/internal/db"
	"integraservicios/internal/model"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *model.Reservation) error
	FindByID(ctx context.Context, id uint) (*model.Reservation, error)
	ExistsAt(ctx context.Context, resourceID uint, date model.Date, at string) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status model.ReservationStatus) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error)
	ListActiveByUser(ctx context.Context, userID uint) ([]model.Reservation, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ReservationRepository) error) error
}

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository builds a GORM-backed repository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	err := r.db.WithContext(ctx).Create(reservation).Error
	return errors.Wrap(db.TranslateError(err), "create reservation")
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*model.Reservation, error) {
	var reservation model.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "find reservation")
	}
	return &reservation, nil
}

// ExistsAt reports whether the (resource, date, time) slot is already booked, whatever its status.
func (r *reservationRepository) ExistsAt(ctx context.Context, resourceID uint, date model.Date, at string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id_recurso = ? AND fecha_reserva = ? AND hora_reserva = ?", resourceID, date.String(), at).
		Count(&n).Error
	if err != nil {
		return false, errors.Wrap(db.TranslateError(err), "check reservation slot")
	}
	return n > 0, nil
}

// UpdateStatus reports whether a reservation with the id exists.
func (r *reservationRepository) UpdateStatus(ctx context.Context, id uint, status model.ReservationStatus) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Reservation{}).
		Where("id_reserva = ?", id).
		Update("estado", status)
	if res.Error != nil {
		return false, errors.Wrap(db.TranslateError(res.Error), "update reservation status")
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// MySQL reports zero affected rows when the status is unchanged.
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Reservation{}).Where("id_reserva = ?", id).Count(&n).Error; err != nil {
		return false, errors.Wrap(db.TranslateError(err), "update reservation status")
	}
	return n > 0, nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Reservation{}, id)
	if res.Error != nil {
		return false, errors.Wrap(db.TranslateError(res.Error), "delete reservation")
	}
	return res.RowsAffected > 0, nil
}

func (r *reservationRepository) List(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error) {
	query, args, err := buildReservationQuery(filter)
	if err != nil {
		return nil, err
	}
	var views []model.ReservationView
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&views).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list reservations")
	}
	return views, nil
}

func (r *reservationRepository) ListActiveByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	var reservations []model.Reservation
	err := r.db.WithContext(ctx).
		Where("id_usuario = ? AND estado = ?", userID, model.ReservationStatusActive).
		Order("id_reserva").
		Find(&reservations).Error
	if err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list active reservations")
	}
	return reservations, nil
}

// WithTransaction executes fn within a serializable transaction.
func (r *reservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ReservationRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &reservationRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return db.TranslateError(err)
}
