package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperr "integraservicios/internal/errors"
	"integraservicios/internal/events"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
	"integraservicios/internal/schedule"
)

// errSlotTaken aborts a candidate's transaction when its slot is already booked.
var errSlotTaken = errors.New("slot taken")

// ReservationService allocates reservations and manages their lifecycle.
type ReservationService interface {
	Allocate(ctx context.Context, userID, resourceTypeID uint, date model.Date, at string) (uint, error)
	ChangeStatus(ctx context.Context, id uint, status model.ReservationStatus) error
	GetReservation(ctx context.Context, id uint) (*model.Reservation, error)
	DeleteReservation(ctx context.Context, id uint) error
	ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error)
	ListActiveReservations(ctx context.Context, userID uint) ([]model.Reservation, error)
}

type reservationService struct {
	users        repository.UserRepository
	resources    repository.ResourceRepository
	reservations repository.ReservationRepository
	publisher    events.Publisher
	log          *zap.Logger
}

// NewReservationService creates a new reservation service.
func NewReservationService(
	users repository.UserRepository,
	resources repository.ResourceRepository,
	reservations repository.ReservationRepository,
	publisher events.Publisher,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		users:        users,
		resources:    resources,
		reservations: reservations,
		publisher:    publisher,
		log:          log.Named("reservations"),
	}
}

// Allocate books the first available resource of the type whose schedule admits the time
// and whose (date, time) slot is free. It returns the booked resource id.
func (s *reservationService) Allocate(ctx context.Context, userID, resourceTypeID uint, date model.Date, at string) (uint, error) {
	at, err := model.ParseClock(at)
	if err != nil {
		return 0, apperr.ErrInvalidTime
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return 0, apperr.ErrUserNotFound
	}

	candidates, err := s.resources.ListAvailableByType(ctx, resourceTypeID)
	if err != nil {
		return 0, fmt.Errorf("list candidates: %w", err)
	}
	if len(candidates) == 0 {
		return 0, apperr.ErrNoResourcesOfType
	}

	for _, candidate := range candidates {
		if !schedule.IsWithinWindow(candidate.Schedule, at) {
			continue
		}

		reservation := &model.Reservation{
			UserID:     userID,
			ResourceID: candidate.ID,
			Date:       date,
			Time:       at,
			Status:     model.ReservationStatusActive,
		}
		err := s.reservations.WithTransaction(ctx, func(ctx context.Context, repo repository.ReservationRepository) error {
			taken, err := repo.ExistsAt(ctx, candidate.ID, date, at)
			if err != nil {
				return err
			}
			if taken {
				return errSlotTaken
			}
			return repo.Create(ctx, reservation)
		})
		if errors.Is(err, errSlotTaken) || errors.Is(err, apperr.ErrConflict) {
			s.log.Debug("candidate booked",
				zap.Uint("resource_id", candidate.ID),
				zap.Stringer("date", date),
				zap.String("time", at))
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("book resource %d: %w", candidate.ID, err)
		}

		s.log.Info("reservation created",
			zap.Uint("reservation_id", reservation.ID),
			zap.Uint("user_id", userID),
			zap.Uint("resource_id", candidate.ID))
		s.publisher.Publish(ctx, events.New(events.ReservationCreated, reservation.ID, map[string]interface{}{
			"id_usuario":    userID,
			"id_recurso":    candidate.ID,
			"fecha_reserva": date.String(),
			"hora_reserva":  at,
		}))
		return candidate.ID, nil
	}

	return 0, apperr.ErrNoSlotAvailable
}

// ChangeStatus sets any known status. Transitions are not validated.
func (s *reservationService) ChangeStatus(ctx context.Context, id uint, status model.ReservationStatus) error {
	if !status.Valid() {
		return apperr.ErrInvalidStatus
	}
	found, err := s.reservations.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrReservationNotFound
	}

	s.publisher.Publish(ctx, events.New(events.ReservationStatusChanged, id, map[string]interface{}{
		"estado": string(status),
	}))
	return nil
}

func (s *reservationService) GetReservation(ctx context.Context, id uint) (*model.Reservation, error) {
	reservation, err := s.reservations.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return reservation, nil
}

// DeleteReservation removes the row. A reservation with loans is refused by the store.
func (s *reservationService) DeleteReservation(ctx context.Context, id uint) error {
	found, err := s.reservations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return apperr.ErrReservationNotFound
	}
	s.publisher.Publish(ctx, events.New(events.ReservationDeleted, id, nil))
	return nil
}

func (s *reservationService) ListReservations(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error) {
	if filter.Kind != "" {
		if _, ok := filter.Kind.Status(); !ok {
			return nil, apperr.ErrInvalidFilter
		}
	}
	if filter.From != nil && filter.To != nil && filter.From.After(filter.To.Time) {
		return nil, apperr.ErrInvalidDateRange
	}

	views, err := s.reservations.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []model.ReservationView{}
	}
	return views, nil
}

func (s *reservationService) ListActiveReservations(ctx context.Context, userID uint) ([]model.Reservation, error) {
	reservations, err := s.reservations.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, apperr.ErrNoResults
	}
	return reservations, nil
}
