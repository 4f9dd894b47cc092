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
)

// LoanService records loans against vigent reservations and their returns.
type LoanService interface {
	RegisterLoan(ctx context.Context, reservationID, employeeID uint, date model.Date, at string) (*model.Loan, error)
	RegisterReturn(ctx context.Context, loanID uint, date model.Date, at string, employeeID uint) (*model.Return, error)
	ListActiveLoans(ctx context.Context, userID uint) ([]model.LoanView, error)
}

type loanService struct {
	repo      repository.LoanRepository
	publisher events.Publisher
	log       *zap.Logger
}

// NewLoanService creates a new loan service.
func NewLoanService(repo repository.LoanRepository, publisher events.Publisher, log *zap.Logger) LoanService {
	return &loanService{
		repo:      repo,
		publisher: publisher,
		log:       log.Named("loans"),
	}
}

// RegisterLoan checks reservation existence, then that it is vigent, then the employee,
// and inserts the loan. The reservation status is left as is.
func (s *loanService) RegisterLoan(ctx context.Context, reservationID, employeeID uint, date model.Date, at string) (*model.Loan, error) {
	at, err := model.ParseClock(at)
	if err != nil {
		return nil, apperr.ErrInvalidTime
	}

	loan := &model.Loan{
		ReservationID: reservationID,
		EmployeeID:    employeeID,
		Date:          date,
		Time:          at,
	}
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.LoanRepository) error {
		reservation, err := repo.Reservations().FindByID(ctx, reservationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrReservationNotFound
		}
		if err != nil {
			return fmt.Errorf("find reservation: %w", err)
		}
		if reservation.Status != model.ReservationStatusActive {
			return apperr.ErrReservationNotActive
		}

		if err := s.checkEmployee(ctx, repo, employeeID); err != nil {
			return err
		}
		return repo.Create(ctx, loan)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("loan registered",
		zap.Uint("loan_id", loan.ID),
		zap.Uint("reservation_id", reservationID),
		zap.Uint("employee_id", employeeID))
	s.publisher.Publish(ctx, events.New(events.LoanRegistered, loan.ID, map[string]interface{}{
		"id_reserva":  reservationID,
		"id_empleado": employeeID,
	}))
	return loan, nil
}

// RegisterReturn checks the loan, then the receiving employee, and inserts the return.
func (s *loanService) RegisterReturn(ctx context.Context, loanID uint, date model.Date, at string, employeeID uint) (*model.Return, error) {
	at, err := model.ParseClock(at)
	if err != nil {
		return nil, apperr.ErrInvalidTime
	}

	ret := &model.Return{
		LoanID: loanID,
		Date:   date,
		Time:   at,
	}
	err = s.repo.WithTransaction(ctx, func(ctx context.Context, repo repository.LoanRepository) error {
		if _, err := repo.FindByID(ctx, loanID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrLoanNotFound
			}
			return fmt.Errorf("find loan: %w", err)
		}

		if err := s.checkEmployee(ctx, repo, employeeID); err != nil {
			return err
		}
		return repo.CreateReturn(ctx, ret)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("return registered", zap.Uint("return_id", ret.ID), zap.Uint("loan_id", loanID))
	s.publisher.Publish(ctx, events.New(events.ReturnRegistered, ret.ID, map[string]interface{}{
		"id_prestamo": loanID,
		"id_empleado": employeeID,
	}))
	return ret, nil
}

func (s *loanService) checkEmployee(ctx context.Context, repo repository.LoanRepository, employeeID uint) error {
	exists, err := repo.Employees().Exists(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("check employee: %w", err)
	}
	if !exists {
		return apperr.ErrEmployeeNotFound
	}
	return nil
}

// ListActiveLoans returns the loans taken against the user's reservations, returned ones included.
func (s *loanService) ListActiveLoans(ctx context.Context, userID uint) ([]model.LoanView, error) {
	loans, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(loans) == 0 {
		return nil, apperr.ErrNoResults
	}
	return loans, nil
}
