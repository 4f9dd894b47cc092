package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"integraservicios/internal/db"
	"integraservicios/internal/model"
)

// LoanRepository defines persistence operations for loans and returns.
// Its transactions also read reservations and employees through the accessors below.
type LoanRepository interface {
	Create(ctx context.Context, loan *model.Loan) error
	FindByID(ctx context.Context, id uint) (*model.Loan, error)
	CreateReturn(ctx context.Context, ret *model.Return) error
	ListByUser(ctx context.Context, userID uint) ([]model.LoanView, error)
	Reservations() ReservationRepository
	Employees() EmployeeRepository
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo LoanRepository) error) error
}

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository builds a GORM-backed repository.
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) Create(ctx context.Context, loan *model.Loan) error {
	err := r.db.WithContext(ctx).Create(loan).Error
	return errors.Wrap(db.TranslateError(err), "create loan")
}

func (r *loanRepository) FindByID(ctx context.Context, id uint) (*model.Loan, error) {
	var loan model.Loan
	if err := r.db.WithContext(ctx).First(&loan, id).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "find loan")
	}
	return &loan, nil
}

func (r *loanRepository) CreateReturn(ctx context.Context, ret *model.Return) error {
	err := r.db.WithContext(ctx).Create(ret).Error
	return errors.Wrap(db.TranslateError(err), "create return")
}

// ListByUser returns every loan taken against the user's reservations, returned ones included.
func (r *loanRepository) ListByUser(ctx context.Context, userID uint) ([]model.LoanView, error) {
	query, args, err := buildLoansByUserQuery(userID)
	if err != nil {
		return nil, err
	}
	var views []model.LoanView
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&views).Error; err != nil {
		return nil, errors.Wrap(db.TranslateError(err), "list loans by user")
	}
	return views, nil
}

func (r *loanRepository) Reservations() ReservationRepository {
	return &reservationRepository{db: r.db}
}

func (r *loanRepository) Employees() EmployeeRepository {
	return &employeeRepository{db: r.db}
}

// WithTransaction executes fn within a serializable transaction.
func (r *loanRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo LoanRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &loanRepository{db: tx})
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	return db.TranslateError(err)
}
