package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperr "integraservicios/internal/errors"
	"integraservicios/internal/events"
	"integraservicios/internal/model"
)

func TestLoanService_RegisterLoan(t *testing.T) {
	date := model.NewDate(2024, 3, 4)

	tests := []struct {
		name          string
		setupMock     func(*MockLoanRepository)
		expectedError error
	}{
		{
			name: "vigent reservation and known employee",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.reservations.On("FindByID", mock.Anything, uint(3)).Return(&model.Reservation{ID: 3, Status: model.ReservationStatusActive}, nil)
				m.employees.On("Exists", mock.Anything, uint(8)).Return(true, nil)
				m.On("Create", mock.Anything, mock.MatchedBy(func(l *model.Loan) bool {
					return l.ReservationID == 3 && l.EmployeeID == 8 && l.Time == "10:30"
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.Loan).ID = 21
				}).Return(nil)
			},
		},
		{
			name: "missing reservation",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.reservations.On("FindByID", mock.Anything, uint(3)).Return(nil, errors.Wrap(gorm.ErrRecordNotFound, "find reservation"))
			},
			expectedError: apperr.ErrReservationNotFound,
		},
		{
			name: "cancelled reservation",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.reservations.On("FindByID", mock.Anything, uint(3)).Return(&model.Reservation{ID: 3, Status: model.ReservationStatusCancelled}, nil)
			},
			expectedError: apperr.ErrReservationNotActive,
		},
		{
			name: "unknown employee",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.reservations.On("FindByID", mock.Anything, uint(3)).Return(&model.Reservation{ID: 3, Status: model.ReservationStatusActive}, nil)
				m.employees.On("Exists", mock.Anything, uint(8)).Return(false, nil)
			},
			expectedError: apperr.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockLoanRepository()
			tt.setupMock(repo)
			publisher := &recordingPublisher{}

			svc := NewLoanService(repo, publisher, zap.NewNop())
			loan, err := svc.RegisterLoan(context.Background(), 3, 8, date, "10:30:00")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, loan)
				assert.Empty(t, publisher.types())
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(21), loan.ID)
				assert.Equal(t, []string{events.LoanRegistered}, publisher.types())
			}

			repo.AssertExpectations(t)
			repo.reservations.AssertExpectations(t)
			repo.employees.AssertExpectations(t)
		})
	}
}

func TestLoanService_RegisterLoanLeavesReservationStatus(t *testing.T) {
	repo := newMockLoanRepository()
	repo.On("WithTransaction", mock.Anything).Return(nil)
	repo.reservations.On("FindByID", mock.Anything, uint(3)).Return(&model.Reservation{ID: 3, Status: model.ReservationStatusActive}, nil)
	repo.employees.On("Exists", mock.Anything, uint(8)).Return(true, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Loan")).Return(nil)

	svc := NewLoanService(repo, events.NopPublisher{}, zap.NewNop())
	_, err := svc.RegisterLoan(context.Background(), 3, 8, model.NewDate(2024, 3, 4), "10:30")

	require.NoError(t, err)
	repo.reservations.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoanService_RegisterReturn(t *testing.T) {
	date := model.NewDate(2024, 3, 4)

	tests := []struct {
		name          string
		setupMock     func(*MockLoanRepository)
		expectedError error
	}{
		{
			name: "known loan and employee",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByID", mock.Anything, uint(21)).Return(&model.Loan{ID: 21}, nil)
				m.employees.On("Exists", mock.Anything, uint(8)).Return(true, nil)
				m.On("CreateReturn", mock.Anything, mock.MatchedBy(func(r *model.Return) bool {
					return r.LoanID == 21 && r.Time == "12:00"
				})).Return(nil)
			},
		},
		{
			name: "missing loan",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByID", mock.Anything, uint(21)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperr.ErrLoanNotFound,
		},
		{
			name: "unknown employee",
			setupMock: func(m *MockLoanRepository) {
				m.On("WithTransaction", mock.Anything).Return(nil)
				m.On("FindByID", mock.Anything, uint(21)).Return(&model.Loan{ID: 21}, nil)
				m.employees.On("Exists", mock.Anything, uint(8)).Return(false, nil)
			},
			expectedError: apperr.ErrEmployeeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockLoanRepository()
			tt.setupMock(repo)
			publisher := &recordingPublisher{}

			svc := NewLoanService(repo, publisher, zap.NewNop())
			ret, err := svc.RegisterReturn(context.Background(), 21, date, "12:00", 8)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, ret)
				assert.Empty(t, publisher.types())
			} else {
				require.NoError(t, err)
				assert.Equal(t, uint(21), ret.LoanID)
				assert.Equal(t, []string{events.ReturnRegistered}, publisher.types())
			}

			repo.AssertExpectations(t)
			repo.employees.AssertExpectations(t)
		})
	}
}

func TestLoanService_ListActiveLoans(t *testing.T) {
	repo := newMockLoanRepository()
	repo.On("ListByUser", mock.Anything, uint(1)).Return([]model.LoanView{{ID: 21, ReservationID: 3}}, nil)
	repo.On("ListByUser", mock.Anything, uint(2)).Return(nil, nil)

	svc := NewLoanService(repo, events.NopPublisher{}, zap.NewNop())

	loans, err := svc.ListActiveLoans(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, loans, 1)

	_, err = svc.ListActiveLoans(context.Background(), 2)
	assert.ErrorIs(t, err, apperr.ErrNoResults)
}
