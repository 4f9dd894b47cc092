package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"integraservicios/internal/events"
	"integraservicios/internal/model"
	"integraservicios/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (bool, error) {
	args := m.Called(ctx, id, fields)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself.
func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.UserRepository) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// MockResourceRepository is a mock implementation of ResourceRepository.
type MockResourceRepository struct {
	mock.Mock
}

func (m *MockResourceRepository) ListAvailableByType(ctx context.Context, typeID uint) ([]model.Resource, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Resource), args.Error(1)
}

func (m *MockResourceRepository) List(ctx context.Context, filter model.ResourceFilter) ([]model.ResourceView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResourceView), args.Error(1)
}

func (m *MockResourceRepository) ListAvailable(ctx context.Context) ([]model.ResourceView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResourceView), args.Error(1)
}

func (m *MockResourceRepository) UpsertType(ctx context.Context, resourceType *model.ResourceType) error {
	args := m.Called(ctx, resourceType)
	return args.Error(0)
}

func (m *MockResourceRepository) UpsertResource(ctx context.Context, resource *model.Resource) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uint) (*model.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ExistsAt(ctx context.Context, resourceID uint, date model.Date, at string) (bool, error) {
	args := m.Called(ctx, resourceID, date, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id uint, status model.ReservationStatus) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) List(ctx context.Context, filter model.ReservationFilter) ([]model.ReservationView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ReservationView), args.Error(1)
}

func (m *MockReservationRepository) ListActiveByUser(ctx context.Context, userID uint) ([]model.Reservation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Reservation), args.Error(1)
}

// WithTransaction runs fn against the mock itself.
func (m *MockReservationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ReservationRepository) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEmployeeRepository) Upsert(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// MockLoanRepository is a mock implementation of LoanRepository.
type MockLoanRepository struct {
	mock.Mock
	reservations *MockReservationRepository
	employees    *MockEmployeeRepository
}

func newMockLoanRepository() *MockLoanRepository {
	return &MockLoanRepository{
		reservations: new(MockReservationRepository),
		employees:    new(MockEmployeeRepository),
	}
}

func (m *MockLoanRepository) Create(ctx context.Context, loan *model.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) FindByID(ctx context.Context, id uint) (*model.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Loan), args.Error(1)
}

func (m *MockLoanRepository) CreateReturn(ctx context.Context, ret *model.Return) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockLoanRepository) ListByUser(ctx context.Context, userID uint) ([]model.LoanView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LoanView), args.Error(1)
}

func (m *MockLoanRepository) Reservations() repository.ReservationRepository {
	return m.reservations
}

func (m *MockLoanRepository) Employees() repository.EmployeeRepository {
	return m.employees
}

// WithTransaction runs fn against the mock itself.
func (m *MockLoanRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.LoanRepository) error) error {
	m.Called(ctx)
	return fn(ctx, m)
}

// recordingPublisher keeps published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
