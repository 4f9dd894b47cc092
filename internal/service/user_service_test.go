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

	"integraservicios/internal/auth"
	apperr "integraservicios/internal/errors"
	"integraservicios/internal/model"
)

func strPtr(s string) *string { return &s }

func newTestUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, auth.NewPasswordHasher(4), nil, zap.NewNop())
}

func TestUserService_GetUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Name: "Ana"}, nil)
	repo.On("FindByID", mock.Anything, uint(2)).Return(nil, errors.Wrap(gorm.ErrRecordNotFound, "find user"))

	svc := newTestUserService(repo)

	user, err := svc.GetUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = svc.GetUser(context.Background(), 2)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestUserService_ListUsersNeverNil(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything).Return(nil, nil)

	users, err := newTestUserService(repo).ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_UpdateUser(t *testing.T) {
	tests := []struct {
		name          string
		update        model.UserUpdate
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "name and phone",
			update: model.UserUpdate{Name: strPtr("Ana B"), Phone: strPtr("555")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, uint(1), map[string]interface{}{"nombre": "Ana B", "telefono": "555"}).Return(true, nil)
			},
		},
		{
			name:   "password is stored hashed",
			update: model.UserUpdate{Password: strPtr("nueva")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
					hash, ok := fields["contrasena"].(string)
					return ok && hash != "nueva" && auth.NewPasswordHasher(4).Verify("nueva", hash)
				})).Return(true, nil)
			},
		},
		{
			name:          "nothing to update",
			update:        model.UserUpdate{},
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperr.ErrNothingToUpdate,
		},
		{
			name:   "missing user",
			update: model.UserUpdate{Name: strPtr("x")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, uint(1), mock.Anything).Return(false, nil)
			},
			expectedError: apperr.ErrUserNotFound,
		},
		{
			name:   "email taken by another user",
			update: model.UserUpdate{Email: strPtr("taken@example.com")},
			setupMock: func(m *MockUserRepository) {
				m.On("Update", mock.Anything, uint(1), mock.Anything).Return(false, errors.Wrap(apperr.ErrConflict, "update user"))
			},
			expectedError: apperr.ErrDuplicateEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			err := newTestUserService(repo).UpdateUser(context.Background(), 1, tt.update)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Delete", mock.Anything, uint(1)).Return(nil)
	repo.On("Delete", mock.Anything, uint(2)).Return(errors.Wrap(apperr.ErrReferenced, "delete user"))

	svc := newTestUserService(repo)

	assert.NoError(t, svc.DeleteUser(context.Background(), 1))

	err := svc.DeleteUser(context.Background(), 2)
	assert.ErrorIs(t, err, apperr.ErrReferenced)
}
