package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "tryon/internal/errors"
	"tryon/internal/model"
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

func TestUserService_LookupOrCreate(t *testing.T) {
	existing := &model.User{ID: 7, Email: "a@example.com", Name: "A", CreatedAt: time.Now()}

	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository)
		wantCreated   bool
		wantID        uint
		expectedError error
	}{
		{
			name:  "existing email returns stored record",
			email: "a@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(existing, nil)
			},
			wantCreated: false,
			wantID:      7,
		},
		{
			name:  "new email inserts a row",
			email: "new@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 8
				}).Return(nil)
			},
			wantCreated: true,
			wantID:      8,
		},
		{
			name:  "concurrent insert loses the unique index and refetches",
			email: "a@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(existing, nil).Once()
			},
			wantCreated: false,
			wantID:      7,
		},
		{
			name:  "database failure surfaces as dependency error",
			email: "a@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, errors.New("connection refused"))
			},
			expectedError: apperrors.ErrDependencyFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil, time.Second)
			user, created, err := svc.LookupOrCreate(context.Background(), tt.email, "A")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
				assert.Equal(t, tt.wantID, user.ID)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_LookupOrCreate_IdempotentByEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "x@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.User).ID = 42
	}).Return(nil).Once()

	svc := NewUserService(mockRepo, nil, time.Second)

	first, created, err := svc.LookupOrCreate(context.Background(), "x@example.com", "X")
	assert.NoError(t, err)
	assert.True(t, created)

	mockRepo.On("FindByEmail", mock.Anything, "x@example.com").Return(first, nil).Once()

	second, created, err := svc.LookupOrCreate(context.Background(), "x@example.com", "X")
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "found",
			id:   7,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(&model.User{ID: 7, Email: "a@example.com"}, nil)
			},
		},
		{
			name: "missing row maps to not found",
			id:   99,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name: "database failure surfaces as dependency error",
			id:   7,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(nil, errors.New("connection refused"))
			},
			expectedError: apperrors.ErrDependencyFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, nil, time.Second)
			user, err := svc.GetUser(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
