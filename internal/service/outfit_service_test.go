package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "tryon/internal/errors"
	"tryon/internal/model"
)

// MockOutfitRepository is a mock implementation of OutfitRepository.
type MockOutfitRepository struct {
	mock.Mock
}

func (m *MockOutfitRepository) Create(ctx context.Context, outfit *model.Outfit) error {
	args := m.Called(ctx, outfit)
	return args.Error(0)
}

func (m *MockOutfitRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Outfit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Outfit), args.Error(1)
}

func TestOutfitService_ListOutfits(t *testing.T) {
	now := time.Now()
	stored := []model.Outfit{
		{ID: 3, UserID: 5, CreatedAt: now},
		{ID: 2, UserID: 5, CreatedAt: now.Add(-time.Minute)},
		{ID: 1, UserID: 5, CreatedAt: now.Add(-2 * time.Minute)},
	}

	mockRepo := new(MockOutfitRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(5)).Return(stored, nil)

	svc := NewOutfitService(mockRepo, time.Second)
	outfits, err := svc.ListOutfits(context.Background(), 5)

	assert.NoError(t, err)
	// repository order (newest first) is passed through untouched
	assert.Equal(t, []uint{3, 2, 1}, []uint{outfits[0].ID, outfits[1].ID, outfits[2].ID})
	mockRepo.AssertExpectations(t)
}

func TestOutfitService_ListOutfits_DependencyFailure(t *testing.T) {
	mockRepo := new(MockOutfitRepository)
	mockRepo.On("ListByOwner", mock.Anything, uint(5)).Return(nil, errors.New("connection refused"))

	svc := NewOutfitService(mockRepo, time.Second)
	outfits, err := svc.ListOutfits(context.Background(), 5)

	assert.ErrorIs(t, err, apperrors.ErrDependencyFailed)
	assert.Nil(t, outfits)
}

func TestOutfitService_SaveOutfit(t *testing.T) {
	mockRepo := new(MockOutfitRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Outfit")).Run(func(args mock.Arguments) {
		o := args.Get(1).(*model.Outfit)
		o.ID = 11
		o.CreatedAt = time.Now()
	}).Return(nil)

	svc := NewOutfitService(mockRepo, time.Second)
	saved, err := svc.SaveOutfit(context.Background(), 5, &model.Outfit{
		OriginalPhotoURL: "https://cdn.example.com/o.jpg",
		ResultPhotoURL:   "https://cdn.example.com/r.jpg",
	})

	assert.NoError(t, err)
	assert.Equal(t, uint(11), saved.ID)
	// ownership comes from the identity, never from the payload
	assert.Equal(t, uint(5), saved.UserID)
	assert.False(t, saved.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}
