package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"tryon/internal/cache"
	apperrors "tryon/internal/errors"
	"tryon/internal/model"
	"tryon/internal/repository"
)

// User rows are immutable after creation, so cached entries can never go
// stale; the TTL only bounds memory.
const userCacheTTL = 5 * time.Minute

// UserService exposes user lookup and creation.
type UserService interface {
	// LookupOrCreate returns the user stored under email, creating it when
	// absent. The bool reports whether a new row was inserted.
	LookupOrCreate(ctx context.Context, email, name string) (*model.User, bool, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo    repository.UserRepository
	cache   *cache.Client
	timeout time.Duration
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client, timeout time.Duration) UserService {
	return &userService{repo: repo, cache: cache, timeout: timeout}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) LookupOrCreate(ctx context.Context, email, name string) (*model.User, bool, error) {
	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	existing, err := s.repo.FindByEmail(dctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, apperrors.WrapDependency(err)
	}

	user := &model.User{Email: email, Name: name}
	if err := s.repo.Create(dctx, user); err != nil {
		// A concurrent create with the same email wins the unique index;
		// fall back to the row it inserted.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.repo.FindByEmail(dctx, email)
			if ferr != nil {
				return nil, false, apperrors.WrapDependency(ferr)
			}
			return existing, false, nil
		}
		return nil, false, apperrors.WrapDependency(err)
	}
	return user, true, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.repo.FindByID(dctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.WrapDependency(err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}
