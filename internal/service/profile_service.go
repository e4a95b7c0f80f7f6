package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmarin/tasko/internal/domain"
	"github.com/dmarin/tasko/internal/repository"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidAge   = errors.New("age must be zero or positive")
)

type ProfileService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
}

func NewProfileService(userRepo repository.UserRepository, activityRepo repository.ActivityRepository) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

type UpdateProfileInput struct {
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Age != nil {
		if *input.Age < 0 {
			return nil, ErrInvalidAge
		}
		user.Age = *input.Age
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return user, nil
}

// Delete removes the account and everything it owns. Activities go first so
// the store never holds orphaned records even without the schema-level
// cascade.
func (s *ProfileService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.activityRepo.DeleteByOwner(ctx, userID); err != nil {
		return fmt.Errorf("deleting activities: %w", err)
	}

	deleted, err := s.userRepo.Delete(ctx, userID)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if !deleted {
		return ErrUserNotFound
	}

	return nil
}
