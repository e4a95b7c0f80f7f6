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
	ErrActivityNotFound = errors.New("activity not found")
	ErrMissingFields    = errors.New("title and description are required")
	ErrMissingID        = errors.New("activity id is required")
)

// Reserved search tokens interpreted as completion-state filters instead of
// free text.
const (
	filterCompleted = "#completed"
	filterActive    = "#active"
)

type ActivityService struct {
	activityRepo repository.ActivityRepository
}

func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

type CreateActivityInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

type UpdateActivityInput struct {
	ID          string     `json:"id"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// List returns the caller's activities matching a single search token.
// "#completed" and "#active" restrict by completion state; anything else is
// a case-insensitive substring match on title or description, with the empty
// token matching everything. Zero matches is not an error.
func (s *ActivityService) List(ctx context.Context, userID uuid.UUID, search string) ([]domain.Activity, error) {
	activities, err := s.activityRepo.ListByOwner(ctx, userID, ParseFilter(search))
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

func (s *ActivityService) Create(ctx context.Context, userID uuid.UUID, input CreateActivityInput) (*domain.Activity, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, ErrMissingFields
	}

	now := time.Now()

	date := now
	if input.Date != nil && !input.Date.IsZero() {
		date = *input.Date
	}

	completed := false
	if input.Completed != nil {
		completed = *input.Completed
	}

	activity := &domain.Activity{
		ID:          uuid.New(),
		OwnerID:     userID,
		Title:       input.Title,
		Description: input.Description,
		Date:        date,
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("creating activity: %w", err)
	}

	return activity, nil
}

// Update applies a partial patch to an owned activity. Title and description
// merge only when present and non-empty; date when present and non-zero;
// completed on key presence alone, since an explicit false must not read as
// "absent". UpdatedAt always advances, even for a no-op patch. The lookup is
// owner-scoped, so a foreign id and a missing id are indistinguishable.
func (s *ActivityService) Update(ctx context.Context, userID uuid.UUID, input UpdateActivityInput) (*domain.Activity, error) {
	id, err := parseActivityID(input.ID)
	if err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.GetByOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != "" {
		activity.Title = *input.Title
	}
	if input.Description != nil && strings.TrimSpace(*input.Description) != "" {
		activity.Description = *input.Description
	}
	if input.Date != nil && !input.Date.IsZero() {
		activity.Date = *input.Date
	}
	if input.Completed != nil {
		activity.Completed = *input.Completed
	}
	activity.UpdatedAt = time.Now()

	if err := s.activityRepo.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("updating activity: %w", err)
	}

	return activity, nil
}

func (s *ActivityService) Delete(ctx context.Context, userID uuid.UUID, rawID string) error {
	id, err := parseActivityID(rawID)
	if err != nil {
		return err
	}

	deleted, err := s.activityRepo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	if !deleted {
		return ErrActivityNotFound
	}

	return nil
}

// ParseFilter translates a search token into a structured store filter.
// Reserved tokens are exact literal matches, checked before free text.
func ParseFilter(search string) repository.ActivityFilter {
	switch search {
	case filterCompleted:
		completed := true
		return repository.ActivityFilter{Completed: &completed}
	case filterActive:
		completed := false
		return repository.ActivityFilter{Completed: &completed}
	default:
		return repository.ActivityFilter{Text: search}
	}
}

func parseActivityID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, ErrMissingID
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrActivityNotFound
	}
	return id, nil
}
