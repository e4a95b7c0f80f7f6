package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmarin/tasko/internal/domain"
)

// ActivityFilter is the structured form of a search token. Completed, when
// set, restricts by completion state; otherwise Text is matched as a
// case-insensitive substring of title or description. Empty means match all.
type ActivityFilter struct {
	Completed *bool
	Text      string
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Activity, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error
}
