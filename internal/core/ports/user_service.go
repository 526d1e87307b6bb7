package ports

import (
	"context"

	"github.com/forkful/recipebook/internal/core/domain"
)

// UserService exposes profile read/update for the authenticated user.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
}
