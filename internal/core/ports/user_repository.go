package ports

import (
	"context"

	"github.com/forkful/recipebook/internal/core/domain"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type ProfileUpdate struct {
	DietPreferences *string
	Allergies       *string
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile atomically applies the update and returns the resulting
	// document.
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
}
