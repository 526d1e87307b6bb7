package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// UserService implements profile read and update.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateProfile applies the given fields. Diet preferences pass through
// untouched; the allergy list is deduplicated case-insensitively before the
// write.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.Allergies != nil {
		deduped := DedupeAllergies(*update.Allergies)
		update.Allergies = &deduped
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("profile updated")
	return user, nil
}

// DedupeAllergies splits a comma-joined allergy string, drops blanks and
// case-insensitive duplicates keeping the first-seen original casing, and
// re-joins in insertion order.
func DedupeAllergies(raw string) string {
	seen := make(map[string]struct{})
	var kept []string
	for _, part := range strings.Split(raw, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, item)
	}
	return strings.Join(kept, ", ")
}
