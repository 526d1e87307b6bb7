package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// RecipeService implements recipe CRUD plus filtered listing.
type RecipeService struct {
	repo   ports.RecipeRepository
	logger zerolog.Logger
}

func NewRecipeService(repo ports.RecipeRepository, logger zerolog.Logger) *RecipeService {
	return &RecipeService{repo: repo, logger: logger}
}

func (s *RecipeService) Create(ctx context.Context, payload ports.RecipePayload) (*domain.Recipe, error) {
	recipe, err := buildRecipe(payload)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create recipe")
		return nil, err
	}

	s.logger.Info().Str("recipe_id", created.ID).Str("name", created.Name).Msg("recipe created")
	return created, nil
}

func (s *RecipeService) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RecipeService) List(ctx context.Context, input ports.ListRecipesInput) (*ports.ListRecipesResult, error) {
	filter, resolved, err := buildListFilter(input)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list recipes")
		return nil, err
	}

	return &ports.ListRecipesResult{Filters: resolved, Items: items}, nil
}

// Update validates the payload like Create, then replaces the recipe's
// mutable fields in place.
func (s *RecipeService) Update(ctx context.Context, id string, payload ports.RecipePayload) (*domain.Recipe, error) {
	recipe, err := buildRecipe(payload)
	if err != nil {
		return nil, err
	}
	recipe.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Replace(ctx, id, recipe)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipe_id", id).Msg("recipe updated")
	return updated, nil
}

func (s *RecipeService) Delete(ctx context.Context, id string) (*domain.Recipe, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("recipe_id", id).Msg("recipe deleted")
	return deleted, nil
}
