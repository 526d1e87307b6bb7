package ports

import (
	"context"

	"github.com/forkful/recipebook/internal/core/domain"
)

// RecipeFilter is the resolved predicate for listing recipes. All conditions
// combine with logical AND; nil range bounds are inactive.
type RecipeFilter struct {
	Search      string   // case-insensitive substring on name
	MinPrepTime *float64 // inclusive
	MaxPrepTime *float64 // inclusive
	MinCost     *float64 // inclusive
	MaxCost     *float64 // inclusive
	Difficulty  string   // exact match, already lower-cased
	DietaryTags []string // non-empty = recipe tags must intersect this set
}

// RecipeRepository defines persistence operations for recipes.
// Replace and Delete use atomic find-and-mutate primitives so each call
// affects exactly one matching document.
type RecipeRepository interface {
	Create(ctx context.Context, r *domain.Recipe) (*domain.Recipe, error)
	FindByID(ctx context.Context, id string) (*domain.Recipe, error)
	// List returns recipes matching filter, newest-created first.
	List(ctx context.Context, filter RecipeFilter) ([]*domain.Recipe, error)
	// Replace overwrites the mutable fields of the recipe with the given id
	// and returns the updated document.
	Replace(ctx context.Context, id string, r *domain.Recipe) (*domain.Recipe, error)
	// Delete removes the recipe and returns the deleted document.
	Delete(ctx context.Context, id string) (*domain.Recipe, error)
}
