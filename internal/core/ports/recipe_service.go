package ports

import (
	"context"

	"github.com/forkful/recipebook/internal/core/domain"
)

// IngredientPayload carries one submitted ingredient. Quantity stays a raw
// string so the validator owns numeric coercion and its error message.
type IngredientPayload struct {
	Name     string
	Quantity string
	Unit     string
}

// RecipePayload is the transport-neutral shape of a create/update body.
// Numeric fields are raw strings for the same reason as IngredientPayload;
// DietaryTags holds the raw elements (the transport layer splits the
// comma-separated string form, the validator normalizes).
type RecipePayload struct {
	Name        string
	Ingredients []IngredientPayload
	PrepTime    string
	Steps       string
	Cost        string
	Difficulty  string
	DietaryTags []string
}

// ListRecipesInput carries the raw query parameters of the list endpoint.
type ListRecipesInput struct {
	Search      string
	MinPrepTime string
	MaxPrepTime string
	MinCost     string
	MaxCost     string
	Difficulty  string
	DietaryTag  string // singular form, unioned with DietaryTags
	DietaryTags string // comma-separated
}

// ResolvedFilters echoes the filter values actually applied, for client
// transparency.
type ResolvedFilters struct {
	Search      string
	MinPrepTime *float64
	MaxPrepTime *float64
	MinCost     *float64
	MaxCost     *float64
	Difficulty  string
	DietaryTags []string
}

// ListRecipesResult is returned by RecipeService.List.
type ListRecipesResult struct {
	Filters ResolvedFilters
	Items   []*domain.Recipe
}

// RecipeService defines the recipe use-cases. Create and Update run the
// same payload validation; both return a ValidationError on the first
// violated rule.
type RecipeService interface {
	Create(ctx context.Context, payload RecipePayload) (*domain.Recipe, error)
	Get(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context, input ListRecipesInput) (*ListRecipesResult, error)
	Update(ctx context.Context, id string, payload RecipePayload) (*domain.Recipe, error)
	Delete(ctx context.Context, id string) (*domain.Recipe, error)
}
