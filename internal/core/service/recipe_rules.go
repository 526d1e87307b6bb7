package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// buildRecipe turns a submitted payload into a normalized recipe, or returns
// a ValidationError for the first violated rule. Checks run in a fixed
// order (name, ingredients, prepTime, steps, cost, difficulty, dietaryTags)
// and stop at the first failure. Create and update share this routine.
func buildRecipe(payload ports.RecipePayload) (*domain.Recipe, error) {
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		return nil, domain.NewValidationError("Recipe name is required.")
	}

	if len(payload.Ingredients) == 0 {
		return nil, domain.NewValidationError("At least one ingredient is required.")
	}
	ingredients := make([]domain.Ingredient, 0, len(payload.Ingredients))
	for i, ing := range payload.Ingredients {
		ingName := strings.TrimSpace(ing.Name)
		if ingName == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("Ingredient #%d name is required.", i+1))
		}
		unit := strings.TrimSpace(ing.Unit)
		if unit == "" {
			return nil, domain.NewValidationError(fmt.Sprintf("Ingredient #%d unit is required.", i+1))
		}
		qty, ok := parseFinite(ing.Quantity)
		if !ok || qty <= 0 {
			return nil, domain.NewValidationError(fmt.Sprintf("Ingredient #%d quantity must be a positive number.", i+1))
		}
		ingredients = append(ingredients, domain.Ingredient{Name: ingName, Quantity: qty, Unit: unit})
	}

	prep, ok := parseFinite(payload.PrepTime)
	if !ok || prep <= 0 {
		return nil, domain.NewValidationError("prepTime must be a positive number.")
	}

	steps := strings.TrimSpace(payload.Steps)
	if steps == "" {
		return nil, domain.NewValidationError("steps are required.")
	}

	var cost *float64
	if strings.TrimSpace(payload.Cost) != "" {
		c, ok := parseFinite(payload.Cost)
		if !ok || c < 0 {
			return nil, domain.NewValidationError("cost must be a non-negative number.")
		}
		cost = &c
	}

	difficulty, ok := domain.ParseDifficulty(payload.Difficulty)
	if !ok {
		return nil, domain.NewValidationError("difficulty must be one of: easy, medium, hard.")
	}

	return &domain.Recipe{
		Name:        name,
		Ingredients: ingredients,
		PrepTime:    prep,
		Steps:       steps,
		Cost:        cost,
		Difficulty:  difficulty,
		DietaryTags: normalizeTags(payload.DietaryTags),
	}, nil
}

// buildListFilter validates the raw list query parameters and produces the
// repository filter plus the resolved values echoed back to the client.
func buildListFilter(input ports.ListRecipesInput) (ports.RecipeFilter, ports.ResolvedFilters, error) {
	var filter ports.RecipeFilter

	filter.Search = strings.TrimSpace(input.Search)

	for _, p := range []struct {
		name string
		raw  string
		dst  **float64
	}{
		{"minPrepTime", input.MinPrepTime, &filter.MinPrepTime},
		{"maxPrepTime", input.MaxPrepTime, &filter.MaxPrepTime},
		{"minCost", input.MinCost, &filter.MinCost},
		{"maxCost", input.MaxCost, &filter.MaxCost},
	} {
		if strings.TrimSpace(p.raw) == "" {
			continue
		}
		v, ok := parseFinite(p.raw)
		if !ok || v < 0 {
			return ports.RecipeFilter{}, ports.ResolvedFilters{},
				domain.NewValidationError(fmt.Sprintf("%s must be a non-negative number.", p.name))
		}
		*p.dst = &v
	}

	filter.Difficulty = strings.ToLower(strings.TrimSpace(input.Difficulty))

	// The singular and plural tag parameters union into one set.
	tags := append(strings.Split(input.DietaryTags, ","), input.DietaryTag)
	filter.DietaryTags = normalizeTags(tags)

	resolved := ports.ResolvedFilters{
		Search:      filter.Search,
		MinPrepTime: filter.MinPrepTime,
		MaxPrepTime: filter.MaxPrepTime,
		MinCost:     filter.MinCost,
		MaxCost:     filter.MaxCost,
		Difficulty:  filter.Difficulty,
		DietaryTags: filter.DietaryTags,
	}
	return filter, resolved, nil
}

// normalizeTags trims, lower-cases, drops empties, and removes duplicates
// keeping insertion order. The result is never nil so it serializes as [].
func normalizeTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// parseFinite coerces a raw string to a finite float64.
func parseFinite(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
