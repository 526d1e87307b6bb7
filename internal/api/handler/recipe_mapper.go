package handler

import (
	"github.com/forkful/recipebook/internal/core/ports"
)

// --- Request → Service input ---

func toRecipePayload(req recipeRequest) ports.RecipePayload {
	ingredients := make([]ports.IngredientPayload, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = ports.IngredientPayload{
			Name:     string(ing.Name),
			Quantity: string(ing.Quantity),
			Unit:     string(ing.Unit),
		}
	}
	return ports.RecipePayload{
		Name:        req.Name,
		Ingredients: ingredients,
		PrepTime:    string(req.PrepTime),
		Steps:       req.Steps,
		Cost:        string(req.Cost),
		Difficulty:  req.Difficulty,
		DietaryTags: req.DietaryTags,
	}
}

// --- Service result → HTTP response ---

func toFiltersResponse(f ports.ResolvedFilters) listFiltersResponse {
	return listFiltersResponse{
		Search:      f.Search,
		MinPrepTime: f.MinPrepTime,
		MaxPrepTime: f.MaxPrepTime,
		MinCost:     f.MinCost,
		MaxCost:     f.MaxCost,
		Difficulty:  f.Difficulty,
		DietaryTags: f.DietaryTags,
	}
}
