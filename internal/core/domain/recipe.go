package domain

import (
	"strings"
	"time"
)

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Difficulty classifies how hard a recipe is to prepare.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a raw difficulty value. The second return value
// is false when the input is non-blank but not a known difficulty.
func ParseDifficulty(raw string) (Difficulty, bool) {
	switch Difficulty(normalizeToken(raw)) {
	case "":
		return DifficultyEasy, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}

// Ingredient is embedded in a recipe and has no identity of its own.
type Ingredient struct {
	Name     string  `json:"name" bson:"name"`
	Quantity float64 `json:"quantity" bson:"quantity"`
	Unit     string  `json:"unit" bson:"unit"`
}

// Recipe is the core aggregate root.
// Cost is nil when the recipe has no cost recorded; it serializes as null.
type Recipe struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Ingredients []Ingredient `json:"ingredients" bson:"ingredients"`
	PrepTime    float64      `json:"prepTime" bson:"prep_time"`
	Steps       string       `json:"steps" bson:"steps"`
	Cost        *float64     `json:"cost" bson:"cost,omitempty"`
	Difficulty  Difficulty   `json:"difficulty" bson:"difficulty"`
	DietaryTags []string     `json:"dietaryTags" bson:"dietary_tags"`
	CreatedAt   time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updated_at"`
}
