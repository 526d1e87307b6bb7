package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/forkful/recipebook/internal/core/domain"
)

// The legacy API accepted numbers as JSON numbers or strings and tags as an
// array or a comma-separated string. The flex* types preserve that contract
// at the decode boundary and leave coercion (and its ordered error messages)
// to the recipe validator.

// flexString decodes a JSON string, number, bool, or null into raw text.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = flexString(t)
	case float64:
		*s = flexString(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*s = flexString(strconv.FormatBool(t))
	default:
		// Objects and arrays keep their raw form; numeric coercion rejects
		// them downstream with the field's own message.
		*s = flexString(data)
	}
	return nil
}

// flexTags decodes either a JSON array or a comma-separated string into raw
// elements. Any other shape yields no tags.
type flexTags []string

func (t *flexTags) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			out = append(out, fmt.Sprintf("%v", e))
		}
		*t = out
	case string:
		*t = strings.Split(val, ",")
	default:
		*t = nil
	}
	return nil
}

type ingredientRequest struct {
	Name     flexString `json:"name"`
	Quantity flexString `json:"quantity"`
	Unit     flexString `json:"unit"`
}

// recipeRequest is the shared body shape of recipe create and update.
type recipeRequest struct {
	Name        string              `json:"name"`
	Ingredients []ingredientRequest `json:"ingredients"`
	PrepTime    flexString          `json:"prepTime"`
	Steps       string              `json:"steps"`
	Cost        flexString          `json:"cost"`
	Difficulty  string              `json:"difficulty"`
	DietaryTags flexTags            `json:"dietaryTags"`
}

// recipeErrorResponse is the error envelope of the recipe routes.
type recipeErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type recipeResponse struct {
	Success bool           `json:"success"`
	Data    *domain.Recipe `json:"data"`
}

// listFiltersResponse echoes the resolved filter values back to the client.
// Inactive filters are omitted.
type listFiltersResponse struct {
	Search      string   `json:"search,omitempty"`
	MinPrepTime *float64 `json:"minPrepTime,omitempty"`
	MaxPrepTime *float64 `json:"maxPrepTime,omitempty"`
	MinCost     *float64 `json:"minCost,omitempty"`
	MaxCost     *float64 `json:"maxCost,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	DietaryTags []string `json:"dietaryTags,omitempty"`
}

type listRecipesResponse struct {
	Success bool                `json:"success"`
	Count   int                 `json:"count"`
	Filters listFiltersResponse `json:"filters"`
	Data    []*domain.Recipe    `json:"data"`
}
