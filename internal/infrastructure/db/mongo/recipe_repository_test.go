package mongo

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

func f64(v float64) *float64 { return &v }

func TestListQuery_Empty(t *testing.T) {
	q := listQuery(ports.RecipeFilter{})
	if len(q) != 0 {
		t.Fatalf("expected empty query, got %v", q)
	}
}

func TestListQuery_SearchQuotesRegexMeta(t *testing.T) {
	q := listQuery(ports.RecipeFilter{Search: "a.c*"})
	want := bson.M{"name": bson.M{"$regex": `a\.c\*`, "$options": "i"}}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("expected %v, got %v", want, q)
	}
}

func TestListQuery_Ranges(t *testing.T) {
	q := listQuery(ports.RecipeFilter{
		MinPrepTime: f64(10),
		MaxPrepTime: f64(30),
		MinCost:     f64(2),
	})
	want := bson.M{
		"prep_time": bson.M{"$gte": 10.0, "$lte": 30.0},
		"cost":      bson.M{"$gte": 2.0},
	}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("expected %v, got %v", want, q)
	}
}

func TestListQuery_DifficultyAndTags(t *testing.T) {
	q := listQuery(ports.RecipeFilter{
		Difficulty:  "medium",
		DietaryTags: []string{"vegan", "gluten-free"},
	})
	want := bson.M{
		"difficulty":   "medium",
		"dietary_tags": bson.M{"$in": []string{"vegan", "gluten-free"}},
	}
	if !reflect.DeepEqual(q, want) {
		t.Fatalf("expected %v, got %v", want, q)
	}
}

func TestMongoRecipe_RoundTrip(t *testing.T) {
	cost := 4.2
	recipe := &domain.Recipe{
		Name: "Soup",
		Ingredients: []domain.Ingredient{
			{Name: "Carrot", Quantity: 2, Unit: "pieces"},
		},
		PrepTime:    30,
		Steps:       "Chop. Simmer.",
		Cost:        &cost,
		Difficulty:  domain.DifficultyMedium,
		DietaryTags: []string{"vegan"},
	}

	got := toDocument(recipe).toDomain()
	if got.Name != recipe.Name || got.PrepTime != recipe.PrepTime || got.Steps != recipe.Steps {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Cost == nil || *got.Cost != cost {
		t.Fatalf("round trip lost cost: %v", got.Cost)
	}
	if got.Difficulty != domain.DifficultyMedium {
		t.Fatalf("round trip lost difficulty: %q", got.Difficulty)
	}
	if !reflect.DeepEqual(got.Ingredients, recipe.Ingredients) {
		t.Fatalf("round trip lost ingredients: %+v", got.Ingredients)
	}
}

// Documents written before dietary tags existed decode with a non-nil
// empty slice so the API always serializes an array.
func TestMongoRecipe_NilTagsBecomeEmpty(t *testing.T) {
	mr := mongoRecipe{Name: "Old"}
	if got := mr.toDomain(); got.DietaryTags == nil || len(got.DietaryTags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %#v", got.DietaryTags)
	}
}
