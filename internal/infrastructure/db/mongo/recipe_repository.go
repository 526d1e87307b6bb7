package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

const recipesCollection = "recipes"

type RecipeRepository struct {
	coll *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{coll: db.Collection(recipesCollection)}
}

type mongoIngredient struct {
	Name     string  `bson:"name"`
	Quantity float64 `bson:"quantity"`
	Unit     string  `bson:"unit"`
}

type mongoRecipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Ingredients []mongoIngredient  `bson:"ingredients"`
	PrepTime    float64            `bson:"prep_time"`
	Steps       string             `bson:"steps"`
	Cost        *float64           `bson:"cost,omitempty"`
	Difficulty  string             `bson:"difficulty"`
	DietaryTags []string           `bson:"dietary_tags"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDocument(recipe))
	if err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}

	created := *recipe
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRecipe
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return mr.toDomain(), nil
}

// List returns recipes matching filter, newest-created first.
func (r *RecipeRepository) List(ctx context.Context, filter ports.RecipeFilter) ([]*domain.Recipe, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, listQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoRecipe
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}

	recipes := make([]*domain.Recipe, len(docs))
	for i, mr := range docs {
		recipes[i] = mr.toDomain()
	}
	return recipes, nil
}

// Replace overwrites the mutable recipe fields in one find-and-modify call.
// CreatedAt is left untouched; a vanished cost is unset rather than kept.
func (r *RecipeRepository) Replace(ctx context.Context, id string, recipe *domain.Recipe) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	set := bson.M{
		"name":         recipe.Name,
		"ingredients":  toIngredientDocs(recipe.Ingredients),
		"prep_time":    recipe.PrepTime,
		"steps":        recipe.Steps,
		"difficulty":   string(recipe.Difficulty),
		"dietary_tags": recipe.DietaryTags,
		"updated_at":   recipe.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if recipe.Cost != nil {
		set["cost"] = *recipe.Cost
	} else {
		update["$unset"] = bson.M{"cost": ""}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mr mongoRecipe
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("replace recipe: %w", err)
	}
	return mr.toDomain(), nil
}

// Delete removes the recipe and returns the deleted document.
func (r *RecipeRepository) Delete(ctx context.Context, id string) (*domain.Recipe, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mr mongoRecipe
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("delete recipe: %w", err)
	}
	return mr.toDomain(), nil
}

// EnsureIndexes creates the indexes backing the list endpoint's sort and
// filters.
func (r *RecipeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "dietary_tags", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// listQuery translates the resolved filter into a Mongo query document.
// The search term is quoted so user input cannot inject regex syntax.
func listQuery(f ports.RecipeFilter) bson.M {
	q := bson.M{}

	if f.Search != "" {
		q["name"] = bson.M{"$regex": regexp.QuoteMeta(f.Search), "$options": "i"}
	}

	prep := bson.M{}
	if f.MinPrepTime != nil {
		prep["$gte"] = *f.MinPrepTime
	}
	if f.MaxPrepTime != nil {
		prep["$lte"] = *f.MaxPrepTime
	}
	if len(prep) > 0 {
		q["prep_time"] = prep
	}

	cost := bson.M{}
	if f.MinCost != nil {
		cost["$gte"] = *f.MinCost
	}
	if f.MaxCost != nil {
		cost["$lte"] = *f.MaxCost
	}
	if len(cost) > 0 {
		q["cost"] = cost
	}

	if f.Difficulty != "" {
		q["difficulty"] = f.Difficulty
	}

	if len(f.DietaryTags) > 0 {
		q["dietary_tags"] = bson.M{"$in": f.DietaryTags}
	}

	return q
}

func toDocument(r *domain.Recipe) mongoRecipe {
	return mongoRecipe{
		Name:        r.Name,
		Ingredients: toIngredientDocs(r.Ingredients),
		PrepTime:    r.PrepTime,
		Steps:       r.Steps,
		Cost:        r.Cost,
		Difficulty:  string(r.Difficulty),
		DietaryTags: r.DietaryTags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toIngredientDocs(in []domain.Ingredient) []mongoIngredient {
	out := make([]mongoIngredient, len(in))
	for i, ing := range in {
		out[i] = mongoIngredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return out
}

func (mr mongoRecipe) toDomain() *domain.Recipe {
	tags := mr.DietaryTags
	if tags == nil {
		tags = []string{}
	}
	ingredients := make([]domain.Ingredient, len(mr.Ingredients))
	for i, ing := range mr.Ingredients {
		ingredients[i] = domain.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return &domain.Recipe{
		ID:          mr.ID.Hex(),
		Name:        mr.Name,
		Ingredients: ingredients,
		PrepTime:    mr.PrepTime,
		Steps:       mr.Steps,
		Cost:        mr.Cost,
		Difficulty:  domain.Difficulty(mr.Difficulty),
		DietaryTags: tags,
		CreatedAt:   mr.CreatedAt,
		UpdatedAt:   mr.UpdatedAt,
	}
}
