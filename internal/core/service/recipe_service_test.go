package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

type stubRecipeRepo struct {
	recipes    map[string]*domain.Recipe
	nextID     int
	lastFilter ports.RecipeFilter
	listCalls  int
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{recipes: make(map[string]*domain.Recipe)}
}

func cloneRecipe(r *domain.Recipe) *domain.Recipe {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

func (s *stubRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	s.nextID++
	created := cloneRecipe(recipe)
	created.ID = "recipe_" + strconv.Itoa(s.nextID)
	s.recipes[created.ID] = cloneRecipe(created)
	return created, nil
}

func (s *stubRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	return cloneRecipe(r), nil
}

func (s *stubRecipeRepo) List(_ context.Context, filter ports.RecipeFilter) ([]*domain.Recipe, error) {
	s.listCalls++
	s.lastFilter = filter
	out := make([]*domain.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, cloneRecipe(r))
	}
	return out, nil
}

func (s *stubRecipeRepo) Replace(_ context.Context, id string, recipe *domain.Recipe) (*domain.Recipe, error) {
	existing, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	updated := cloneRecipe(recipe)
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	s.recipes[id] = cloneRecipe(updated)
	return updated, nil
}

func (s *stubRecipeRepo) Delete(_ context.Context, id string) (*domain.Recipe, error) {
	r, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	delete(s.recipes, id)
	return r, nil
}

// ---------------------------------------------------------------------------

func TestRecipeService_Create_SetsTimestamps(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), validPayload())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if created.CreatedAt.Before(before) || created.CreatedAt != created.UpdatedAt {
		t.Fatalf("expected matching fresh timestamps, got created=%v updated=%v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestRecipeService_Create_InvalidPayloadNotPersisted(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	p := validPayload()
	p.Name = ""
	if _, err := svc.Create(context.Background(), p); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(repo.recipes) != 0 {
		t.Fatalf("invalid payload must not be persisted, store has %d recipes", len(repo.recipes))
	}
}

func TestRecipeService_List_InvalidFilterSkipsRepo(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	_, err := svc.List(context.Background(), ports.ListRecipesInput{MinCost: "abc"})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if repo.listCalls != 0 {
		t.Fatalf("repository must not be queried on invalid filters")
	}
}

func TestRecipeService_List_PassesNormalizedFilter(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	result, err := svc.List(context.Background(), ports.ListRecipesInput{
		Difficulty: " Easy ",
		DietaryTag: "Vegan",
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.lastFilter.Difficulty != "easy" {
		t.Fatalf("expected normalized difficulty, got %q", repo.lastFilter.Difficulty)
	}
	if len(repo.lastFilter.DietaryTags) != 1 || repo.lastFilter.DietaryTags[0] != "vegan" {
		t.Fatalf("expected normalized tags, got %v", repo.lastFilter.DietaryTags)
	}
	if result.Filters.Difficulty != "easy" {
		t.Fatalf("result must echo the resolved filters, got %+v", result.Filters)
	}
}

func TestRecipeService_Update_ValidatesAndReplaces(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validPayload())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p := validPayload()
	p.Name = "Green Tea"
	p.Difficulty = "medium"
	updated, err := svc.Update(context.Background(), created.ID, p)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Green Tea" || updated.Difficulty != domain.DifficultyMedium {
		t.Fatalf("unexpected updated recipe: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update must not change createdAt")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("update must refresh updatedAt")
	}

	bad := validPayload()
	bad.PrepTime = "zero"
	if _, err := svc.Update(context.Background(), created.ID, bad); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	kept, _ := svc.Get(context.Background(), created.ID)
	if kept.Name != "Green Tea" {
		t.Fatalf("failed update must not modify the stored recipe")
	}
}

func TestRecipeService_Delete_ReturnsRemovedRecipe(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), validPayload())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("expected deleted recipe %q, got %q", created.ID, deleted.ID)
	}
	if _, err := svc.Delete(context.Background(), created.ID); err != domain.ErrRecipeNotFound {
		t.Fatalf("second delete must report ErrRecipeNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrRecipeNotFound {
		t.Fatalf("deleted recipe must be gone, got %v", err)
	}
}
