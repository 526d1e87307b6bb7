package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// newTestContext builds an echo context the way the handlers see one in
// production, validator included.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// ---------------------------------------------------------------------------
// In-memory repositories backing the real services in handler tests
// ---------------------------------------------------------------------------

type memUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.nextID++
	clone := *user
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if update.DietPreferences != nil {
			u.DietPreferences = *update.DietPreferences
		}
		if update.Allergies != nil {
			u.Allergies = *update.Allergies
		}
		out := *u
		return &out, nil
	}
	return nil, domain.ErrUserNotFound
}

type memRecipeRepo struct {
	recipes    map[string]*domain.Recipe
	nextID     int
	lastFilter ports.RecipeFilter
}

func newMemRecipeRepo() *memRecipeRepo {
	return &memRecipeRepo{recipes: make(map[string]*domain.Recipe)}
}

func (r *memRecipeRepo) Create(_ context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	r.nextID++
	clone := *recipe
	clone.ID = "recipe_" + strconv.Itoa(r.nextID)
	r.recipes[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	out := *rec
	return &out, nil
}

func (r *memRecipeRepo) List(_ context.Context, filter ports.RecipeFilter) ([]*domain.Recipe, error) {
	r.lastFilter = filter
	out := make([]*domain.Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memRecipeRepo) Replace(_ context.Context, id string, recipe *domain.Recipe) (*domain.Recipe, error) {
	existing, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	clone := *recipe
	clone.ID = id
	clone.CreatedAt = existing.CreatedAt
	r.recipes[id] = &clone
	out := clone
	return &out, nil
}

func (r *memRecipeRepo) Delete(_ context.Context, id string) (*domain.Recipe, error) {
	rec, ok := r.recipes[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	delete(r.recipes, id)
	return rec, nil
}
