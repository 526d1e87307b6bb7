package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/forkful/recipebook/internal/core/service"
)

func newUserHandler(t *testing.T) (*UserHandler, string) {
	t.Helper()
	repo := newMemUserRepo()
	auth := service.NewAuthService(repo, "secret", 0)
	user, err := auth.Register(context.Background(), "alice@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return NewUserHandler(service.NewUserService(repo, zerolog.Nop())), user.ID
}

func TestUserHandler_Me(t *testing.T) {
	h, uid := newUserHandler(t)

	c, rec := newTestContext(http.MethodGet, "/users/me", "")
	c.Set("uid", uid)
	c.Set("email", "alice@example.com")
	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", body)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("profile must not expose credentials: %s", rec.Body.String())
	}
}

func TestUserHandler_Me_NoIdentity(t *testing.T) {
	h, _ := newUserHandler(t)

	c, _ := newTestContext(http.MethodGet, "/users/me", "")
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestUserHandler_Me_UnknownUser(t *testing.T) {
	h, _ := newUserHandler(t)

	c, rec := newTestContext(http.MethodGet, "/users/me", "")
	c.Set("uid", "user_gone")
	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User not found.") {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestUserHandler_UpdateMe_DedupesAllergies(t *testing.T) {
	h, uid := newUserHandler(t)

	c, rec := newTestContext(http.MethodPut, "/users/me",
		`{"dietPreferences":"vegetarian","allergies":"Peanuts, peanuts, Shellfish"}`)
	c.Set("uid", uid)
	if err := h.UpdateMe(c); err != nil {
		t.Fatalf("UpdateMe returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Allergies != "Peanuts, Shellfish" {
		t.Fatalf("expected deduplicated allergies, got %q", body.Allergies)
	}
	if body.DietPreferences != "vegetarian" {
		t.Fatalf("unexpected diet preferences %q", body.DietPreferences)
	}
}

func TestUserHandler_UpdateMe_PartialBody(t *testing.T) {
	h, uid := newUserHandler(t)

	c, _ := newTestContext(http.MethodPut, "/users/me", `{"dietPreferences":"vegan"}`)
	c.Set("uid", uid)
	if err := h.UpdateMe(c); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	c, rec := newTestContext(http.MethodPut, "/users/me", `{"allergies":"soy"}`)
	c.Set("uid", uid)
	if err := h.UpdateMe(c); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	var body profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.DietPreferences != "vegan" {
		t.Fatalf("omitted field must survive, got %q", body.DietPreferences)
	}
	if body.Allergies != "soy" {
		t.Fatalf("expected allergies %q, got %q", "soy", body.Allergies)
	}
}
