package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forkful/recipebook/internal/api/metrics"
	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service ports.RecipeService
}

func NewRecipeHandler(service ports.RecipeService) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// List handles GET /recipes.
//
// @Summary      List recipes with optional filters
// @Tags         recipes
// @Produce      json
// @Param        search       query     string  false  "Case-insensitive substring match on name"
// @Param        minPrepTime  query     number  false  "Minimum prep time in minutes (inclusive)"
// @Param        maxPrepTime  query     number  false  "Maximum prep time in minutes (inclusive)"
// @Param        minCost      query     number  false  "Minimum cost (inclusive)"
// @Param        maxCost      query     number  false  "Maximum cost (inclusive)"
// @Param        difficulty   query     string  false  "Exact difficulty match"
// @Param        dietaryTag   query     string  false  "Single dietary tag"
// @Param        dietaryTags  query     string  false  "Comma-separated dietary tags"
// @Success      200  {object}  listRecipesResponse
// @Failure      400  {object}  recipeErrorResponse
// @Failure      500  {object}  recipeErrorResponse
// @Router       /recipes [get]
func (h *RecipeHandler) List(c echo.Context) error {
	result, err := h.service.List(c.Request().Context(), ports.ListRecipesInput{
		Search:      c.QueryParam("search"),
		MinPrepTime: c.QueryParam("minPrepTime"),
		MaxPrepTime: c.QueryParam("maxPrepTime"),
		MinCost:     c.QueryParam("minCost"),
		MaxCost:     c.QueryParam("maxCost"),
		Difficulty:  c.QueryParam("difficulty"),
		DietaryTag:  c.QueryParam("dietaryTag"),
		DietaryTags: c.QueryParam("dietaryTags"),
	})
	if err != nil {
		return recipeError(c, err)
	}

	return c.JSON(http.StatusOK, listRecipesResponse{
		Success: true,
		Count:   len(result.Items),
		Filters: toFiltersResponse(result.Filters),
		Data:    result.Items,
	})
}

// Create handles POST /recipes.
//
// @Summary      Create a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      recipeRequest  true  "Recipe payload"
// @Success      201   {object}  recipeResponse
// @Failure      400   {object}  recipeErrorResponse
// @Failure      500   {object}  recipeErrorResponse
// @Router       /recipes [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, recipeErrorResponse{Error: "Invalid recipe payload."})
	}

	recipe, err := h.service.Create(c.Request().Context(), toRecipePayload(req))
	if err != nil {
		return recipeError(c, err)
	}

	metrics.RecipesCreatedTotal.WithLabelValues(string(recipe.Difficulty)).Inc()
	return c.JSON(http.StatusCreated, recipeResponse{Success: true, Data: recipe})
}

// Get handles GET /recipes/:id.
//
// @Summary      Get a recipe by id
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  recipeResponse
// @Failure      404  {object}  recipeErrorResponse
// @Failure      500  {object}  recipeErrorResponse
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	recipe, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(http.StatusOK, recipeResponse{Success: true, Data: recipe})
}

// Update handles PUT /recipes/:id. The body shape matches Create; all
// mutable fields are replaced.
//
// @Summary      Update a recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Recipe id"
// @Param        body  body      recipeRequest  true  "Recipe payload"
// @Success      200   {object}  recipeResponse
// @Failure      400   {object}  recipeErrorResponse
// @Failure      404   {object}  recipeErrorResponse
// @Failure      500   {object}  recipeErrorResponse
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) Update(c echo.Context) error {
	var req recipeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, recipeErrorResponse{Error: "Invalid recipe payload."})
	}

	recipe, err := h.service.Update(c.Request().Context(), c.Param("id"), toRecipePayload(req))
	if err != nil {
		return recipeError(c, err)
	}
	return c.JSON(http.StatusOK, recipeResponse{Success: true, Data: recipe})
}

// Delete handles DELETE /recipes/:id and echoes the deleted recipe.
//
// @Summary      Delete a recipe
// @Tags         recipes
// @Produce      json
// @Param        id   path      string  true  "Recipe id"
// @Success      200  {object}  recipeResponse
// @Failure      404  {object}  recipeErrorResponse
// @Failure      500  {object}  recipeErrorResponse
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	recipe, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return recipeError(c, err)
	}

	metrics.RecipesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, recipeResponse{Success: true, Data: recipe})
}

// recipeError renders the recipe routes' {success:false, error} envelope for
// expected failures; anything else escapes to the central error handler.
func recipeError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		metrics.RecipeValidationFailuresTotal.Inc()
		return c.JSON(http.StatusBadRequest, recipeErrorResponse{Error: ve.Message})
	case errors.Is(err, domain.ErrRecipeNotFound):
		return c.JSON(http.StatusNotFound, recipeErrorResponse{Error: "Recipe not found."})
	default:
		return err
	}
}
