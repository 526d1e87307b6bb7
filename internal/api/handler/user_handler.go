package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type profileResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	DietPreferences string `json:"dietPreferences"`
	Allergies       string `json:"allergies"`
}

type updateProfileRequest struct {
	DietPreferences *string `json:"dietPreferences"`
	Allergies       *string `json:"allergies"`
}

// Me handles GET /users/me.
//
// @Summary      Read the authenticated user's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	uid, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// UpdateMe handles PUT /users/me. Absent fields are left unchanged.
//
// @Summary      Update the authenticated user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields to update"
// @Success      200   {object}  profileResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), uid, ports.ProfileUpdate{
		DietPreferences: req.DietPreferences,
		Allergies:       req.Allergies,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found."})
		}
		return err
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		Name:            u.Name,
		Email:           u.Email,
		DietPreferences: u.DietPreferences,
		Allergies:       u.Allergies,
	}
}
