package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forkful/recipebook/internal/api/metrics"
	"github.com/forkful/recipebook/internal/core/domain"
	"github.com/forkful/recipebook/internal/core/ports"
)

// msgInvalidCredentials is deliberately shared between "unknown email" and
// "wrong password" so the endpoint cannot be used to enumerate accounts.
const msgInvalidCredentials = "Invalid email or password."

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// credentialsRequest deliberately puts no format constraint on the email:
// any non-empty string is a valid account name. The password cap matches
// bcrypt's 72-byte input limit.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

type userSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type registerResponse struct {
	Message string      `json:"message"`
	User    userSummary `json:"user"`
}

type loginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userSummary `json:"user"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Email and password"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Email already registered."})
		}
		if domain.IsValidation(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{
		Message: "User registered successfully.",
		User:    userSummary{ID: user.ID, Email: user.Email},
	})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid JSON body."})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email and password are required."})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msgInvalidCredentials})
		}
		if errors.Is(err, domain.ErrSecretMissing) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Server config issue"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login successful.",
		Token:   token,
		User:    userSummary{ID: user.ID, Email: user.Email},
	})
}
