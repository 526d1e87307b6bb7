package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/forkful/recipebook/docs"
	"github.com/forkful/recipebook/internal/api/handler"
	"github.com/forkful/recipebook/internal/api/middleware"
	"github.com/forkful/recipebook/internal/core/service"
	"github.com/forkful/recipebook/internal/infrastructure/config"
	mongodb "github.com/forkful/recipebook/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("recipebook"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	recipeRepo := mongodb.NewRecipeRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	recipeService := service.NewRecipeService(recipeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	requireAuth := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Profile routes ---
	e.GET("/users/me", userHandler.Me, requireAuth)
	e.PUT("/users/me", userHandler.UpdateMe, requireAuth)

	// --- Recipe routes ---
	// Reads are always public. Whether mutations require authentication is
	// deployment policy, not code: the historical behaviour is an open
	// recipe board, so the gate defaults off.
	var mutate []echo.MiddlewareFunc
	if cfg.ProtectRecipes {
		mutate = append(mutate, requireAuth)
	}

	e.GET("/recipes", recipeHandler.List)
	e.GET("/recipes/:id", recipeHandler.Get)
	e.POST("/recipes", recipeHandler.Create, mutate...)
	e.PUT("/recipes/:id", recipeHandler.Update, mutate...)
	e.DELETE("/recipes/:id", recipeHandler.Delete, mutate...)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Browser frontend ---
	e.Static("/app", "web/static")

	return e
}
