package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/forkful/recipebook/internal/core/domain"
)

// Auth validates the bearer JWT and injects the caller's identity into the
// echo context as "uid" and "email". A missing signing secret is a server
// configuration failure, not a client error.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header missing")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Bad authorization format")
			}

			if jwtSecret == "" {
				return echo.NewHTTPError(http.StatusInternalServerError, "Server config issue")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return domain.ErrBadToken
			}

			// Keep only the small useful identity on the request context.
			c.Set("uid", claims["uid"])
			c.Set("email", claims["email"])

			return next(c)
		}
	}
}
