package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-service/internal/application/interfaces"
)

// principalKey is the echo context key holding the authenticated user id.
const principalKey = "principalId"

// AuthGate wraps every task route: it resolves the bearer token and stores
// the owning user id in the context, or short-circuits with 401.
func AuthGate(tokenService interfaces.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or missing token"})
			}

			userId, err := tokenService.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or missing token"})
			}

			c.Set(principalKey, userId)
			return next(c)
		}
	}
}

func principal(c echo.Context) uuid.UUID {
	return c.Get(principalKey).(uuid.UUID)
}
