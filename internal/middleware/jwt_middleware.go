package middleware

import (
	"errors"
	"net/http"
	"strings"

	"TaskTrackerAPI/internal/model"
	"TaskTrackerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

const currentUserKey = "current_user"

// JWT guards protected routes. It rejects requests without a valid bearer
// token before any handler logic runs, resolves the token's subject to a
// stored user and puts the user on the request context.
//
// A valid token whose subject no longer exists is a 404, not a 401; the two
// cases are deliberately distinguishable.
func JWT(tokens *services.TokenService, users services.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if auth == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not Authorized"})
			}
			parts := strings.Fields(auth)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not Authorized"})
			}

			subject, err := tokens.Validate(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not Authorized"})
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, services.ErrUserNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"detail": "User Not Found"})
				}
				return err
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by JWT, or nil on unguarded routes.
func CurrentUser(c echo.Context) *model.User {
	v := c.Get(currentUserKey)
	if v == nil {
		return nil
	}
	if u, ok := v.(*model.User); ok {
		return u
	}
	return nil
}
