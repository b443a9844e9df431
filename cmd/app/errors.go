package main

import (
	"errors"
	"net/http"

	"TaskTrackerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// errorJSON translates the domain error taxonomy into status + detail
// responses. Anything unmapped is a 500 with no internals leaked.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrNotAuthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Not Authorized"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "User Not Found"})
	case errors.Is(err, services.ErrTodoNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "ToDo Not Found"})
	case errors.Is(err, services.ErrDuplicateUsername):
		return c.JSON(http.StatusConflict, echo.Map{"detail": "Duplicate Username"})
	case errors.Is(err, services.ErrOTPExpired):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "OTP Expired or Missing"})
	case errors.Is(err, services.ErrOTPMismatch):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "OTP Mismatch"})
	case errors.Is(err, services.ErrMalformedHash):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Malformed Credential"})
	case errors.Is(err, services.ErrInvalidEmail):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid Email"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal Server Error"})
}
