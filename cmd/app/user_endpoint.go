package main

import (
	"net/http"

	"TaskTrackerAPI/internal/middleware"
	"TaskTrackerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type signUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type logInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type otpRequest struct {
	Email string `json:"email"`
}

type otpVerifyRequest struct {
	Email string `json:"email"`
	OTP   int    `json:"otp"`
}

func signUpHandler(us *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(signUpRequest)
		if err := c.Bind(req); err != nil || req.Username == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}

		user, err := us.SignUp(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}

		return c.JSON(http.StatusCreated, user)
	}
}

func logInHandler(us *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(logInRequest)
		if err := c.Bind(req); err != nil || req.Username == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}

		token, err := us.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{"access_token": token})
	}
}

func requestOTPHandler(us *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(otpRequest)
		if err := c.Bind(req); err != nil || req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}

		otp, err := us.RequestOTP(c.Request().Context(), req.Email)
		if err != nil {
			return errorJSON(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{"otp": otp})
	}
}

func verifyOTPHandler(us *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(otpVerifyRequest)
		if err := c.Bind(req); err != nil || req.Email == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}

		user, err := us.VerifyOTP(c.Request().Context(), middleware.CurrentUser(c), req.Email, req.OTP)
		if err != nil {
			return errorJSON(c, err)
		}

		return c.JSON(http.StatusOK, user)
	}
}

func registerUserRoutes(e *echo.Echo, us *services.UserService, authGuard echo.MiddlewareFunc) {
	g := e.Group("/users")

	// public
	g.POST("/sign-up", signUpHandler(us))
	g.POST("/log-in", logInHandler(us))

	// authenticated
	email := g.Group("/email")
	email.Use(authGuard)
	email.POST("/otp", requestOTPHandler(us))
	email.POST("/otp/verify", verifyOTPHandler(us))
}
