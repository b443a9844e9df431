package main

import (
	"net/http"
	"strconv"

	"TaskTrackerAPI/internal/middleware"
	"TaskTrackerAPI/internal/model"
	"TaskTrackerAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type createTodoRequest struct {
	Contents string `json:"contents"`
	IsDone   bool   `json:"is_done"`
}

type updateTodoRequest struct {
	IsDone bool `json:"is_done"`
}

type todoListResponse struct {
	Todos []model.Todo `json:"todos"`
}

func registerTodoRoutes(e *echo.Echo, ts *services.TodoService, authGuard echo.MiddlewareFunc) {
	g := e.Group("/todos")
	g.Use(authGuard)

	// LIST, optionally ?order=DESC
	g.GET("", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		todos, err := ts.ListOwned(c.Request().Context(), user, c.QueryParam("order"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, todoListResponse{Todos: todos})
	})

	// GET one
	g.GET("/:todo_id", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		todoID, _ := strconv.ParseInt(c.Param("todo_id"), 10, 64)
		todo, err := ts.GetOwned(c.Request().Context(), user, todoID)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, todo)
	})

	// CREATE
	g.POST("", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		req := new(createTodoRequest)
		if err := c.Bind(req); err != nil || req.Contents == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}
		todo, err := ts.Create(c.Request().Context(), user, req.Contents, req.IsDone)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusCreated, todo)
	})

	// UPDATE completion flag
	g.PATCH("/:todo_id", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		todoID, _ := strconv.ParseInt(c.Param("todo_id"), 10, 64)
		req := new(updateTodoRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid request"})
		}
		todo, err := ts.SetDone(c.Request().Context(), user, todoID, req.IsDone)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(http.StatusOK, todo)
	})

	// DELETE
	g.DELETE("/:todo_id", func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		todoID, _ := strconv.ParseInt(c.Param("todo_id"), 10, 64)
		if err := ts.Delete(c.Request().Context(), user, todoID); err != nil {
			return errorJSON(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
