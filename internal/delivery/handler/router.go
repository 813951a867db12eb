package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"task-service/internal/application/interfaces"
)

// NewRouter builds the echo instance with all routes attached. Signup and
// login are registered for every method so non-POST requests get the
// method-not-allowed body instead of echo's default.
func NewRouter(h *Handler, tokenService interfaces.TokenService) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Any("/signup", h.Signup)
	e.Any("/login", h.Login)

	tasks := e.Group("/tasks", AuthGate(tokenService))
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PATCH("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)
	tasks.PATCH("/:id/toggle", h.ToggleTask)

	return e
}
