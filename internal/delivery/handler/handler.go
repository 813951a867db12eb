package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/domain"
)

type Handler struct {
	authService interfaces.AuthService
	taskService interfaces.TaskService
}

func NewHandler(authService interfaces.AuthService, taskService interfaces.TaskService) *Handler {
	return &Handler{
		authService: authService,
		taskService: taskService,
	}
}

// credentialsRequest uses pointers so a missing key is distinguishable from
// an empty value.
type credentialsRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// readCredentials walks the shared auth request checks: body present, JSON
// well-formed, both keys present. On failure the response has already been
// written and ok is false.
func readCredentials(c echo.Context) (creds credentialsRequest, ok bool, err error) {
	body, readErr := io.ReadAll(c.Request().Body)
	if readErr != nil || len(strings.TrimSpace(string(body))) == 0 {
		return creds, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "No data provided"})
	}

	if jsonErr := json.Unmarshal(body, &creds); jsonErr != nil {
		return creds, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON format"})
	}

	if creds.Username == nil || creds.Password == nil {
		return creds, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	return creds, true, nil
}

func (h *Handler) Signup(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": "Method not allowed. Use POST with JSON data"})
	}

	creds, ok, err := readCredentials(c)
	if !ok {
		return err
	}

	result, err := h.authService.Signup(&command.SignupCommand{
		Username: *creds.Username,
		Password: *creds.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username taken. choose another username"})
		}
		return h.unexpectedError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": result.Token})
}

func (h *Handler) Login(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.JSON(http.StatusMethodNotAllowed, echo.Map{"error": "Method not allowed. Use POST with JSON data"})
	}

	creds, ok, err := readCredentials(c)
	if !ok {
		return err
	}

	result, err := h.authService.Login(&command.LoginCommand{
		Username: *creds.Username,
		Password: *creds.Password,
	})
	if err != nil {
		// 400, not 401, and one message for every credential failure:
		// the response must not reveal whether the username exists.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unable to login. check username and password"})
		}
		return h.unexpectedError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": result.Token})
}

type taskRequest struct {
	Title *string `json:"title"`
	Memo  string  `json:"memo"`
}

func readTaskRequest(c echo.Context) (req taskRequest, ok bool, err error) {
	body, readErr := io.ReadAll(c.Request().Body)
	if readErr != nil || len(strings.TrimSpace(string(body))) == 0 {
		return req, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "No data provided"})
	}

	if jsonErr := json.Unmarshal(body, &req); jsonErr != nil {
		return req, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid JSON format"})
	}

	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return req, false, c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	return req, true, nil
}

func (h *Handler) ListTasks(c echo.Context) error {
	result, err := h.taskService.ListTasks(principal(c))
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) CreateTask(c echo.Context) error {
	req, ok, err := readTaskRequest(c)
	if !ok {
		return err
	}

	result, err := h.taskService.CreateTask(&command.CreateTaskCommand{
		UserId: principal(c),
		Title:  *req.Title,
		Memo:   req.Memo,
	})
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(http.StatusCreated, result.Result)
}

func (h *Handler) GetTask(c echo.Context) error {
	taskId, ok := taskIdParam(c)
	if !ok {
		return taskNotFound(c)
	}

	result, err := h.taskService.GetTask(principal(c), taskId)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	taskId, ok := taskIdParam(c)
	if !ok {
		return taskNotFound(c)
	}

	req, reqOk, err := readTaskRequest(c)
	if !reqOk {
		return err
	}

	result, err := h.taskService.UpdateTask(&command.UpdateTaskCommand{
		UserId: principal(c),
		TaskId: taskId,
		Title:  *req.Title,
		Memo:   req.Memo,
	})
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

// ToggleTask flips the stored completed flag. Any body, including an
// explicit "completed" value, is ignored.
func (h *Handler) ToggleTask(c echo.Context) error {
	taskId, ok := taskIdParam(c)
	if !ok {
		return taskNotFound(c)
	}

	result, err := h.taskService.ToggleTask(principal(c), taskId)
	if err != nil {
		return h.taskError(c, err)
	}

	return c.JSON(http.StatusOK, result.Result)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	taskId, ok := taskIdParam(c)
	if !ok {
		return taskNotFound(c)
	}

	if err := h.taskService.DeleteTask(principal(c), taskId); err != nil {
		return h.taskError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// taskIdParam parses the :id path segment. A malformed id behaves exactly
// like an unknown one so the URL space leaks nothing.
func taskIdParam(c echo.Context) (uuid.UUID, bool) {
	taskId, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return taskId, true
}

func taskNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": "task not found"})
}

func (h *Handler) taskError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrTaskNotFound) {
		return taskNotFound(c)
	}
	return h.unexpectedError(c, err)
}

// unexpectedError is the outermost catch-all: log server-side, then answer
// 400 with the underlying message.
func (h *Handler) unexpectedError(c echo.Context, err error) error {
	c.Logger().Errorf("unexpected error handling %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
}
