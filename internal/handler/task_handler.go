package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
	"taskboard/internal/service"
)

// TaskHandler handles task endpoints.
type TaskHandler struct {
	taskService   service.TaskService
	columnService service.ColumnService
	userService   service.UserService
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(taskService service.TaskService, columnService service.ColumnService, userService service.UserService) *TaskHandler {
	return &TaskHandler{taskService: taskService, columnService: columnService, userService: userService}
}

// CreateTaskRequest represents a task creation request. Priority defaults to
// medium when omitted; the assignee is optional.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ColumnID    uint   `json:"column_id" validate:"required"`
	AssigneeID  *uint  `json:"assignee_id"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// UpdateTaskRequest represents a partial task update. Fields that are present
// but empty fail validation.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	ColumnID    *uint   `json:"column_id"`
	AssigneeID  *uint   `json:"assignee_id"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// GetTask godoc
// @Summary Get a task by id
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /task/{id} [get]
func (h *TaskHandler) GetTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "task id not provided")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if task == nil {
		return fail(c, http.StatusNotFound, "task not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"task":   task,
	})
}

// ListTasks godoc
// @Summary List tasks with assignee and column
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	if len(tasks) == 0 {
		return fail(c, http.StatusNotFound, "no tasks found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"tasks":  tasks,
	})
}

// ListTasksByColumn godoc
// @Summary List tasks in a column
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param columnId path int true "Column ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/column/{columnId} [get]
func (h *TaskHandler) ListTasksByColumn(c echo.Context) error {
	columnID, err := paramID(c, "columnId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "column id not provided")
	}

	tasks, err := h.taskService.ListTasksByColumn(c.Request().Context(), columnID)
	if err != nil {
		return serviceError(c, err)
	}
	if len(tasks) == 0 {
		return fail(c, http.StatusNotFound, "no tasks found for this column")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"tasks":  tasks,
	})
}

// ListTasksByBoard godoc
// @Summary List tasks across all columns of a board
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param boardId path int true "Board ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/board/{boardId} [get]
func (h *TaskHandler) ListTasksByBoard(c echo.Context) error {
	boardID, err := paramID(c, "boardId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id not provided")
	}

	tasks, err := h.taskService.ListTasksByBoard(c.Request().Context(), boardID)
	if err != nil {
		return serviceError(c, err)
	}
	if len(tasks) == 0 {
		return fail(c, http.StatusNotFound, "no tasks found for this board")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"tasks":  tasks,
	})
}

// CreateTask godoc
// @Summary Create a task in a column
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /task [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	column, err := h.columnService.GetColumn(ctx, req.ColumnID)
	if err != nil {
		return serviceError(c, err)
	}
	if column == nil {
		return fail(c, http.StatusNotFound, "column not found")
	}

	if req.AssigneeID != nil {
		assignee, err := h.userService.GetUser(ctx, *req.AssigneeID)
		if err != nil {
			return serviceError(c, err)
		}
		if assignee == nil {
			return fail(c, http.StatusNotFound, "assignee not found")
		}
	}

	task, err := h.taskService.CreateTask(ctx, &model.Task{
		Title:       req.Title,
		Description: req.Description,
		ColumnID:    req.ColumnID,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status": "success",
		"task":   task,
	})
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /task/{id} [put]
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "task id not provided")
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if req.ColumnID != nil {
		column, err := h.columnService.GetColumn(ctx, *req.ColumnID)
		if err != nil {
			return serviceError(c, err)
		}
		if column == nil {
			return fail(c, http.StatusNotFound, "column not found")
		}
	}
	if req.AssigneeID != nil {
		assignee, err := h.userService.GetUser(ctx, *req.AssigneeID)
		if err != nil {
			return serviceError(c, err)
		}
		if assignee == nil {
			return fail(c, http.StatusNotFound, "assignee not found")
		}
	}

	task, err := h.taskService.UpdateTask(ctx, id, service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		ColumnID:    req.ColumnID,
		AssigneeID:  req.AssigneeID,
		Priority:    req.Priority,
	})
	if err != nil {
		return serviceError(c, err)
	}
	if task == nil {
		return fail(c, http.StatusNotFound, "task not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"task":   task,
	})
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /task/{id} [delete]
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "task id not provided")
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if task == nil {
		return fail(c, http.StatusNotFound, "task not found")
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "task deleted successfully",
	})
}
