package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/model"
	"taskboard/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
	taskService    service.TaskService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService, taskService service.TaskService) *CommentHandler {
	return &CommentHandler{commentService: commentService, taskService: taskService}
}

// CreateCommentRequest represents a comment creation request. The author is
// the authenticated user, never a body field.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
	TaskID  uint   `json:"task_id" validate:"required"`
}

// UpdateCommentRequest replaces a comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CreateComment godoc
// @Summary Comment on a task as the authenticated user
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateCommentRequest true "Comment data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comment [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	claims := auth.ClaimsFromContext(c)
	if claims == nil {
		return fail(c, http.StatusUnauthorized, "invalid token")
	}

	ctx := c.Request().Context()
	task, err := h.taskService.GetTask(ctx, req.TaskID)
	if err != nil {
		return serviceError(c, err)
	}
	if task == nil {
		return fail(c, http.StatusNotFound, "task not found")
	}

	comment, err := h.commentService.CreateComment(ctx, &model.Comment{
		Content: req.Content,
		TaskID:  req.TaskID,
		UserID:  claims.UserID,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status":  "success",
		"comment": comment,
	})
}

// ListCommentsByTask godoc
// @Summary List a task's comments, newest first
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param taskId path int true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comments/{taskId} [get]
func (h *CommentHandler) ListCommentsByTask(c echo.Context) error {
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "task id not provided")
	}

	comments, err := h.commentService.ListCommentsByTask(c.Request().Context(), taskID)
	if err != nil {
		return serviceError(c, err)
	}
	if len(comments) == 0 {
		return fail(c, http.StatusNotFound, "no comments found for this task")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "success",
		"comments": comments,
	})
}

// GetComment godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comment/{id} [get]
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "comment id not provided")
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if comment == nil {
		return fail(c, http.StatusNotFound, "comment not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"comment": comment,
	})
}

// UpdateComment godoc
// @Summary Update a comment's content
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body UpdateCommentRequest true "New content"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comment/{id} [put]
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "comment id not provided")
	}

	var req UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	comment, err := h.commentService.UpdateComment(c.Request().Context(), id, req.Content)
	if err != nil {
		return serviceError(c, err)
	}
	if comment == nil {
		return fail(c, http.StatusNotFound, "comment not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "comment updated successfully",
		"comment": comment,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /comment/{id} [delete]
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "comment id not provided")
	}

	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if comment == nil {
		return fail(c, http.StatusNotFound, "comment not found")
	}

	if err := h.commentService.DeleteComment(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "comment deleted successfully",
	})
}

// ListComments godoc
// @Summary List all comments with author and task
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /comments [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentService.ListComments(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "success",
		"comments": comments,
	})
}
