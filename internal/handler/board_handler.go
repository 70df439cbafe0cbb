package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/auth"
	"taskboard/internal/service"
)

// BoardHandler handles board and collaborator endpoints.
type BoardHandler struct {
	boardService service.BoardService
	userService  service.UserService
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(boardService service.BoardService, userService service.UserService) *BoardHandler {
	return &BoardHandler{boardService: boardService, userService: userService}
}

// CreateBoardRequest represents a board creation request. The owner is the
// authenticated user, never a body field.
type CreateBoardRequest struct {
	Title string `json:"title" validate:"required"`
}

// UpdateBoardRequest represents a board rename.
type UpdateBoardRequest struct {
	Title string `json:"title" validate:"required"`
}

// AddCollaboratorRequest links a user to a board.
type AddCollaboratorRequest struct {
	BoardID uint `json:"boardId" validate:"required"`
	UserID  uint `json:"userId" validate:"required"`
}

// ListBoards godoc
// @Summary List boards with owner and collaborators
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /boards [get]
func (h *BoardHandler) ListBoards(c echo.Context) error {
	boards, err := h.boardService.ListBoards(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	if len(boards) == 0 {
		return fail(c, http.StatusNotFound, "no boards found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"boards": boards,
	})
}

// GetBoard godoc
// @Summary Get a board by id
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /board/{id} [get]
func (h *BoardHandler) GetBoard(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id not provided")
	}

	board, err := h.boardService.GetBoard(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"board":  board,
	})
}

// CreateBoard godoc
// @Summary Create a board owned by the authenticated user
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBoardRequest true "Board data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /board [post]
func (h *BoardHandler) CreateBoard(c echo.Context) error {
	var req CreateBoardRequest
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

	board, err := h.boardService.CreateBoard(c.Request().Context(), req.Title, claims.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status": "success",
		"board":  board,
	})
}

// UpdateBoard godoc
// @Summary Rename a board
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board ID"
// @Param request body UpdateBoardRequest true "New title"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /board/{id} [put]
func (h *BoardHandler) UpdateBoard(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id not provided")
	}

	var req UpdateBoardRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	board, err := h.boardService.UpdateBoard(c.Request().Context(), id, req.Title)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "board updated successfully",
		"board":   board,
	})
}

// DeleteBoard godoc
// @Summary Delete a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /board/{id} [delete]
func (h *BoardHandler) DeleteBoard(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id not provided")
	}

	board, err := h.boardService.GetBoard(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	if err := h.boardService.DeleteBoard(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "board deleted successfully",
	})
}

// AddCollaborator godoc
// @Summary Link a user to a board as collaborator
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCollaboratorRequest true "Board and user ids"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /collaborator [post]
func (h *BoardHandler) AddCollaborator(c echo.Context) error {
	var req AddCollaboratorRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, "board id or user id not provided")
	}

	ctx := c.Request().Context()
	board, err := h.boardService.GetBoard(ctx, req.BoardID)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	user, err := h.userService.GetUser(ctx, req.UserID)
	if err != nil {
		return serviceError(c, err)
	}
	if user == nil {
		return fail(c, http.StatusNotFound, "user not found")
	}

	link, err := h.boardService.AddCollaborator(ctx, req.BoardID, req.UserID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status":    "success",
		"boardUser": link,
	})
}

// RemoveCollaborator godoc
// @Summary Unlink a collaborator from a board
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardId path int true "Board ID"
// @Param userId path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /board/{boardId}/collaborator/{userId} [delete]
func (h *BoardHandler) RemoveCollaborator(c echo.Context) error {
	boardID, err := paramID(c, "boardId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id or user id not provided")
	}
	userID, err := paramID(c, "userId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "board id or user id not provided")
	}

	ctx := c.Request().Context()
	board, err := h.boardService.GetBoard(ctx, boardID)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		return serviceError(c, err)
	}
	if user == nil {
		return fail(c, http.StatusNotFound, "user not found")
	}

	if err := h.boardService.RemoveCollaborator(ctx, boardID, userID); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "collaborator removed from board successfully",
	})
}
