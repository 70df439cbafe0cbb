package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
	"taskboard/internal/service"
)

// ColumnHandler handles column endpoints.
type ColumnHandler struct {
	columnService service.ColumnService
	boardService  service.BoardService
}

// NewColumnHandler creates a new column handler.
func NewColumnHandler(columnService service.ColumnService, boardService service.BoardService) *ColumnHandler {
	return &ColumnHandler{columnService: columnService, boardService: boardService}
}

// CreateColumnRequest represents a column creation request.
type CreateColumnRequest struct {
	Name       string `json:"name" validate:"required"`
	BoardID    uint   `json:"board_id" validate:"required"`
	OrderIndex int    `json:"order_index"`
}

// UpdateColumnRequest represents a partial column update.
type UpdateColumnRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1"`
	OrderIndex *int    `json:"order_index"`
}

// ListColumns godoc
// @Summary List columns
// @Tags columns
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /columns [get]
func (h *ColumnHandler) ListColumns(c echo.Context) error {
	columns, err := h.columnService.ListColumns(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	if len(columns) == 0 {
		return fail(c, http.StatusNotFound, "no columns found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"columns": columns,
	})
}

// GetColumn godoc
// @Summary Get a column by id
// @Tags columns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Column ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /column/{id} [get]
func (h *ColumnHandler) GetColumn(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "column id not provided")
	}

	column, err := h.columnService.GetColumn(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if column == nil {
		return fail(c, http.StatusNotFound, "column not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "success",
		"column": column,
	})
}

// CreateColumn godoc
// @Summary Create a column on a board
// @Tags columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateColumnRequest true "Column data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /column [post]
func (h *ColumnHandler) CreateColumn(c echo.Context) error {
	var req CreateColumnRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	board, err := h.boardService.GetBoard(ctx, req.BoardID)
	if err != nil {
		return serviceError(c, err)
	}
	if board == nil {
		return fail(c, http.StatusNotFound, "board not found")
	}

	column, err := h.columnService.CreateColumn(ctx, &model.Column{
		Name:       req.Name,
		BoardID:    req.BoardID,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"status": "success",
		"column": column,
	})
}

// UpdateColumn godoc
// @Summary Update a column
// @Tags columns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Column ID"
// @Param request body UpdateColumnRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /column/{id} [put]
func (h *ColumnHandler) UpdateColumn(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "column id not provided")
	}

	var req UpdateColumnRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	column, err := h.columnService.UpdateColumn(c.Request().Context(), id, service.ColumnUpdate{
		Name:       req.Name,
		OrderIndex: req.OrderIndex,
	})
	if err != nil {
		return serviceError(c, err)
	}
	if column == nil {
		return fail(c, http.StatusNotFound, "column not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "column updated successfully",
		"column":  column,
	})
}

// DeleteColumn godoc
// @Summary Delete a column
// @Tags columns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Column ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /column/{id} [delete]
func (h *ColumnHandler) DeleteColumn(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "column id not provided")
	}

	column, err := h.columnService.GetColumn(c.Request().Context(), id)
	if err != nil {
		return serviceError(c, err)
	}
	if column == nil {
		return fail(c, http.StatusNotFound, "column not found")
	}

	if err := h.columnService.DeleteColumn(c.Request().Context(), id); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "success",
		"message": "column deleted successfully",
	})
}
