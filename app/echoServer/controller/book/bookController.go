package book

import (
	"log/slog"
	"net/http"

	"libraryapi/model"
	booksvc "libraryapi/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// List catalog
// @Summary      List books
// @Tags         books
// @Produce      json
// @Success      200  {array}  model.Book
// @Router       /api/books [get]
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, rows)
}

// Create a book (admin)
// @Summary      Add book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body  CreateBookReq  true  "Book payload"
// @Success      200  {object}  model.Book
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/books [post]
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := h.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "validation error")
	}

	b, err := h.Svc.Create(c.Request().Context(), model.Book{
		BookID:       req.BookID,
		Title:        req.Title,
		Author:       req.Author,
		Category:     req.Category,
		Description:  req.Description,
		BorrowPolicy: model.BorrowPolicy(req.BorrowPolicy),
		ExpiryHours:  req.ExpiryHours,
	})
	if err != nil {
		h.Log.Error("book create error", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, b)
}
