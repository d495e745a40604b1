package borrow

import (
	"log/slog"
	"net/http"

	"libraryapi/app/echoServer/jwtx"
	borrowsvc "libraryapi/service/borrow"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc borrowsvc.Service
	Log *slog.Logger
}

// Borrow a book
// @Summary      Borrow book
// @Tags         books
// @Produce      json
// @Param        book_id  path  string  true  "Book id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "book already borrowed"
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/books/borrow/{book_id} [post]
func (h *Controller) Borrow(c echo.Context) error {
	u, err := jwtx.UserFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	title, err := h.Svc.Borrow(c.Request().Context(), c.Param("book_id"), u.Email)
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrBookNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		case borrowsvc.ErrAlreadyBorrowed:
			return echo.NewHTTPError(http.StatusBadRequest, "Book already borrowed")
		default:
			h.Log.Error("borrow error", "err", err, "book_id", c.Param("book_id"))
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": title + " borrowed successfully",
	})
}

// Return a book
// @Summary      Return book
// @Tags         books
// @Produce      json
// @Param        book_id  path  string  true  "Book id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "not the borrower / not borrowed"
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/books/return/{book_id} [post]
func (h *Controller) Return(c echo.Context) error {
	u, err := jwtx.UserFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	title, err := h.Svc.Return(c.Request().Context(), c.Param("book_id"), u.Email)
	if err != nil {
		switch borrowsvc.Code(err) {
		case borrowsvc.ErrBookNotFound:
			return echo.NewHTTPError(http.StatusNotFound, "Book not found")
		case borrowsvc.ErrCannotReturn:
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot return this book")
		default:
			h.Log.Error("return error", "err", err, "book_id", c.Param("book_id"))
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": title + " returned successfully",
	})
}
