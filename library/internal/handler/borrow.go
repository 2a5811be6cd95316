package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
)

type borrowStatusResponse struct {
	Status *model.BorrowStatus `json:"status"`
}

type checkInRequest struct {
	UserID int64 `json:"userId" validate:"required,min=1"`
	BookID int64 `json:"bookId" validate:"required,min=1"`
}

func (h *Handler) BorrowStatus(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	st, err := h.librarySvc.BorrowStatus(c.Request().Context(), actor, bookID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, borrowStatusResponse{Status: st})
}

// RequestBorrow godoc
// @Summary Ask to borrow a book
// @Tags borrows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "book id"
// @Param body body model.CreateBorrowRequest true "expected return date"
// @Success 201 {object} model.BorrowRequest
// @Failure 409 {object} echo.HTTPError
// @Router /books/{id}/borrow [post]
func (h *Handler) RequestBorrow(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.CreateBorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	br, err := h.librarySvc.RequestBorrow(c.Request().Context(), actor, bookID, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, br)
}

func (h *Handler) ReturnBook(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	bookID, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.ReturnBook(c.Request().Context(), actor, bookID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CancelRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.CancelRequest(c.Request().Context(), actor, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ApproveRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	br, err := h.librarySvc.ApproveRequest(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) RejectRequest(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.RejectBorrowRequest
	if c.Request().ContentLength != 0 {
		if err := bindValid(c, &req); err != nil {
			return err
		}
	}
	br, err := h.librarySvc.RejectRequest(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, br)
}

func (h *Handler) MyRequests(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	items, err := h.librarySvc.MyRequests(c.Request().Context(), actor)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PendingRequests(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	items, err := h.librarySvc.PendingRequests(c.Request().Context(), actor)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) MyBooks(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	items, err := h.librarySvc.MyBooks(c.Request().Context(), actor)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ActiveBorrows(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var f model.ActiveBorrowFilter
	if err := bindValid(c, &f); err != nil {
		return err
	}
	list, err := h.librarySvc.ActiveBorrows(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) CheckIn(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req checkInRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	if err := h.librarySvc.CheckIn(c.Request().Context(), actor, req.UserID, req.BookID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
