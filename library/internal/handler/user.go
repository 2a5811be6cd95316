package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
)

func (h *Handler) ListUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var f model.UserFilter
	if err := bindValid(c, &f); err != nil {
		return err
	}
	list, err := h.librarySvc.ListUsers(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *Handler) GetUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	user, err := h.librarySvc.GetUser(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.CreateUserRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.CreateUser(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser godoc
// @Summary Update a user; the email is rebuilt from prefix and role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param body body model.UserUpdate true "fields"
// @Success 200 {object} model.User
// @Failure 409 {object} echo.HTTPError
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.UserUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	user, err := h.librarySvc.UpdateUser(c.Request().Context(), actor, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteUser(c.Request().Context(), actor, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.BulkDeleteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	n, err := h.librarySvc.DeleteUsers(c.Request().Context(), actor, req.IDs)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

// ImportUsers godoc
// @Summary Import users; generated emails and temporary passwords are returned
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "sheet"
// @Success 200 {object} model.ImportResult
// @Router /users/import [post]
func (h *Handler) ImportUsers(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	res, err := h.librarySvc.ImportUsers(c.Request().Context(), actor, f, fh.Filename)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
