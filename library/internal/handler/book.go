package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/importer"
	"github.com/Astemirdum/school-library/library/internal/model"
)

// ListBooks godoc
// @Summary List the catalogue
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param search query string false "title, author or code"
// @Param grade query int false "grade level"
// @Param subject query string false "subject"
// @Param page query int false "page"
// @Param size query int false "page size"
// @Success 200 {object} model.ListBooks
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	f := model.BookFilter{
		Search:  strings.TrimSpace(c.QueryParam("search")),
		Subject: strings.TrimSpace(c.QueryParam("subject")),
	}
	if f.Grade, err = intQuery(c, "grade"); err != nil {
		return err
	}
	if f.Paging.Page, err = intQuery(c, "page"); err != nil {
		return err
	}
	if f.Paging.PageSize, err = intQuery(c, "size"); err != nil {
		return err
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetBook(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	book, err := h.librarySvc.GetBook(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// CreateBook godoc
// @Summary Add a book; the code is generated from grade and subject
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateBookRequest true "book"
// @Success 201 {object} model.Book
// @Failure 400 {object} echo.HTTPError
// @Failure 403 {object} echo.HTTPError
// @Failure 422 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.BookUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), actor, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) DeleteBook(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteBook(c.Request().Context(), actor, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteBooks(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.BulkDeleteRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	n, err := h.librarySvc.DeleteBooks(c.Request().Context(), actor, req.IDs)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, deletedResponse{Deleted: n})
}

// ImportBooks godoc
// @Summary Import books from a csv or xlsx sheet
// @Tags books
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "sheet"
// @Success 200 {object} model.ImportResult
// @Router /books/import [post]
func (h *Handler) ImportBooks(c echo.Context) error {
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

	res, err := h.librarySvc.ImportBooks(c.Request().Context(), actor, f, fh.Filename)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) BooksTemplate(c echo.Context) error {
	return h.template(c, importer.KindBooks)
}

func (h *Handler) UsersTemplate(c echo.Context) error {
	return h.template(c, importer.KindUsers)
}

func (h *Handler) template(c echo.Context, kind importer.Kind) error {
	body, err := importer.Template(kind)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+string(kind)+`_template.csv"`)
	return c.Blob(http.StatusOK, "text/csv", body)
}
