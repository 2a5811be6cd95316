package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/service"
)

func (h *Handler) ListLearningFiles(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var f model.LearningFileFilter
	if err := bindValid(c, &f); err != nil {
		return err
	}
	files, err := h.librarySvc.ListLearningFiles(c.Request().Context(), actor, f)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, files)
}

// UploadLearningFile godoc
// @Summary Upload a learning file for grades 7-12
// @Tags learning-files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "title"
// @Param description formData string false "description"
// @Param gradeLevel formData int true "grade"
// @Param file formData file true "file"
// @Success 201 {object} model.LearningFile
// @Router /learning-files [post]
func (h *Handler) UploadLearningFile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req model.UploadLearningFile
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > service.MaxLearningFileSize {
		return echo.NewHTTPError(http.StatusBadRequest, "file exceeds 50MB")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()
	if req.Data, err = io.ReadAll(f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	req.FileName = fh.Filename
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	file, err := h.librarySvc.UploadLearningFile(c.Request().Context(), actor, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, file)
}

func (h *Handler) DownloadLearningFile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	dl, err := h.librarySvc.DownloadLearningFile(c.Request().Context(), actor, id)
	if err != nil {
		return h.httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+dl.FileName+`"`)
	return c.Redirect(http.StatusFound, dl.URL)
}

func (h *Handler) UpdateLearningFile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	var req model.LearningFileUpdate
	if err := bindValid(c, &req); err != nil {
		return err
	}
	file, err := h.librarySvc.UpdateLearningFile(c.Request().Context(), actor, id, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, file)
}

func (h *Handler) DeleteLearningFile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteLearningFile(c.Request().Context(), actor, id); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
