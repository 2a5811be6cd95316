package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	_ "github.com/Astemirdum/school-library/library/swagger"
	"github.com/Astemirdum/school-library/pkg/auth"
	md "github.com/Astemirdum/school-library/pkg/middleware"
	"github.com/Astemirdum/school-library/pkg/validate"
)

type Handler struct {
	librarySvc LibraryService
	tokens     md.TokenParser
	log        *zap.Logger

	staticPrefix string
	staticRoot   string
}

type Option func(*Handler)

// WithStatic serves files of the local blob store under prefix.
func WithStatic(prefix, root string) Option {
	return func(h *Handler) {
		h.staticPrefix = prefix
		h.staticRoot = root
	}
}

func New(librarySvc LibraryService, tokens md.TokenParser, log *zap.Logger, opts ...Option) *Handler {
	h := &Handler{
		librarySvc: librarySvc,
		tokens:     tokens,
		log:        log.Named("handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// @title School Library API
// @version 1.0
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.staticPrefix != "" {
		base.Static(h.staticPrefix, h.staticRoot)
	}

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.POST("/authorize", h.Authorize)

	authed := api.Group("", md.JwtAuthentication(h.tokens))
	authed.POST("/password", h.ChangePassword)

	fresh := authed.Group("", md.PasswordFresh)
	fresh.GET("/me", h.Me)
	fresh.GET("/dashboard", h.Dashboard)

	fresh.GET("/books", h.ListBooks)
	fresh.POST("/books", h.CreateBook)
	fresh.POST("/books/bulk-delete", h.DeleteBooks)
	fresh.POST("/books/import", h.ImportBooks)
	fresh.GET("/books/import/template", h.BooksTemplate)
	fresh.GET("/books/:id", h.GetBook)
	fresh.PUT("/books/:id", h.UpdateBook)
	fresh.DELETE("/books/:id", h.DeleteBook)
	fresh.GET("/books/:id/borrow-status", h.BorrowStatus)
	fresh.POST("/books/:id/borrow", h.RequestBorrow)
	fresh.POST("/books/:id/return", h.ReturnBook)

	fresh.GET("/borrow-requests/mine", h.MyRequests)
	fresh.GET("/borrow-requests/pending", h.PendingRequests)
	fresh.DELETE("/borrow-requests/:id", h.CancelRequest)
	fresh.POST("/borrow-requests/:id/approve", h.ApproveRequest)
	fresh.POST("/borrow-requests/:id/reject", h.RejectRequest)

	fresh.GET("/borrows/mine", h.MyBooks)
	fresh.GET("/borrows/active", h.ActiveBorrows)
	fresh.POST("/borrows/check-in", h.CheckIn)

	fresh.GET("/users", h.ListUsers)
	fresh.POST("/users", h.CreateUser)
	fresh.POST("/users/bulk-delete", h.DeleteUsers)
	fresh.POST("/users/import", h.ImportUsers)
	fresh.GET("/users/import/template", h.UsersTemplate)
	fresh.GET("/users/:id", h.GetUser)
	fresh.PUT("/users/:id", h.UpdateUser)
	fresh.DELETE("/users/:id", h.DeleteUser)

	fresh.GET("/learning-files", h.ListLearningFiles)
	fresh.POST("/learning-files", h.UploadLearningFile)
	fresh.PUT("/learning-files/:id", h.UpdateLearningFile)
	fresh.DELETE("/learning-files/:id", h.DeleteLearningFile)
	fresh.GET("/learning-files/:id/download", h.DownloadLearningFile)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func actorFrom(c echo.Context) (model.Actor, error) {
	id, err := auth.GetIdentity(c.Request().Context())
	if err != nil {
		return model.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return model.Actor{ID: id.UserID, Role: model.Role(id.Role)}, nil
}

func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return v, nil
}

func bindValid(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// httpError maps service errors onto HTTP statuses. Unmapped errors are
// logged and answered with a bare 500.
func (h *Handler) httpError(err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateRequest),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrOutOfRange):
		status = http.StatusUnprocessableEntity
	default:
		h.log.Error("internal error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return echo.NewHTTPError(status, err.Error())
}

type deletedResponse struct {
	Deleted int64 `json:"deleted"`
}
