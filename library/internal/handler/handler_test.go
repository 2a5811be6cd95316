package handler_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/handler"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/service"
	"github.com/Astemirdum/school-library/pkg/auth"

	service_mocks "github.com/Astemirdum/school-library/library/internal/handler/mocks"
)

var issuer = auth.NewIssuer(auth.Config{Secret: "test-secret", TokenTTL: time.Hour})

var (
	librarian = model.Actor{ID: 1, Role: model.RoleLibrarian}
	student   = model.Actor{ID: 2, Role: model.RoleStudent}
)

func bearer(t *testing.T, actor model.Actor, mustReset bool) string {
	t.Helper()
	token, _, err := issuer.Issue(auth.Identity{UserID: actor.ID, Role: string(actor.Role), MustReset: mustReset})
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(t *testing.T, svc handler.LibraryService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	log := zap.NewExample().Named("test")
	r := handler.New(svc, issuer, log).NewRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateBook(t *testing.T) {
	t.Parallel()
	type input struct {
		actor model.Actor
		body  string
		req   model.CreateBookRequest
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService, inp input) {
				r.EXPECT().
					CreateBook(gomock.Any(), inp.actor, inp.req).
					Return(model.Book{ID: 5, BookCode: "07MAT00001", Title: "Algebra", GradeLevel: 7}, nil)
			},
			input: input{
				actor: librarian,
				body:  `{"title":"algebra","author":"smith","subject":"math","gradeLevel":7}`,
				req:   model.CreateBookRequest{Title: "algebra", Author: "smith", Subject: "math", GradeLevel: 7},
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":5,"bookCode":"07MAT00001","title":"Algebra","author":"","subject":"","description":"","gradeLevel":7,"competency":"","type":"","filePath":"","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name:         "err. blank title",
			mockBehavior: func(r *service_mocks.MockLibraryService, inp input) {},
			input: input{
				actor: librarian,
				body:  `{"title":"  ","author":"smith","subject":"math","gradeLevel":7}`,
			},
			response: response{expectedCode: http.StatusBadRequest},
		},
		{
			name:         "err. grade out of range",
			mockBehavior: func(r *service_mocks.MockLibraryService, inp input) {},
			input: input{
				actor: librarian,
				body:  `{"title":"algebra","author":"smith","subject":"math","gradeLevel":13}`,
			},
			response: response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. forbidden",
			mockBehavior: func(r *service_mocks.MockLibraryService, inp input) {
				r.EXPECT().
					CreateBook(gomock.Any(), inp.actor, inp.req).
					Return(model.Book{}, errs.ErrForbidden)
			},
			input: input{
				actor: student,
				body:  `{"title":"algebra","author":"smith","subject":"math","gradeLevel":7}`,
				req:   model.CreateBookRequest{Title: "algebra", Author: "smith", Subject: "math", GradeLevel: 7},
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
		{
			name: "err. code sequence exhausted",
			mockBehavior: func(r *service_mocks.MockLibraryService, inp input) {
				r.EXPECT().
					CreateBook(gomock.Any(), inp.actor, inp.req).
					Return(model.Book{}, errors.Wrap(errs.ErrOutOfRange, "07MAT"))
			},
			input: input{
				actor: librarian,
				body:  `{"title":"algebra","author":"smith","subject":"math","gradeLevel":7}`,
				req:   model.CreateBookRequest{Title: "algebra", Author: "smith", Subject: "math", GradeLevel: 7},
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"07MAT: book code sequence exhausted"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc, tt.input)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(tt.input.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", bearer(t, tt.input.actor, false))
			w := serve(t, svc, req)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_RequestBorrow(t *testing.T) {
	t.Parallel()
	due := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockLibraryService)

	var tests = []struct {
		name         string
		path         string
		body         string
		auth         bool
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			path: "/api/v1/books/3/borrow",
			body: `{"expectedReturnDate":"2026-10-25"}`,
			auth: true,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					RequestBorrow(gomock.Any(), student, int64(3), model.CreateBorrowRequest{ExpectedReturnDate: model.Date{Time: due}}).
					Return(model.BorrowRequest{ID: 11, UserID: student.ID, BookID: 3, Status: model.StatusPending, ExpectedReturnDate: due}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":11,"userId":2,"bookId":3,"borrowStatus":"pending","expectedReturnDate":"2026-10-25T00:00:00Z","approvedBy":null,"rejectReason":null,"createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. duplicate",
			path: "/api/v1/books/3/borrow",
			body: `{"expectedReturnDate":"2026-10-25"}`,
			auth: true,
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					RequestBorrow(gomock.Any(), student, int64(3), gomock.Any()).
					Return(model.BorrowRequest{}, errs.ErrDuplicateRequest)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"a pending request for this book already exists"}`,
			},
		},
		{
			name:         "err. bad id",
			path:         "/api/v1/books/abc/borrow",
			body:         `{"expectedReturnDate":"2026-10-25"}`,
			auth:         true,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
		{
			name:         "err. no token",
			path:         "/api/v1/books/3/borrow",
			body:         `{"expectedReturnDate":"2026-10-25"}`,
			mockBehavior: func(r *service_mocks.MockLibraryService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			tt.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.auth {
				req.Header.Set("Authorization", bearer(t, student, false))
			}
			w := serve(t, svc, req)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		err     error
		code    int
		message string
	}{
		{errs.ErrInvalidState, http.StatusConflict, errs.ErrInvalidState.Error()},
		{errs.ErrNotFound, http.StatusNotFound, errs.ErrNotFound.Error()},
		{errs.ErrForbidden, http.StatusForbidden, errs.ErrForbidden.Error()},
		{errors.Wrap(errs.ErrValidation, "reason"), http.StatusBadRequest, "reason: " + errs.ErrValidation.Error()},
		{errors.New(`db down: pq: relation "users" does not exist`), http.StatusInternalServerError, "Internal Server Error"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.err.Error(), func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			svc.EXPECT().ApproveRequest(gomock.Any(), librarian, int64(9)).Return(model.BorrowRequest{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/borrow-requests/9/approve", nil)
			req.Header.Set("Authorization", bearer(t, librarian, false))
			w := serve(t, svc, req)

			require.Equal(t, tt.code, w.Code)
			require.Equal(t, `{"message":"`+tt.message+`"}`, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_InternalErrorIsLogged(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().ApproveRequest(gomock.Any(), librarian, int64(9)).
		Return(model.BorrowRequest{}, errors.New("conn refused"))

	core, logs := observer.New(zap.ErrorLevel)
	r := handler.New(svc, issuer, zap.New(core)).NewRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/borrow-requests/9/approve", nil)
	req.Header.Set("Authorization", bearer(t, librarian, false))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "conn refused")
	entries := logs.FilterMessage("internal error").All()
	require.Len(t, entries, 1)
	require.Equal(t, "conn refused", entries[0].ContextMap()["error"])
}

func TestHandler_PasswordResetRequired(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
	req.Header.Set("Authorization", bearer(t, student, true))
	w := serve(t, svc, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, `{"message":"password reset required"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ChangePasswordWithResetFlag(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	in := model.ChangePasswordRequest{CurrentPassword: "temp-pass", NewPassword: "brand-new-pass"}
	svc.EXPECT().ChangePassword(gomock.Any(), student, in).Return(model.AuthorizeResponse{AccessToken: "fresh"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/password",
		strings.NewReader(`{"currentPassword":"temp-pass","newPassword":"brand-new-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearer(t, student, true))
	w := serve(t, svc, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"accessToken":"fresh"`)
}

func TestHandler_Authorize(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	in := model.AuthorizeRequest{Email: "maria.cruz@student.libratech.com", Password: "wrong-pass"}
	svc.EXPECT().Authorize(gomock.Any(), in).Return(model.AuthorizeResponse{}, errs.ErrUnauthorized)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize",
		strings.NewReader(`{"email":"maria.cruz@student.libratech.com","password":"wrong-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	w := serve(t, svc, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, `{"message":"invalid credentials"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_ImportUsers(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	const sheet = "first_name,middle_name,last_name,role,grade_level\nMaria,,Cruz,student,8\n"
	svc.EXPECT().
		ImportUsers(gomock.Any(), librarian, gomock.Any(), "users.csv").
		DoAndReturn(func(_ interface{}, _ model.Actor, r io.Reader, _ string) (model.ImportResult, error) {
			b, err := io.ReadAll(r)
			if err != nil {
				return model.ImportResult{}, err
			}
			if string(b) != sheet {
				return model.ImportResult{}, errors.New("unexpected upload")
			}
			return model.ImportResult{Imported: 1}, nil
		})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "users.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sheet))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", bearer(t, librarian, false))
	w := serve(t, svc, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"imported":1,"skipped":0}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_DownloadLearningFile(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)
	svc.EXPECT().
		DownloadLearningFile(gomock.Any(), student, int64(4)).
		Return(service.Download{URL: "/storage/learning_files/abc.pdf", FileName: "Fractions.pdf"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/learning-files/4/download", nil)
	req.Header.Set("Authorization", bearer(t, student, false))
	w := serve(t, svc, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/storage/learning_files/abc.pdf", w.Header().Get("Location"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "Fractions.pdf")
}

func TestHandler_BooksTemplate(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/books/import/template", nil)
	req.Header.Set("Authorization", bearer(t, librarian, false))
	w := serve(t, svc, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.HasPrefix(w.Body.String(), "title"))
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockLibraryService(c)

	w := serve(t, svc, httptest.NewRequest(http.MethodGet, "/manage/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())
}
