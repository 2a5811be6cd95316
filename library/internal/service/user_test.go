package service

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

func TestEmailBase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                string
		first, middle, last string
		want                string
	}{
		{name: "no middle", first: "Maria", last: "Cruz", want: "maria.cruz"},
		{name: "one middle", first: "Maria", middle: "Luisa", last: "Cruz", want: "maria.l.cruz"},
		{name: "two middles", first: "Maria", middle: "Luisa Theresa", last: "Cruz", want: "marialt.cruz"},
		{name: "spaces and case", first: " JOSE ", middle: "", last: "Dela Cruz", want: "jose.delacruz"},
		{name: "accents", first: "José", last: "Peña", want: "jose.pena"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, EmailBase(tt.first, tt.middle, tt.last))
		})
	}
}

func TestUniqueEmail_Collisions(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	ctx := context.Background()

	email, err := uniqueEmail(ctx, env.repo, "maria.cruz", model.RoleStudent, "school.test", 0)
	require.NoError(t, err)
	require.Equal(t, "maria.cruz@student.school.test", email)

	for _, e := range []string{"maria.cruz@student.school.test", "maria.cruz2@student.school.test"} {
		_, err := env.repo.CreateUser(ctx, model.User{Name: "x", Email: e, Role: model.RoleStudent, GradeLevel: intPtr(7)})
		require.NoError(t, err)
	}
	email, err = uniqueEmail(ctx, env.repo, "maria.cruz", model.RoleStudent, "school.test", 0)
	require.NoError(t, err)
	require.Equal(t, "maria.cruz3@student.school.test", email)

	email, err = uniqueEmail(ctx, env.repo, "maria.cruz", model.RoleTeacher, "school.test", 0)
	require.NoError(t, err)
	require.Equal(t, "maria.cruz@teacher.school.test", email, "domains differ per role")

	_, err = uniqueEmail(ctx, env.repo, ".cruz", model.RoleStudent, "school.test", 0)
	require.True(t, errors.Is(err, errs.ErrValidation))
}

func TestCreateUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	librarian := actorOf(env.repo.seedUser("Lib Rarian", model.RoleLibrarian, nil))
	ctx := context.Background()

	_, err := env.svc.CreateUser(ctx, librarian, model.CreateUserRequest{
		Name: "Stu", Email: "stu@x.test", Password: "secret123", Role: model.RoleStudent,
	})
	require.True(t, errors.Is(err, errs.ErrValidation), "students need a grade")

	_, err = env.svc.CreateUser(ctx, librarian, model.CreateUserRequest{
		Name: "Stu", Email: "stu@x.test", Password: "short", Role: model.RoleStudent, GradeLevel: intPtr(8),
	})
	require.True(t, errors.Is(err, errs.ErrValidation))

	u, err := env.svc.CreateUser(ctx, librarian, model.CreateUserRequest{
		Name: "Tea", Email: " Tea@X.test ", Password: "secret123", Role: model.RoleTeacher, GradeLevel: intPtr(8),
	})
	require.NoError(t, err)
	require.Equal(t, "tea@x.test", u.Email)
	require.Nil(t, u.GradeLevel, "only students carry a grade")
	require.NotEqual(t, "secret123", u.PasswordHash)

	_, err = env.svc.CreateUser(ctx, librarian, model.CreateUserRequest{
		Name: "Tea 2", Email: "tea@x.test", Password: "secret123", Role: model.RoleTeacher,
	})
	require.True(t, errors.Is(err, errs.ErrConflict))

	_, err = env.svc.CreateUser(ctx, actorOf(u), model.CreateUserRequest{
		Name: "Tea 3", Email: "tea3@x.test", Password: "secret123", Role: model.RoleTeacher,
	})
	require.True(t, errors.Is(err, errs.ErrForbidden))
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	librarian := actorOf(env.repo.seedUser("Lib Rarian", model.RoleLibrarian, nil))
	student := env.repo.seedUser("Stu Dent", model.RoleStudent, intPtr(7))
	other := env.repo.seedUser("Other", model.RoleTeacher, nil)
	ctx := context.Background()

	other.Email = "taken@teacher.school.test"
	_, err := env.repo.UpdateUser(ctx, other)
	require.NoError(t, err)

	updated, err := env.svc.UpdateUser(ctx, librarian, student.ID, model.UserUpdate{
		Name: "Stu Dent", EmailPrefix: "stu.dent", Role: model.RoleTeacher, GradeLevel: intPtr(9),
	})
	require.NoError(t, err)
	require.Equal(t, "stu.dent@teacher.school.test", updated.Email)
	require.Equal(t, model.RoleTeacher, updated.Role)
	require.Nil(t, updated.GradeLevel)

	_, err = env.svc.UpdateUser(ctx, librarian, student.ID, model.UserUpdate{
		Name: "Stu Dent", EmailPrefix: "taken", Role: model.RoleTeacher,
	})
	require.True(t, errors.Is(err, errs.ErrConflict))

	same, err := env.svc.UpdateUser(ctx, librarian, student.ID, model.UserUpdate{
		Name: "Renamed", EmailPrefix: "stu.dent", Role: model.RoleTeacher, Password: "newsecret1",
	})
	require.NoError(t, err, "own email does not collide")
	require.Equal(t, "Renamed", same.Name)
	require.NotEmpty(t, same.PasswordHash)

	_, err = env.svc.UpdateUser(ctx, librarian, 999, model.UserUpdate{
		Name: "Ghost", EmailPrefix: "ghost", Role: model.RoleTeacher,
	})
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestDeleteUsers_CascadeAndSelf(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.NoError(t, err)

	err = f.svc.DeleteUser(ctx, f.librarian, f.librarian.ID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	n, err := f.svc.DeleteUsers(ctx, f.librarian, []int64{f.librarian.ID, f.student.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	_, err = f.repo.GetUser(ctx, f.librarian.ID)
	require.NoError(t, err, "caller is never deleted")
	require.Zero(t, f.repo.openLogs(f.student.ID, f.book.ID))
	_, err = f.repo.GetRequestForUpdate(ctx, req.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	err = f.svc.DeleteUser(ctx, f.librarian, f.student.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestDeleteBooks_Cascade(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteBook(ctx, f.librarian, f.book.ID))
	_, err = f.repo.GetRequestForUpdate(ctx, req.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	err = f.svc.DeleteBook(ctx, f.librarian, f.book.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = f.svc.DeleteBooks(ctx, f.librarian, nil)
	require.True(t, errors.Is(err, errs.ErrValidation))
}

func TestUpdateBook_KeepsCode(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	ctx := context.Background()

	updated, err := f.svc.UpdateBook(ctx, f.librarian, f.book.ID, model.BookUpdate{
		Title: "advanced biology", Author: "new author", GradeLevel: 9, Type: model.BookTypePDF,
	})
	require.NoError(t, err)
	require.Equal(t, f.book.BookCode, updated.BookCode)
	require.Equal(t, f.book.Subject, updated.Subject)
	require.Equal(t, "Advanced Biology", updated.Title)
	require.Equal(t, 9, updated.GradeLevel)

	list, err := f.svc.ListBooks(ctx, f.student, model.BookFilter{Search: " biology "})
	require.NoError(t, err)
	require.Equal(t, 1, list.TotalElements)
	require.True(t, strings.HasPrefix(list.Items[0].BookCode, "07SCI"))
}
