package service

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/pkg/kafka"
)

type borrowFixture struct {
	*testEnv
	librarian model.Actor
	student   model.Actor
	teacher   model.Actor
	book      model.Book
}

func newBorrowFixture(t *testing.T) *borrowFixture {
	t.Helper()
	env := newTestEnv(t)
	f := &borrowFixture{
		testEnv:   env,
		librarian: actorOf(env.repo.seedUser("Lib Rarian", model.RoleLibrarian, nil)),
		student:   actorOf(env.repo.seedUser("Stu Dent", model.RoleStudent, intPtr(7))),
		teacher:   actorOf(env.repo.seedUser("Tea Cher", model.RoleTeacher, nil)),
	}
	book, err := env.svc.CreateBook(context.Background(), f.librarian, model.CreateBookRequest{
		Title: "Biology", Author: "Author", Subject: "science", GradeLevel: 7,
	})
	require.NoError(t, err)
	f.book = book
	return f
}

func TestBorrow_FullLifecycle(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.BorrowEvent) error {
			require.Equal(t, kafka.EventRequested, ev.EventType)
			return nil
		}),
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.BorrowEvent) error {
			require.Equal(t, kafka.EventApproved, ev.EventType)
			require.Equal(t, f.librarian.ID, ev.ActorID)
			return nil
		}),
		f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.BorrowEvent) error {
			require.Equal(t, kafka.EventReturned, ev.EventType)
			return nil
		}),
	)

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, req.Status)

	st, err := f.svc.BorrowStatus(ctx, f.student, f.book.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, *st)

	approved, err := f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, approved.Status)
	require.Equal(t, f.librarian.ID, *approved.ApprovedBy)
	require.Equal(t, 1, f.repo.openLogs(f.student.ID, f.book.ID))

	view, err := f.svc.GetBook(ctx, f.student, f.book.ID)
	require.NoError(t, err)
	require.False(t, view.IsAvailable)
	require.True(t, view.CurrentUserHasBook)
	require.Empty(t, view.BorrowHistory)

	loans, err := f.svc.MyBooks(ctx, f.student)
	require.NoError(t, err)
	require.Len(t, loans, 1)

	require.NoError(t, f.svc.ReturnBook(ctx, f.student, f.book.ID))
	require.Zero(t, f.repo.openLogs(f.student.ID, f.book.ID))

	stored, err := f.repo.GetRequestForUpdate(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusReturned, stored.Status)

	st, err = f.svc.BorrowStatus(ctx, f.student, f.book.ID)
	require.NoError(t, err)
	require.Nil(t, st)

	err = f.svc.ReturnBook(ctx, f.student, f.book.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	details, err := f.svc.GetBook(ctx, f.librarian, f.book.ID)
	require.NoError(t, err)
	require.Len(t, details.BorrowHistory, 1)
	require.NotNil(t, details.BorrowHistory[0].ReturnedAt)
}

func TestRequestBorrow_Validation(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{
		ExpectedReturnDate: model.Date{Time: testNow},
	})
	require.True(t, errors.Is(err, errs.ErrValidation), "today is not after today")

	_, err = f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{})
	require.True(t, errors.Is(err, errs.ErrValidation))

	_, err = f.svc.RequestBorrow(ctx, f.student, 9999, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.True(t, errors.Is(err, errs.ErrNotFound))

	_, err = f.svc.RequestBorrow(ctx, f.librarian, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.True(t, errors.Is(err, errs.ErrForbidden))

	n, _ := f.repo.CountRequests(ctx, 0, model.StatusPending)
	require.Zero(t, n)
}

func TestRequestBorrow_Duplicate(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	_, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.True(t, errors.Is(err, errs.ErrDuplicateRequest))

	_, err = f.svc.RequestBorrow(ctx, f.teacher, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err, "another user may request the same book")
}

func TestRequestBorrow_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()

	const n = 10
	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.RequestBorrow(context.Background(), f.student, f.book.ID,
				model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
			if err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, ok)
}

func TestCancelRequest(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)

	err = f.svc.CancelRequest(ctx, f.teacher, req.ID)
	require.True(t, errors.Is(err, errs.ErrForbidden))
	err = f.svc.CancelRequest(ctx, f.librarian, req.ID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, f.svc.CancelRequest(ctx, f.student, req.ID))
	_, err = f.repo.GetRequestForUpdate(ctx, req.ID)
	require.True(t, errors.Is(err, errs.ErrNotFound))

	req, err = f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.NoError(t, err)
	err = f.svc.CancelRequest(ctx, f.student, req.ID)
	require.True(t, errors.Is(err, errs.ErrInvalidState))
}

func TestRejectRequest(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)

	_, err = f.svc.RejectRequest(ctx, f.student, req.ID, "no")
	require.True(t, errors.Is(err, errs.ErrForbidden))

	rejected, err := f.svc.RejectRequest(ctx, f.librarian, req.ID, "  damaged copy  ")
	require.NoError(t, err)
	require.Equal(t, model.StatusRejected, rejected.Status)
	require.Equal(t, "damaged copy", *rejected.RejectReason)
	require.Zero(t, f.repo.openLogs(f.student.ID, f.book.ID))

	_, err = f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.True(t, errors.Is(err, errs.ErrInvalidState), "rejected is terminal")
	_, err = f.svc.RejectRequest(ctx, f.librarian, req.ID, "")
	require.True(t, errors.Is(err, errs.ErrInvalidState))

	other, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err, "a new request is allowed after rejection")
	rejected, err = f.svc.RejectRequest(ctx, f.librarian, other.ID, "   ")
	require.NoError(t, err)
	require.Nil(t, rejected.RejectReason)

	mine, err := f.svc.MyRequests(ctx, f.student)
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestApproveRequest_RefusedWhileHoldingBook(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	first, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.ApproveRequest(ctx, f.librarian, first.ID)
	require.NoError(t, err)

	second, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.ApproveRequest(ctx, f.librarian, second.ID)
	require.True(t, errors.Is(err, errs.ErrInvalidState))

	stored, err := f.repo.GetRequestForUpdate(ctx, second.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusPending, stored.Status, "failed approval leaves no trace")
	require.Equal(t, 1, f.repo.openLogs(f.student.ID, f.book.ID))
}

func TestCheckIn(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.teacher, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
	_, err = f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.NoError(t, err)

	err = f.svc.CheckIn(ctx, f.student, f.teacher.ID, f.book.ID)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	require.NoError(t, f.svc.CheckIn(ctx, f.librarian, f.teacher.ID, f.book.ID))
	require.Zero(t, f.repo.openLogs(f.teacher.ID, f.book.ID))
}

func TestActiveBorrowsAndPending(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.quietEvents()
	ctx := context.Background()

	req, err := f.svc.RequestBorrow(ctx, f.student, f.book.ID, model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)

	pending, err := f.svc.PendingRequests(ctx, f.librarian)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "Stu Dent", pending[0].UserName)

	_, err = f.svc.PendingRequests(ctx, f.student)
	require.True(t, errors.Is(err, errs.ErrForbidden))

	_, err = f.svc.ApproveRequest(ctx, f.librarian, req.ID)
	require.NoError(t, err)

	active, err := f.svc.ActiveBorrows(ctx, f.librarian, model.ActiveBorrowFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, active.TotalElements)
	require.Equal(t, f.book.BookCode, active.Items[0].BookCode)

	overdue, err := f.svc.ActiveBorrows(ctx, f.librarian, model.ActiveBorrowFilter{Filter: model.ActiveFilterOverdue})
	require.NoError(t, err)
	require.Zero(t, overdue.TotalElements)
}

func TestPublishFailureDoesNotFailOperation(t *testing.T) {
	t.Parallel()
	f := newBorrowFixture(t)
	f.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := f.svc.RequestBorrow(context.Background(), f.student, f.book.ID,
		model.CreateBorrowRequest{ExpectedReturnDate: tomorrow()})
	require.NoError(t, err)
}
