package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

const (
	onePendingIndex = "borrow_requests_one_pending_idx"
	oneOpenLogIndex = "borrow_logs_one_open_idx"
)

var requestColumns = []string{
	"r.id", "r.user_id", "r.book_id", "r.borrow_status", "r.expected_return_date",
	"r.approved_by", "r.reject_reason", "r.created_at",
}

func (r *repository) CreateRequest(ctx context.Context, req model.BorrowRequest) (model.BorrowRequest, error) {
	q := `
insert into borrow_requests (user_id, book_id, borrow_status, expected_return_date)
values (@user_id, @book_id, @borrow_status, @expected_return_date)
returning id, user_id, book_id, borrow_status, expected_return_date, approved_by, reject_reason, created_at`
	args := pgx.NamedArgs{
		"user_id":              req.UserID,
		"book_id":              req.BookID,
		"borrow_status":        model.StatusPending,
		"expected_return_date": req.ExpectedReturnDate,
	}
	created, err := collectOne[model.BorrowRequest](ctx, r.db, q, args)
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == onePendingIndex {
			return model.BorrowRequest{}, errs.ErrDuplicateRequest
		}
		if isForeignKeyViolation(err) {
			return model.BorrowRequest{}, errors.Wrapf(errs.ErrNotFound, "book %d", req.BookID)
		}
		return model.BorrowRequest{}, err
	}
	return created, nil
}

func (r *repository) GetRequestForUpdate(ctx context.Context, id int64) (model.BorrowRequest, error) {
	query, args, err := qb.Select(requestColumns...).
		From(borrowRequestsTableName + " r").
		Where(sq.Eq{"r.id": id}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.BorrowRequest{}, err
	}
	req, err := collectOne[model.BorrowRequest](ctx, r.db, query, args...)
	if err != nil {
		return model.BorrowRequest{}, errors.Wrapf(err, "request %d", id)
	}
	return req, nil
}

func (r *repository) HasPendingRequest(ctx context.Context, userID, bookID int64) (bool, error) {
	return r.exists(ctx, qb.Select("1").
		From(borrowRequestsTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID, "borrow_status": model.StatusPending}))
}

func (r *repository) UpdateRequest(ctx context.Context, req model.BorrowRequest) error {
	q := `
update borrow_requests
    set borrow_status = @borrow_status, approved_by = @approved_by, reject_reason = @reject_reason, updated_at = now()
where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":            req.ID,
		"borrow_status": req.Status,
		"approved_by":   req.ApprovedBy,
		"reject_reason": req.RejectReason,
	})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "request %d", req.ID)
	}
	return nil
}

func (r *repository) DeleteRequest(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(borrowRequestsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "request %d", id)
	}
	return nil
}

// MarkReturned flips the approved request for the pair, if any.
func (r *repository) MarkReturned(ctx context.Context, userID, bookID int64) error {
	q := `
update borrow_requests
    set borrow_status = @returned, updated_at = now()
where user_id = @user_id and book_id = @book_id and borrow_status = @approved`
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"user_id":  userID,
		"book_id":  bookID,
		"returned": model.StatusReturned,
		"approved": model.StatusApproved,
	})
	return err
}

func (r *repository) LatestRequestStatus(ctx context.Context, userID, bookID int64) (*model.BorrowStatus, error) {
	query, args, err := qb.Select("borrow_status").
		From(borrowRequestsTableName).
		Where(sq.Eq{
			"user_id":       userID,
			"book_id":       bookID,
			"borrow_status": []model.BorrowStatus{model.StatusPending, model.StatusApproved},
		}).
		OrderBy("created_at desc", "id desc").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	var st model.BorrowStatus
	if err := r.db.QueryRow(ctx, query, args...).Scan(&st); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (r *repository) ListRequests(ctx context.Context, rq model.RequestQuery) ([]model.RequestView, error) {
	q := qb.Select(requestColumns...).
		Columns("b.title as book_title", "b.book_code", "u.name as user_name").
		From(borrowRequestsTableName + " r").
		Join(booksTableName + " b on b.id = r.book_id").
		Join(usersTableName + " u on u.id = r.user_id").
		OrderBy("r.created_at desc", "r.id desc")
	if rq.UserID != 0 {
		q = q.Where(sq.Eq{"r.user_id": rq.UserID})
	}
	if len(rq.Statuses) > 0 {
		q = q.Where(sq.Eq{"r.borrow_status": rq.Statuses})
	}
	if rq.Limit > 0 {
		q = q.Limit(uint64(rq.Limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.RequestView](ctx, r.db, query, args...)
}

func (r *repository) deleteWhere(ctx context.Context, table string, pred sq.Sqlizer) error {
	query, args, err := qb.Delete(table).Where(pred).ToSql()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, query, args...)
	return errors.Wrapf(err, "delete from %s", table)
}

func (r *repository) DeleteBorrowsByBooks(ctx context.Context, bookIDs []int64) error {
	if err := r.deleteWhere(ctx, borrowLogsTableName, sq.Eq{"book_id": bookIDs}); err != nil {
		return err
	}
	return r.deleteWhere(ctx, borrowRequestsTableName, sq.Eq{"book_id": bookIDs})
}

func (r *repository) DeleteBorrowsByUsers(ctx context.Context, userIDs []int64) error {
	if err := r.deleteWhere(ctx, borrowLogsTableName, sq.Eq{"user_id": userIDs}); err != nil {
		return err
	}
	return r.deleteWhere(ctx, borrowRequestsTableName, sq.Eq{"user_id": userIDs})
}

func (r *repository) CreateLog(ctx context.Context, log model.BorrowLog) (model.BorrowLog, error) {
	q := `
insert into borrow_logs (user_id, book_id, borrowed_at)
values (@user_id, @book_id, @borrowed_at)
returning id, user_id, book_id, borrowed_at, returned_at`
	created, err := collectOne[model.BorrowLog](ctx, r.db, q, pgx.NamedArgs{
		"user_id":     log.UserID,
		"book_id":     log.BookID,
		"borrowed_at": log.BorrowedAt,
	})
	if err != nil {
		if constraint, ok := isUniqueViolation(err); ok && constraint == oneOpenLogIndex {
			return model.BorrowLog{}, errors.Wrap(errs.ErrInvalidState, "book is already held by this user")
		}
		return model.BorrowLog{}, err
	}
	return created, nil
}

func (r *repository) GetOpenLogForUpdate(ctx context.Context, userID, bookID int64) (model.BorrowLog, error) {
	query, args, err := qb.Select("id", "user_id", "book_id", "borrowed_at", "returned_at").
		From(borrowLogsTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID, "returned_at": nil}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.BorrowLog{}, err
	}
	log, err := collectOne[model.BorrowLog](ctx, r.db, query, args...)
	if err != nil {
		return model.BorrowLog{}, errors.Wrapf(err, "open borrow of book %d", bookID)
	}
	return log, nil
}

func (r *repository) CloseLog(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `update borrow_logs set returned_at = @at where id = @id and returned_at is null`,
		pgx.NamedArgs{"id": id, "at": at})
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "open borrow %d", id)
	}
	return nil
}

func (r *repository) ListOpenLoans(ctx context.Context, userID int64) ([]model.LoanView, error) {
	query, args, err := qb.Select("l.id", "l.user_id", "l.book_id", "l.borrowed_at", "l.returned_at",
		"b.title as book_title", "b.book_code").
		From(borrowLogsTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Where(sq.Eq{"l.user_id": userID, "l.returned_at": nil}).
		OrderBy("l.borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.LoanView](ctx, r.db, query, args...)
}

var activeSortColumns = map[string]string{
	"created_at":  "l.borrowed_at",
	"borrowed_at": "l.borrowed_at",
	"user":        "u.name",
	"book":        "b.title",
	"due_date":    "r.expected_return_date",
}

// activeBorrowsFrom joins open logs with the approved request of the pair.
func activeBorrowsFrom(q sq.SelectBuilder, f model.ActiveBorrowFilter, today time.Time) sq.SelectBuilder {
	q = q.From(borrowLogsTableName + " l").
		Join(usersTableName + " u on u.id = l.user_id").
		Join(booksTableName + " b on b.id = l.book_id").
		LeftJoin(fmt.Sprintf("%s r on r.user_id = l.user_id and r.book_id = l.book_id and r.borrow_status = '%s'",
			borrowRequestsTableName, model.StatusApproved)).
		Where(sq.Eq{"l.returned_at": nil})

	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(sq.Or{sq.ILike{"u.name": p}, sq.ILike{"b.title": p}, sq.ILike{"b.book_code": p}})
	}
	switch f.Filter {
	case model.ActiveFilterOverdue:
		q = q.Where(sq.Lt{"r.expected_return_date": today})
	case model.ActiveFilterActive:
		q = q.Where(sq.Or{sq.Eq{"r.expected_return_date": nil}, sq.GtOrEq{"r.expected_return_date": today}})
	}
	return q
}

func (r *repository) ListActiveBorrows(ctx context.Context, f model.ActiveBorrowFilter, today time.Time) (model.ListActiveBorrows, error) {
	paging := model.Paging{Page: f.Page, PageSize: model.DefaultPageSize}.Normalize()

	total, err := r.count(ctx, activeBorrowsFrom(qb.Select("count(*)"), f, today))
	if err != nil {
		return model.ListActiveBorrows{}, err
	}

	sortCol, ok := activeSortColumns[f.Sort]
	if !ok {
		sortCol = "l.borrowed_at"
	}
	query, args, err := activeBorrowsFrom(qb.Select(
		"l.id", "l.user_id", "u.name as user_name", "l.book_id", "b.title as book_title",
		"b.book_code", "l.borrowed_at", "r.expected_return_date::timestamptz as expected_return_date",
	), f, today).
		OrderBy(sortCol+" "+orderDirection(f.Direction)+" nulls last", "l.id").
		Limit(uint64(paging.PageSize)).
		Offset(uint64(paging.Offset())).
		ToSql()
	if err != nil {
		return model.ListActiveBorrows{}, err
	}
	items, err := collectAll[model.ActiveBorrow](ctx, r.db, query, args...)
	if err != nil {
		return model.ListActiveBorrows{}, err
	}
	paging.TotalElements = total
	return model.ListActiveBorrows{Paging: paging, Items: items}, nil
}
