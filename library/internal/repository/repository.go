package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

type Repository interface {
	// WithTx runs fn inside one transaction. Nested calls reuse the outer one.
	WithTx(ctx context.Context, fn func(Repository) error) error

	AdvisoryLock(ctx context.Context, key string) error
	NextCodeSequence(ctx context.Context, prefix string) (int, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookView(ctx context.Context, id, viewerID int64) (model.BookView, error)
	ListBooks(ctx context.Context, f model.BookFilter, viewerID int64) (model.ListBooks, error)
	UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) (model.Book, error)
	DeleteBooks(ctx context.Context, ids []int64) (int64, error)
	BookHistory(ctx context.Context, bookID int64) ([]model.BorrowHistoryItem, error)

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error)
	ListUsers(ctx context.Context, f model.UserFilter) (model.ListUsers, error)
	UpdateUser(ctx context.Context, user model.User) (model.User, error)
	DeleteUsers(ctx context.Context, ids []int64) (int64, error)

	CreateRequest(ctx context.Context, req model.BorrowRequest) (model.BorrowRequest, error)
	GetRequestForUpdate(ctx context.Context, id int64) (model.BorrowRequest, error)
	HasPendingRequest(ctx context.Context, userID, bookID int64) (bool, error)
	UpdateRequest(ctx context.Context, req model.BorrowRequest) error
	DeleteRequest(ctx context.Context, id int64) error
	MarkReturned(ctx context.Context, userID, bookID int64) error
	LatestRequestStatus(ctx context.Context, userID, bookID int64) (*model.BorrowStatus, error)
	ListRequests(ctx context.Context, q model.RequestQuery) ([]model.RequestView, error)
	DeleteBorrowsByBooks(ctx context.Context, bookIDs []int64) error
	DeleteBorrowsByUsers(ctx context.Context, userIDs []int64) error

	CreateLog(ctx context.Context, log model.BorrowLog) (model.BorrowLog, error)
	GetOpenLogForUpdate(ctx context.Context, userID, bookID int64) (model.BorrowLog, error)
	CloseLog(ctx context.Context, id int64, at time.Time) error
	ListOpenLoans(ctx context.Context, userID int64) ([]model.LoanView, error)
	ListActiveBorrows(ctx context.Context, f model.ActiveBorrowFilter, today time.Time) (model.ListActiveBorrows, error)

	CreateLearningFile(ctx context.Context, f model.LearningFile) (model.LearningFile, error)
	GetLearningFile(ctx context.Context, id int64) (model.LearningFile, error)
	ListLearningFiles(ctx context.Context, q model.LearningFileQuery) ([]model.LearningFileView, error)
	LearningFileTitleTaken(ctx context.Context, title string) (bool, error)
	UpdateLearningFile(ctx context.Context, id int64, upd model.LearningFileUpdate) (model.LearningFile, error)
	DeleteLearningFile(ctx context.Context, id int64) error

	CountBooks(ctx context.Context) (int, error)
	CountRequests(ctx context.Context, userID int64, status model.BorrowStatus) (int, error)
	CountOpenLogs(ctx context.Context, userID int64) (int, error)
	CountOverdue(ctx context.Context, today time.Time) (int, error)
	CountLearningFiles(ctx context.Context, q model.LearningFileQuery) (int, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	booksTableName          = `books`
	usersTableName          = `users`
	borrowRequestsTableName = `borrow_requests`
	borrowLogsTableName     = `borrow_logs`
	learningFilesTableName  = `learning_files`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(Repository) error) error {
	if r.pool == nil {
		return fn(r)
	}
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&repository{db: tx, log: r.log})
	})
}

func isUniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// collectOne runs query and scans exactly one row into T.
func collectOne[T any](ctx context.Context, db querier, query string, args ...any) (T, error) {
	var zero T
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errs.ErrNotFound
		}
		return zero, err
	}
	return v, nil
}

func collectAll[T any](ctx context.Context, db querier, query string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func (r *repository) count(ctx context.Context, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *repository) exists(ctx context.Context, q sq.SelectBuilder) (bool, error) {
	query, args, err := q.Prefix("select exists (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	var ok bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func orderDirection(d model.SortDirection) string {
	if d == model.SortAsc {
		return "asc"
	}
	return "desc"
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// AdvisoryLock holds a transaction-scoped lock on key until the
// surrounding transaction ends.
func (r *repository) AdvisoryLock(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `select pg_advisory_xact_lock(hashtext(@key))`, pgx.NamedArgs{"key": key})
	return errors.Wrap(err, "pg_advisory_xact_lock")
}
