package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

var bookColumns = []string{
	"b.id", "b.book_code", "b.title", "b.author", "b.subject", "b.description",
	"b.grade_level", "b.competency", "b.type", "b.file_path", "b.created_at",
}

// NextCodeSequence bumps and returns the last sequence issued for prefix.
// The row lock taken by the upsert is held until the transaction ends, so
// numbers are never handed out twice, even after books are deleted.
func (r *repository) NextCodeSequence(ctx context.Context, prefix string) (int, error) {
	q := `
insert into book_code_sequences (prefix, last_seq)
values (@prefix, 1)
on conflict (prefix) do update set last_seq = book_code_sequences.last_seq + 1
returning last_seq`
	var seq int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"prefix": prefix}).Scan(&seq); err != nil {
		return 0, errors.Wrapf(err, "next code sequence %s", prefix)
	}
	return seq, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q := `
insert into books (book_code, title, author, subject, description, grade_level, competency, type, file_path)
values (@book_code, @title, @author, @subject, @description, @grade_level, @competency, @type, @file_path)
returning id, book_code, title, author, subject, description, grade_level, competency, type, file_path, created_at`
	args := pgx.NamedArgs{
		"book_code":   book.BookCode,
		"title":       book.Title,
		"author":      book.Author,
		"subject":     book.Subject,
		"description": book.Description,
		"grade_level": book.GradeLevel,
		"competency":  book.Competency,
		"type":        book.Type,
		"file_path":   book.FilePath,
	}
	created, err := collectOne[model.Book](ctx, r.db, q, args)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return model.Book{}, errors.Wrapf(errs.ErrConflict, "book code %s", book.BookCode)
		}
		return model.Book{}, err
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName + " b").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	book, err := collectOne[model.Book](ctx, r.db, query, args...)
	if err != nil {
		return model.Book{}, errors.Wrapf(err, "book %d", id)
	}
	return book, nil
}

func bookViewSelect(viewerID int64) sq.SelectBuilder {
	return qb.Select(bookColumns...).
		Column(fmt.Sprintf("not exists (select 1 from %s l where l.book_id = b.id and l.returned_at is null) as is_available",
			borrowLogsTableName)).
		Column(sq.Expr(fmt.Sprintf("exists (select 1 from %s l where l.book_id = b.id and l.user_id = ? and l.returned_at is null) as current_user_has_book",
			borrowLogsTableName), viewerID)).
		Column(sq.Expr(fmt.Sprintf("(select r.borrow_status from %s r where r.book_id = b.id and r.user_id = ? order by r.created_at desc, r.id desc limit 1) as current_user_request_status",
			borrowRequestsTableName), viewerID)).
		From(booksTableName + " b")
}

func (r *repository) GetBookView(ctx context.Context, id, viewerID int64) (model.BookView, error) {
	query, args, err := bookViewSelect(viewerID).Where(sq.Eq{"b.id": id}).ToSql()
	if err != nil {
		return model.BookView{}, err
	}
	view, err := collectOne[model.BookView](ctx, r.db, query, args...)
	if err != nil {
		return model.BookView{}, errors.Wrapf(err, "book %d", id)
	}
	return view, nil
}

func bookFilter(q sq.SelectBuilder, f model.BookFilter) sq.SelectBuilder {
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(sq.Or{
			sq.ILike{"b.title": p},
			sq.ILike{"b.author": p},
			sq.ILike{"b.book_code": p},
		})
	}
	if f.Grade != 0 {
		q = q.Where(sq.Eq{"b.grade_level": f.Grade})
	}
	if f.Subject != "" {
		q = q.Where(sq.ILike{"b.subject": f.Subject})
	}
	return q
}

func (r *repository) ListBooks(ctx context.Context, f model.BookFilter, viewerID int64) (model.ListBooks, error) {
	paging := f.Paging.Normalize()

	total, err := r.count(ctx, bookFilter(qb.Select("count(*)").From(booksTableName+" b"), f))
	if err != nil {
		return model.ListBooks{}, err
	}

	query, args, err := bookFilter(bookViewSelect(viewerID), f).
		OrderBy("b.title", "b.id").
		Limit(uint64(paging.PageSize)).
		Offset(uint64(paging.Offset())).
		ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	books, err := collectAll[model.BookView](ctx, r.db, query, args...)
	if err != nil {
		return model.ListBooks{}, err
	}
	paging.TotalElements = total
	return model.ListBooks{Paging: paging, Items: books}, nil
}

func (r *repository) UpdateBook(ctx context.Context, id int64, upd model.BookUpdate) (model.Book, error) {
	q := `
update books
    set title = @title, author = @author, description = @description, grade_level = @grade_level,
        competency = @competency, type = @type, file_path = @file_path
where id = @id
returning id, book_code, title, author, subject, description, grade_level, competency, type, file_path, created_at`
	args := pgx.NamedArgs{
		"id":          id,
		"title":       upd.Title,
		"author":      upd.Author,
		"description": upd.Description,
		"grade_level": upd.GradeLevel,
		"competency":  upd.Competency,
		"type":        upd.Type,
		"file_path":   upd.FilePath,
	}
	book, err := collectOne[model.Book](ctx, r.db, q, args)
	if err != nil {
		return model.Book{}, errors.Wrapf(err, "book %d", id)
	}
	return book, nil
}

func (r *repository) DeleteBooks(ctx context.Context, ids []int64) (int64, error) {
	query, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *repository) BookHistory(ctx context.Context, bookID int64) ([]model.BorrowHistoryItem, error) {
	query, args, err := qb.Select("l.id", "l.user_id", "u.name as user_name", "l.borrowed_at", "l.returned_at").
		From(borrowLogsTableName + " l").
		Join(usersTableName + " u on u.id = l.user_id").
		Where(sq.Eq{"l.book_id": bookID}).
		OrderBy("l.borrowed_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.BorrowHistoryItem](ctx, r.db, query, args...)
}
