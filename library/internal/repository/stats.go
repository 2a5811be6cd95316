package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/school-library/library/internal/model"
)

func (r *repository) CountBooks(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(booksTableName))
}

// CountRequests counts requests in status; a zero userID counts everyone's.
func (r *repository) CountRequests(ctx context.Context, userID int64, status model.BorrowStatus) (int, error) {
	q := qb.Select("count(*)").From(borrowRequestsTableName).Where(sq.Eq{"borrow_status": status})
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return r.count(ctx, q)
}

func (r *repository) CountOpenLogs(ctx context.Context, userID int64) (int, error) {
	q := qb.Select("count(*)").From(borrowLogsTableName).Where(sq.Eq{"returned_at": nil})
	if userID != 0 {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	return r.count(ctx, q)
}

func (r *repository) CountOverdue(ctx context.Context, today time.Time) (int, error) {
	return r.count(ctx, activeBorrowsFrom(qb.Select("count(*)"),
		model.ActiveBorrowFilter{Filter: model.ActiveFilterOverdue}, today))
}

func (r *repository) CountLearningFiles(ctx context.Context, q model.LearningFileQuery) (int, error) {
	return r.count(ctx, learningFileWhere(qb.Select("count(*)").From(learningFilesTableName+" f"), q))
}
