package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "role", "grade_level", "must_reset_password", "created_at",
}

var userSortColumns = map[string]string{
	"name":        "name",
	"email":       "email",
	"role":        "role",
	"grade_level": "grade_level",
	"created_at":  "created_at",
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q := `
insert into users (name, email, password_hash, role, grade_level, must_reset_password)
values (@name, @email, @password_hash, @role, @grade_level, @must_reset_password)
returning id, name, email, password_hash, role, grade_level, must_reset_password, created_at`
	args := pgx.NamedArgs{
		"name":                user.Name,
		"email":               user.Email,
		"password_hash":       user.PasswordHash,
		"role":                user.Role,
		"grade_level":         user.GradeLevel,
		"must_reset_password": user.MustResetPassword,
	}
	created, err := collectOne[model.User](ctx, r.db, q, args)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "email %s already taken", user.Email)
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.User{}, err
	}
	user, err := collectOne[model.User](ctx, r.db, query, args...)
	if err != nil {
		return model.User{}, errors.Wrapf(err, "user %d", id)
	}
	return user, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTableName).Where(sq.Eq{"email": email}).ToSql()
	if err != nil {
		return model.User{}, err
	}
	return collectOne[model.User](ctx, r.db, query, args...)
}

func (r *repository) EmailTaken(ctx context.Context, email string, exceptID int64) (bool, error) {
	q := qb.Select("1").From(usersTableName).Where(sq.Eq{"email": email})
	if exceptID != 0 {
		q = q.Where(sq.NotEq{"id": exceptID})
	}
	return r.exists(ctx, q)
}

func userFilter(q sq.SelectBuilder, f model.UserFilter) sq.SelectBuilder {
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(sq.Or{sq.ILike{"name": p}, sq.ILike{"email": p}})
	}
	if f.Role != "" {
		q = q.Where(sq.Eq{"role": f.Role})
	}
	if f.Grade != 0 {
		q = q.Where(sq.Eq{"grade_level": f.Grade})
	}
	return q
}

func (r *repository) ListUsers(ctx context.Context, f model.UserFilter) (model.ListUsers, error) {
	paging := model.Paging{Page: f.Page, PageSize: model.DefaultPageSize}.Normalize()

	total, err := r.count(ctx, userFilter(qb.Select("count(*)").From(usersTableName), f))
	if err != nil {
		return model.ListUsers{}, err
	}

	sortCol, ok := userSortColumns[f.Sort]
	if !ok {
		sortCol = "created_at"
	}
	query, args, err := userFilter(qb.Select(userColumns...).From(usersTableName), f).
		OrderBy(sortCol+" "+orderDirection(f.Direction), "id").
		Limit(uint64(paging.PageSize)).
		Offset(uint64(paging.Offset())).
		ToSql()
	if err != nil {
		return model.ListUsers{}, err
	}
	users, err := collectAll[model.User](ctx, r.db, query, args...)
	if err != nil {
		return model.ListUsers{}, err
	}
	paging.TotalElements = total
	return model.ListUsers{Paging: paging, Items: users}, nil
}

func (r *repository) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	q := `
update users
    set name = @name, email = @email, password_hash = @password_hash, role = @role,
        grade_level = @grade_level, must_reset_password = @must_reset_password
where id = @id
returning id, name, email, password_hash, role, grade_level, must_reset_password, created_at`
	args := pgx.NamedArgs{
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"password_hash":       user.PasswordHash,
		"role":                user.Role,
		"grade_level":         user.GradeLevel,
		"must_reset_password": user.MustResetPassword,
	}
	updated, err := collectOne[model.User](ctx, r.db, q, args)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return model.User{}, errors.Wrapf(errs.ErrConflict, "email %s already taken", user.Email)
		}
		return model.User{}, errors.Wrapf(err, "user %d", user.ID)
	}
	return updated, nil
}

func (r *repository) DeleteUsers(ctx context.Context, ids []int64) (int64, error) {
	query, args, err := qb.Delete(usersTableName).Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
