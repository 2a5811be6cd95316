package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

const learningFileReturning = `returning id, teacher_id, title, description, grade_level, file_path, created_at`

func (r *repository) CreateLearningFile(ctx context.Context, f model.LearningFile) (model.LearningFile, error) {
	q := `
insert into learning_files (teacher_id, title, description, grade_level, file_path)
values (@teacher_id, @title, @description, @grade_level, @file_path)
` + learningFileReturning
	created, err := collectOne[model.LearningFile](ctx, r.db, q, pgx.NamedArgs{
		"teacher_id":  f.TeacherID,
		"title":       f.Title,
		"description": f.Description,
		"grade_level": f.GradeLevel,
		"file_path":   f.FilePath,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.LearningFile{}, errors.Wrapf(errs.ErrNotFound, "teacher %d", f.TeacherID)
		}
		return model.LearningFile{}, err
	}
	return created, nil
}

func (r *repository) GetLearningFile(ctx context.Context, id int64) (model.LearningFile, error) {
	query, args, err := qb.Select("id", "teacher_id", "title", "description", "grade_level", "file_path", "created_at").
		From(learningFilesTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.LearningFile{}, err
	}
	f, err := collectOne[model.LearningFile](ctx, r.db, query, args...)
	if err != nil {
		return model.LearningFile{}, errors.Wrapf(err, "learning file %d", id)
	}
	return f, nil
}

func learningFileWhere(q sq.SelectBuilder, lq model.LearningFileQuery) sq.SelectBuilder {
	if lq.Grade != 0 {
		q = q.Where(sq.Eq{"f.grade_level": lq.Grade})
	}
	if lq.TeacherID != 0 {
		q = q.Where(sq.Eq{"f.teacher_id": lq.TeacherID})
	}
	return q
}

func (r *repository) ListLearningFiles(ctx context.Context, lq model.LearningFileQuery) ([]model.LearningFileView, error) {
	q := learningFileWhere(qb.Select(
		"f.id", "f.teacher_id", "f.title", "f.description", "f.grade_level", "f.file_path", "f.created_at",
		"u.name as uploader_name",
	).
		From(learningFilesTableName+" f").
		Join(usersTableName+" u on u.id = f.teacher_id"), lq).
		OrderBy("f.created_at desc", "f.id desc")
	if lq.Limit > 0 {
		q = q.Limit(uint64(lq.Limit))
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	return collectAll[model.LearningFileView](ctx, r.db, query, args...)
}

func (r *repository) LearningFileTitleTaken(ctx context.Context, title string) (bool, error) {
	return r.exists(ctx, qb.Select("1").From(learningFilesTableName).Where(sq.Eq{"title": title}))
}

func (r *repository) UpdateLearningFile(ctx context.Context, id int64, upd model.LearningFileUpdate) (model.LearningFile, error) {
	q := `
update learning_files
    set title = @title, description = @description, grade_level = @grade_level
where id = @id
` + learningFileReturning
	f, err := collectOne[model.LearningFile](ctx, r.db, q, pgx.NamedArgs{
		"id":          id,
		"title":       upd.Title,
		"description": upd.Description,
		"grade_level": upd.GradeLevel,
	})
	if err != nil {
		return model.LearningFile{}, errors.Wrapf(err, "learning file %d", id)
	}
	return f, nil
}

func (r *repository) DeleteLearningFile(ctx context.Context, id int64) error {
	query, args, err := qb.Delete(learningFilesTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(errs.ErrNotFound, "learning file %d", id)
	}
	return nil
}
