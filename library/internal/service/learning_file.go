package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

const MaxLearningFileSize = 50 << 20

var learningFileExts = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".ppt": {}, ".pptx": {},
	".txt": {}, ".jpg": {}, ".png": {},
}

type Download struct {
	URL      string
	FileName string
}

func checkFileGrade(grade int) error {
	if grade < model.MinFileGrade || grade > model.MaxFileGrade {
		return errors.Wrapf(errs.ErrValidation, "grade level must be between %d and %d", model.MinFileGrade, model.MaxFileGrade)
	}
	return nil
}

// canManageFile reports whether actor may edit or delete f.
func (s *Service) canManageFile(actor model.Actor, f model.LearningFile) bool {
	return f.TeacherID == actor.ID || s.policy.Allows(actor.Role, model.CapDeleteLearningFiles)
}

// studentGrade returns the actor's grade when the actor is a student.
func (s *Service) studentGrade(ctx context.Context, actor model.Actor) (int, bool, error) {
	if actor.Role != model.RoleStudent {
		return 0, false, nil
	}
	user, err := s.repo.GetUser(ctx, actor.ID)
	if err != nil {
		return 0, false, err
	}
	if user.GradeLevel == nil {
		return 0, true, nil
	}
	return *user.GradeLevel, true, nil
}

func (s *Service) ListLearningFiles(ctx context.Context, actor model.Actor, f model.LearningFileFilter) ([]model.LearningFileView, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return nil, err
	}
	q := model.LearningFileQuery{Grade: f.Grade}
	grade, isStudent, err := s.studentGrade(ctx, actor)
	if err != nil {
		return nil, err
	}
	if isStudent {
		if grade == 0 {
			return []model.LearningFileView{}, nil
		}
		q.Grade = grade
	}
	files, err := s.repo.ListLearningFiles(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range files {
		files[i].URL = s.blobURL(files[i].FilePath)
		files[i].CanDelete = s.canManageFile(actor, files[i].LearningFile)
	}
	return files, nil
}

// titleLockKey serialises uploads sharing a base title, so the dedupe
// check and the insert see each other.
func titleLockKey(title string) string {
	return "learning_files:title:" + title
}

// uniqueTitle returns title, or "title (n)" for the smallest free n.
func uniqueTitle(ctx context.Context, repo libraryRepo.Repository, title string) (string, error) {
	candidate := title
	for n := 1; ; n++ {
		taken, err := repo.LearningFileTitleTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s (%d)", title, n)
	}
}

// UploadLearningFile stores the blob first, then the row. A failed insert
// removes the blob again.
func (s *Service) UploadLearningFile(ctx context.Context, actor model.Actor, in model.UploadLearningFile) (model.LearningFile, error) {
	if err := policy.Require(s.policy, actor, model.CapUploadFiles); err != nil {
		return model.LearningFile{}, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.LearningFile{}, errors.Wrap(errs.ErrValidation, "title is required")
	}
	if err := checkFileGrade(in.GradeLevel); err != nil {
		return model.LearningFile{}, err
	}
	if len(in.Data) == 0 {
		return model.LearningFile{}, errors.Wrap(errs.ErrValidation, "file is empty")
	}
	if len(in.Data) > MaxLearningFileSize {
		return model.LearningFile{}, errors.Wrap(errs.ErrValidation, "file exceeds 50MB")
	}
	if _, ok := learningFileExts[strings.ToLower(path.Ext(in.FileName))]; !ok {
		return model.LearningFile{}, errors.Wrapf(errs.ErrValidation, "file type %q is not allowed", path.Ext(in.FileName))
	}
	if s.blobs == nil {
		return model.LearningFile{}, errors.New("blob store is not configured")
	}

	blobPath, err := s.blobs.Store(ctx, learningFilesDir, in.FileName, in.Data)
	if err != nil {
		return model.LearningFile{}, errors.Wrap(err, "store blob")
	}

	var created model.LearningFile
	err = s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		if err := tx.AdvisoryLock(ctx, titleLockKey(title)); err != nil {
			return err
		}
		unique, err := uniqueTitle(ctx, tx, title)
		if err != nil {
			return err
		}
		created, err = tx.CreateLearningFile(ctx, model.LearningFile{
			TeacherID:   actor.ID,
			Title:       unique,
			Description: strings.TrimSpace(in.Description),
			GradeLevel:  in.GradeLevel,
			FilePath:    blobPath,
		})
		return err
	})
	if err != nil {
		s.removeBlob(ctx, blobPath)
		return model.LearningFile{}, err
	}
	s.log.Info("learning file uploaded", zap.Int64("id", created.ID), zap.String("path", blobPath))
	return created, nil
}

func (s *Service) DownloadLearningFile(ctx context.Context, actor model.Actor, id int64) (Download, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return Download{}, err
	}
	f, err := s.repo.GetLearningFile(ctx, id)
	if err != nil {
		return Download{}, err
	}
	grade, isStudent, err := s.studentGrade(ctx, actor)
	if err != nil {
		return Download{}, err
	}
	if isStudent && grade != f.GradeLevel {
		return Download{}, errors.Wrap(errs.ErrForbidden, "file is not for your grade")
	}
	if f.FilePath == "" || s.blobs == nil {
		return Download{}, errors.Wrapf(errs.ErrNotFound, "file of learning file %d", id)
	}
	ok, err := s.blobs.Exists(ctx, f.FilePath)
	if err != nil {
		return Download{}, err
	}
	if !ok {
		return Download{}, errors.Wrapf(errs.ErrNotFound, "file of learning file %d", id)
	}
	return Download{
		URL:      s.blobs.URL(f.FilePath),
		FileName: f.Title + path.Ext(f.FilePath),
	}, nil
}

func (s *Service) UpdateLearningFile(ctx context.Context, actor model.Actor, id int64, upd model.LearningFileUpdate) (model.LearningFile, error) {
	upd.Title = strings.TrimSpace(upd.Title)
	upd.Description = strings.TrimSpace(upd.Description)
	if upd.Title == "" {
		return model.LearningFile{}, errors.Wrap(errs.ErrValidation, "title is required")
	}
	if err := checkFileGrade(upd.GradeLevel); err != nil {
		return model.LearningFile{}, err
	}

	var updated model.LearningFile
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		f, err := tx.GetLearningFile(ctx, id)
		if err != nil {
			return err
		}
		if !s.canManageFile(actor, f) {
			return errors.Wrap(errs.ErrForbidden, "only the uploader or a librarian can edit this file")
		}
		updated, err = tx.UpdateLearningFile(ctx, id, upd)
		return err
	})
	return updated, err
}

func (s *Service) DeleteLearningFile(ctx context.Context, actor model.Actor, id int64) error {
	var blobPath string
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		f, err := tx.GetLearningFile(ctx, id)
		if err != nil {
			return err
		}
		if !s.canManageFile(actor, f) {
			return errors.Wrap(errs.ErrForbidden, "only the uploader or a librarian can delete this file")
		}
		blobPath = f.FilePath
		return tx.DeleteLearningFile(ctx, id)
	})
	if err != nil {
		return err
	}
	s.removeBlob(ctx, blobPath)
	return nil
}

func (s *Service) blobURL(p string) string {
	if s.blobs == nil || p == "" {
		return ""
	}
	return s.blobs.URL(p)
}

// removeBlob is best effort: the row is already gone.
func (s *Service) removeBlob(ctx context.Context, p string) {
	if s.blobs == nil || p == "" {
		return
	}
	if _, err := s.blobs.Delete(ctx, p); err != nil {
		s.log.Warn("delete blob", zap.String("path", p), zap.Error(err))
	}
}
