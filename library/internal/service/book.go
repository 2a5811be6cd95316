package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

const DefaultSubject = "GENERAL"

func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func normalizeBook(in model.CreateBookRequest) model.Book {
	book := model.Book{
		Title:       titleCase(in.Title),
		Author:      titleCase(in.Author),
		Subject:     strings.ToUpper(strings.TrimSpace(in.Subject)),
		Description: strings.TrimSpace(in.Description),
		GradeLevel:  in.GradeLevel,
		Competency:  strings.TrimSpace(in.Competency),
		Type:        in.Type,
		FilePath:    strings.TrimSpace(in.FilePath),
	}
	if book.Subject == "" {
		book.Subject = DefaultSubject
	}
	if book.Type == "" {
		book.Type = model.BookTypePhysical
	}
	return book
}

func (s *Service) CreateBook(ctx context.Context, actor model.Actor, in model.CreateBookRequest) (model.Book, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBooks); err != nil {
		return model.Book{}, err
	}
	book := normalizeBook(in)
	if book.Title == "" || book.Author == "" {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "title and author are required")
	}
	created, err := s.insertBook(ctx, book)
	if err != nil {
		return model.Book{}, err
	}
	s.log.Info("book created", zap.Int64("id", created.ID), zap.String("code", created.BookCode))
	return created, nil
}

func (s *Service) GetBook(ctx context.Context, actor model.Actor, id int64) (model.BookDetails, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return model.BookDetails{}, err
	}
	view, err := s.repo.GetBookView(ctx, id, actor.ID)
	if err != nil {
		return model.BookDetails{}, err
	}
	details := model.BookDetails{BookView: view, BorrowHistory: []model.BorrowHistoryItem{}}
	if s.policy.Allows(actor.Role, model.CapManageBorrows) {
		details.BorrowHistory, err = s.repo.BookHistory(ctx, id)
		if err != nil {
			return model.BookDetails{}, err
		}
	}
	return details, nil
}

func (s *Service) ListBooks(ctx context.Context, actor model.Actor, f model.BookFilter) (model.ListBooks, error) {
	if err := policy.Require(s.policy, actor, model.CapViewLibrary); err != nil {
		return model.ListBooks{}, err
	}
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.ListBooks(ctx, f, actor.ID)
}

func (s *Service) UpdateBook(ctx context.Context, actor model.Actor, id int64, upd model.BookUpdate) (model.Book, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBooks); err != nil {
		return model.Book{}, err
	}
	upd.Title = titleCase(upd.Title)
	upd.Author = titleCase(upd.Author)
	if upd.Title == "" || upd.Author == "" {
		return model.Book{}, errors.Wrap(errs.ErrValidation, "title and author are required")
	}
	if upd.Type == "" {
		upd.Type = model.BookTypePhysical
	}
	return s.repo.UpdateBook(ctx, id, upd)
}

func (s *Service) DeleteBook(ctx context.Context, actor model.Actor, id int64) error {
	n, err := s.DeleteBooks(ctx, actor, []int64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return nil
}

// DeleteBooks removes books together with their requests and logs.
func (s *Service) DeleteBooks(ctx context.Context, actor model.Actor, ids []int64) (int64, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBooks); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, errors.Wrap(errs.ErrValidation, "no books selected")
	}
	var deleted int64
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		if err := tx.DeleteBorrowsByBooks(ctx, ids); err != nil {
			return err
		}
		var err error
		deleted, err = tx.DeleteBooks(ctx, ids)
		return err
	})
	if err != nil {
		return 0, err
	}
	s.log.Info("books deleted", zap.Int64s("ids", ids), zap.Int64("deleted", deleted))
	return deleted, nil
}
