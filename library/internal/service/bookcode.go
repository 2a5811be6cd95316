package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

const maxCodeSequence = 99999

// CodePrefix builds the ZZSSS part of a book code: the two-digit grade and
// the first three letters of the upper-cased subject, padded with X.
func CodePrefix(grade int, subject string) (string, error) {
	if grade < 1 || grade > 12 {
		return "", errors.Wrapf(errs.ErrValidation, "grade %d out of range", grade)
	}
	var letters []rune
	for _, r := range strings.ToUpper(subject) {
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	if len(letters) == 0 {
		return "", errors.Wrapf(errs.ErrValidation, "subject %q has no letters", subject)
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return fmt.Sprintf("%02d%s", grade, string(letters)), nil
}

// formatBookCode renders the seq-th code of prefix.
func formatBookCode(prefix string, seq int) (string, error) {
	if seq < 1 {
		return "", errors.Errorf("invalid sequence %d for prefix %s", seq, prefix)
	}
	if seq > maxCodeSequence {
		return "", errors.Wrapf(errs.ErrOutOfRange, "prefix %s", prefix)
	}
	return fmt.Sprintf("%s%05d", prefix, seq), nil
}

// generateBookCode allocates the next code for grade and subject from the
// per-prefix sequence. It must run inside repo.WithTx: an exhausted prefix
// rolls the bump back.
func generateBookCode(ctx context.Context, repo libraryRepo.Repository, grade int, subject string) (string, error) {
	prefix, err := CodePrefix(grade, subject)
	if err != nil {
		return "", err
	}
	seq, err := repo.NextCodeSequence(ctx, prefix)
	if err != nil {
		return "", err
	}
	return formatBookCode(prefix, seq)
}

// insertBook assigns a code and stores the book in one transaction. The
// unique index on book_code stays as a backstop and surfaces as ErrConflict.
func (s *Service) insertBook(ctx context.Context, book model.Book) (model.Book, error) {
	var created model.Book
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		code, err := generateBookCode(ctx, tx, book.GradeLevel, book.Subject)
		if err != nil {
			return err
		}
		book.BookCode = code
		created, err = tx.CreateBook(ctx, book)
		return err
	})
	if err != nil {
		return model.Book{}, err
	}
	s.log.Debug("book code issued", zap.String("code", created.BookCode))
	return created, nil
}
