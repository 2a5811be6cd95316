package service

import (
	"context"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/importer"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
)

const (
	tempPasswordLen = 12
	emailRetries    = 3
)

func readSheet(r io.Reader, filename string) ([][]string, error) {
	rows, err := importer.ReadRows(r, filename)
	if err != nil {
		return nil, errors.Wrap(errs.ErrValidation, err.Error())
	}
	return rows, nil
}

// ImportBooks creates Quantity books per valid row, each with its own
// code. Bad rows are counted as skipped; the import itself only fails on
// unreadable input or a cancelled context.
func (s *Service) ImportBooks(ctx context.Context, actor model.Actor, r io.Reader, filename string) (model.ImportResult, error) {
	if err := policy.Require(s.policy, actor, model.CapManageBooks); err != nil {
		return model.ImportResult{}, err
	}
	rows, err := readSheet(r, filename)
	if err != nil {
		return model.ImportResult{}, err
	}

	var res model.ImportResult
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		br, ok := importer.ParseBookRow(row)
		if !ok {
			res.Skipped++
			continue
		}
		book := normalizeBook(model.CreateBookRequest{
			Title:       br.Title,
			Author:      br.Author,
			Subject:     br.Subject,
			Description: br.Description,
			GradeLevel:  br.GradeLevel,
			Type:        model.BookTypePhysical,
		})
		for n := 0; n < br.Quantity; n++ {
			if _, err := s.insertBook(ctx, book); err != nil {
				s.log.Warn("import book row", zap.Int("row", i+2), zap.Error(err))
				res.Skipped++
				continue
			}
			res.Imported++
		}
	}
	s.log.Info("books imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}

func tempPassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:tempPasswordLen]
}

// ImportUsers creates one account per valid row with a generated email and
// a temporary password that must be changed on first login.
func (s *Service) ImportUsers(ctx context.Context, actor model.Actor, r io.Reader, filename string) (model.ImportResult, error) {
	if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
		return model.ImportResult{}, err
	}
	rows, err := readSheet(r, filename)
	if err != nil {
		return model.ImportResult{}, err
	}

	res := model.ImportResult{Credentials: []model.Credentials{}}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		ur, ok := importer.ParseUserRow(row)
		if !ok {
			res.Skipped++
			continue
		}
		cred, err := s.importUser(ctx, ur)
		if err != nil {
			s.log.Warn("import user row", zap.Int("row", i+2), zap.Error(err))
			res.Skipped++
			continue
		}
		res.Imported++
		res.Credentials = append(res.Credentials, cred)
	}
	s.log.Info("users imported", zap.Int("imported", res.Imported), zap.Int("skipped", res.Skipped))
	return res, nil
}

func (s *Service) importUser(ctx context.Context, ur importer.UserRow) (model.Credentials, error) {
	role := model.Role(ur.Role)
	password := tempPassword()
	hash, err := hashPassword(password)
	if err != nil {
		return model.Credentials{}, err
	}
	base := EmailBase(ur.FirstName, ur.MiddleName, ur.LastName)

	for attempt := 0; attempt < emailRetries; attempt++ {
		email, err := uniqueEmail(ctx, s.repo, base, role, s.emailDomain, 0)
		if err != nil {
			return model.Credentials{}, err
		}
		user, err := s.repo.CreateUser(ctx, model.User{
			Name:              ur.FullName(),
			Email:             email,
			PasswordHash:      hash,
			Role:              role,
			GradeLevel:        ur.GradeLevel,
			MustResetPassword: true,
		})
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return model.Credentials{}, err
		}
		return model.Credentials{Name: user.Name, Email: user.Email, TemporaryPassword: password}, nil
	}
	return model.Credentials{}, errors.Wrapf(errs.ErrConflict, "email for %s", base)
}
