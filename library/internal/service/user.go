package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/library/internal/policy"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

const minPasswordLen = 8

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", errors.Wrapf(errs.ErrValidation, "password must be at least %d characters", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(hash), nil
}

// gradeFor enforces that only students carry a grade.
func gradeFor(role model.Role, grade *int) (*int, error) {
	if role != model.RoleStudent {
		return nil, nil
	}
	if grade == nil || *grade < 1 || *grade > 12 {
		return nil, errors.Wrap(errs.ErrValidation, "grade level is required for students")
	}
	g := *grade
	return &g, nil
}

func (s *Service) ListUsers(ctx context.Context, actor model.Actor, f model.UserFilter) (model.ListUsers, error) {
	if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
		return model.ListUsers{}, err
	}
	f.Search = strings.TrimSpace(f.Search)
	return s.repo.ListUsers(ctx, f)
}

func (s *Service) GetUser(ctx context.Context, actor model.Actor, id int64) (model.User, error) {
	if actor.ID != id {
		if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
			return model.User{}, err
		}
	}
	return s.repo.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, actor model.Actor, in model.CreateUserRequest) (model.User, error) {
	if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
		return model.User{}, err
	}
	if !in.Role.Valid() {
		return model.User{}, errors.Wrapf(errs.ErrValidation, "unknown role %q", in.Role)
	}
	grade, err := gradeFor(in.Role, in.GradeLevel)
	if err != nil {
		return model.User{}, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return model.User{}, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	taken, err := s.repo.EmailTaken(ctx, email, 0)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		return model.User{}, errors.Wrapf(errs.ErrConflict, "email %s already taken", email)
	}
	user, err := s.repo.CreateUser(ctx, model.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		GradeLevel:   grade,
	})
	if err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int64("id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// UpdateUser applies the allow-listed fields. The email is rebuilt from
// the prefix and the (possibly new) role.
func (s *Service) UpdateUser(ctx context.Context, actor model.Actor, id int64, upd model.UserUpdate) (model.User, error) {
	if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
		return model.User{}, err
	}
	if !upd.Role.Valid() {
		return model.User{}, errors.Wrapf(errs.ErrValidation, "unknown role %q", upd.Role)
	}
	grade, err := gradeFor(upd.Role, upd.GradeLevel)
	if err != nil {
		return model.User{}, err
	}
	prefix := strings.TrimSpace(upd.EmailPrefix)
	if prefix == "" || strings.Trim(prefix, ".") == "" {
		return model.User{}, errors.Wrap(errs.ErrValidation, "email prefix is required")
	}

	var updated model.User
	err = s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		user, err := tx.GetUser(ctx, id)
		if err != nil {
			return err
		}
		email := emailAddress(prefix, upd.Role, s.emailDomain)
		taken, err := tx.EmailTaken(ctx, email, id)
		if err != nil {
			return err
		}
		if taken {
			return errors.Wrapf(errs.ErrConflict, "email %s already taken", email)
		}
		user.Name = strings.TrimSpace(upd.Name)
		user.Email = email
		user.Role = upd.Role
		user.GradeLevel = grade
		if upd.Password != "" {
			if user.PasswordHash, err = hashPassword(upd.Password); err != nil {
				return err
			}
		}
		updated, err = tx.UpdateUser(ctx, user)
		return err
	})
	if err != nil {
		return model.User{}, err
	}
	return updated, nil
}

func (s *Service) DeleteUser(ctx context.Context, actor model.Actor, id int64) error {
	if id == actor.ID {
		return errors.Wrap(errs.ErrForbidden, "you cannot delete your own account")
	}
	n, err := s.DeleteUsers(ctx, actor, []int64{id})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrNotFound, "user %d", id)
	}
	return nil
}

// DeleteUsers removes users with their borrow data and uploads. The
// caller's own id is silently dropped from ids.
func (s *Service) DeleteUsers(ctx context.Context, actor model.Actor, ids []int64) (int64, error) {
	if err := policy.Require(s.policy, actor, model.CapManageUsers); err != nil {
		return 0, err
	}
	targets := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != actor.ID {
			targets = append(targets, id)
		}
	}
	if len(targets) == 0 {
		return 0, nil
	}

	var (
		deleted int64
		orphans []string
	)
	err := s.repo.WithTx(ctx, func(tx libraryRepo.Repository) error {
		for _, id := range targets {
			files, err := tx.ListLearningFiles(ctx, model.LearningFileQuery{TeacherID: id})
			if err != nil {
				return err
			}
			for _, f := range files {
				orphans = append(orphans, f.FilePath)
				if err := tx.DeleteLearningFile(ctx, f.ID); err != nil {
					return err
				}
			}
		}
		if err := tx.DeleteBorrowsByUsers(ctx, targets); err != nil {
			return err
		}
		var err error
		deleted, err = tx.DeleteUsers(ctx, targets)
		return err
	})
	if err != nil {
		return 0, err
	}
	for _, p := range orphans {
		s.removeBlob(ctx, p)
	}
	s.log.Info("users deleted", zap.Int64s("ids", targets), zap.Int64("deleted", deleted))
	return deleted, nil
}
