package service

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	"github.com/Astemirdum/school-library/pkg/auth"
)

func identityOf(u model.User) auth.Identity {
	return auth.Identity{
		UserID:    u.ID,
		Role:      string(u.Role),
		Email:     u.Email,
		MustReset: u.MustResetPassword,
	}
}

// Authorize checks credentials and issues an access token.
func (s *Service) Authorize(ctx context.Context, in model.AuthorizeRequest) (model.AuthorizeResponse, error) {
	if s.tokens == nil {
		return model.AuthorizeResponse{}, errors.New("token issuer is not configured")
	}
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthorizeResponse{}, errs.ErrUnauthorized
		}
		return model.AuthorizeResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return model.AuthorizeResponse{}, errs.ErrUnauthorized
	}
	token, exp, err := s.tokens.Issue(identityOf(user))
	if err != nil {
		return model.AuthorizeResponse{}, errors.Wrap(err, "issue token")
	}
	return model.AuthorizeResponse{AccessToken: token, ExpiresAt: exp, User: user}, nil
}

// ChangePassword replaces the actor's password and clears the reset flag.
// A fresh token is returned since the old one still carries the flag.
func (s *Service) ChangePassword(ctx context.Context, actor model.Actor, in model.ChangePasswordRequest) (model.AuthorizeResponse, error) {
	user, err := s.repo.GetUser(ctx, actor.ID)
	if err != nil {
		return model.AuthorizeResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return model.AuthorizeResponse{}, errs.ErrUnauthorized
	}
	if in.NewPassword == in.CurrentPassword {
		return model.AuthorizeResponse{}, errors.Wrap(errs.ErrValidation, "new password must differ from the current one")
	}
	if user.PasswordHash, err = hashPassword(in.NewPassword); err != nil {
		return model.AuthorizeResponse{}, err
	}
	user.MustResetPassword = false
	if user, err = s.repo.UpdateUser(ctx, user); err != nil {
		return model.AuthorizeResponse{}, err
	}
	resp := model.AuthorizeResponse{User: user}
	if s.tokens != nil {
		if resp.AccessToken, resp.ExpiresAt, err = s.tokens.Issue(identityOf(user)); err != nil {
			return model.AuthorizeResponse{}, errors.Wrap(err, "issue token")
		}
	}
	return resp, nil
}
