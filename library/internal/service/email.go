package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
	libraryRepo "github.com/Astemirdum/school-library/library/internal/repository"
)

const maxEmailSuffix = 1000

// namePart lowercases and transliterates s and keeps only [a-z0-9].
func namePart(s string) string {
	return strings.ReplaceAll(slug.Make(strings.ToLower(strings.TrimSpace(s))), "-", "")
}

// EmailBase builds first.last, first.m.last, or firstMI.last when there
// are two or more middle names (MI being their initials).
func EmailBase(first, middle, last string) string {
	f, l := namePart(first), namePart(last)
	var initials []string
	for _, m := range strings.Fields(middle) {
		if p := namePart(m); p != "" {
			initials = append(initials, p[:1])
		}
	}
	switch {
	case len(initials) == 0:
		return f + "." + l
	case len(initials) == 1:
		return f + "." + initials[0] + "." + l
	default:
		return f + strings.Join(initials, "") + "." + l
	}
}

func emailAddress(base string, role model.Role, domain string) string {
	return fmt.Sprintf("%s@%s.%s", base, role, domain)
}

// uniqueEmail probes base, base2, base3, ... until one is free.
func uniqueEmail(ctx context.Context, repo libraryRepo.Repository, base string, role model.Role, domain string, exceptID int64) (string, error) {
	if base == "" || strings.HasPrefix(base, ".") || strings.HasSuffix(base, ".") {
		return "", errors.Wrapf(errs.ErrValidation, "cannot build an email from %q", base)
	}
	for n := 1; n <= maxEmailSuffix; n++ {
		candidate := base
		if n > 1 {
			candidate = fmt.Sprintf("%s%d", base, n)
		}
		email := emailAddress(candidate, role, domain)
		taken, err := repo.EmailTaken(ctx, email, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return email, nil
		}
	}
	return "", errors.Wrapf(errs.ErrConflict, "no free email for %s", base)
}
