// Package policy holds the role to capability table.
package policy

import (
	"github.com/pkg/errors"

	"github.com/Astemirdum/school-library/library/internal/errs"
	"github.com/Astemirdum/school-library/library/internal/model"
)

type Policy interface {
	Allows(role model.Role, c model.Capability) bool
}

var table = map[model.Capability][]model.Role{
	model.CapViewLibrary:         {model.RoleStudent, model.RoleTeacher, model.RoleLibrarian},
	model.CapManageBooks:         {model.RoleLibrarian},
	model.CapManageUsers:         {model.RoleLibrarian},
	model.CapManageBorrows:       {model.RoleLibrarian},
	model.CapDeleteLearningFiles: {model.RoleLibrarian},
	model.CapBorrowBooks:         {model.RoleStudent, model.RoleTeacher},
	model.CapUploadFiles:         {model.RoleTeacher, model.RoleLibrarian},
}

// CapabilitiesFor returns a fresh set; callers may mutate it.
func CapabilitiesFor(role model.Role) map[model.Capability]struct{} {
	out := make(map[model.Capability]struct{})
	for c, roles := range table {
		for _, r := range roles {
			if r == role {
				out[c] = struct{}{}
			}
		}
	}
	return out
}

type Static struct{}

func (Static) Allows(role model.Role, c model.Capability) bool {
	_, ok := CapabilitiesFor(role)[c]
	return ok
}

// Require returns a wrapped errs.ErrForbidden when the actor lacks c.
func Require(p Policy, a model.Actor, c model.Capability) error {
	if !p.Allows(a.Role, c) {
		return errors.Wrapf(errs.ErrForbidden, "%s cannot %s", a.Role, c)
	}
	return nil
}
