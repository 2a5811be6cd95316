package model

import (
	"strings"
	"time"
)

const DefaultPageSize = 10

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

// Normalize clamps page/size to sane values.
func (p Paging) Normalize() Paging {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = DefaultPageSize
	}
	return p
}

func (p Paging) Offset() int { return (p.Page - 1) * p.PageSize }

type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleLibrarian Role = "librarian"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleLibrarian:
		return true
	}
	return false
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	ID   int64
	Role Role
}

type Capability string

const (
	CapViewLibrary         Capability = "view-library"
	CapManageBooks         Capability = "manage-books"
	CapManageUsers         Capability = "manage-users"
	CapManageBorrows       Capability = "manage-borrows"
	CapBorrowBooks         Capability = "borrow-books"
	CapUploadFiles         Capability = "upload-files"
	CapDeleteLearningFiles Capability = "delete-learning-files"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Date is a calendar date carried as "2006-01-02" in JSON.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

type ImportResult struct {
	Imported    int           `json:"imported"`
	Skipped     int           `json:"skipped"`
	Credentials []Credentials `json:"credentials,omitempty"`
}

type Credentials struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	TemporaryPassword string `json:"temporaryPassword"`
}
