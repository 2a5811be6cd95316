package model

import "time"

type User struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	PasswordHash      string    `json:"-" db:"password_hash"`
	Role              Role      `json:"role" db:"role"`
	GradeLevel        *int      `json:"gradeLevel" db:"grade_level"`
	MustResetPassword bool      `json:"mustResetPassword" db:"must_reset_password"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Name       string `json:"name" validate:"notblank,max=255"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       Role   `json:"role" validate:"required,oneof=student teacher librarian"`
	GradeLevel *int   `json:"gradeLevel" validate:"omitempty,min=1,max=12"`
}

// UserUpdate is the allow-list of mutable user fields. The email is
// rebuilt from EmailPrefix and the role.
type UserUpdate struct {
	Name        string `json:"name" validate:"notblank,max=255"`
	EmailPrefix string `json:"emailPrefix" validate:"required,max=50,emailprefix"`
	Role        Role   `json:"role" validate:"required,oneof=student teacher librarian"`
	GradeLevel  *int   `json:"gradeLevel" validate:"omitempty,min=1,max=12"`
	Password    string `json:"password" validate:"omitempty,min=8"`
}

type UserFilter struct {
	Search    string        `query:"search"`
	Role      Role          `query:"role" validate:"omitempty,oneof=student teacher librarian"`
	Grade     int           `query:"grade" validate:"omitempty,min=1,max=12"`
	Sort      string        `query:"sort" validate:"omitempty,oneof=name email role grade_level created_at"`
	Direction SortDirection `query:"direction" validate:"omitempty,oneof=asc desc"`
	Page      int           `query:"page" validate:"omitempty,min=1"`
}

type ListUsers struct {
	Paging `json:",inline"`
	Items  []User `json:"items"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,min=1"`
}

type AuthorizeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthorizeResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	User        User      `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}
