package validate

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailPrefixRe = regexp.MustCompile(`^[a-z0-9.]+$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("emailprefix", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return emailPrefixRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool { //nolint:errcheck
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
