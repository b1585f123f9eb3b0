// Package validator adapts go-playground/validator to Echo's Validator
// interface, with the storefront's domain-specific rules registered.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// gstPattern matches a 15-character Indian GSTIN: state code, PAN,
	// entity number, the fixed Z, and a checksum character.
	gstPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

	// mobilePattern matches a 10-digit Indian mobile number.
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom rules registered.
func New() *RequestValidator {
	validate := validator.New()

	// Registration cannot fail for a non-nil func; ignore the error like
	// the library's own examples do.
	_ = validate.RegisterValidation("gst", func(fl validator.FieldLevel) bool {
		return gstPattern.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})

	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
