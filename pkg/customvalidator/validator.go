package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var phoneRegexp = regexp.MustCompile(`^8\d{10}$`)

func isLocalPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegexp.MatchString(fl.Field().String())
}

func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("local_phone", isLocalPhoneNumber)
}

// EchoValidator адаптирует validator.Validate под интерфейс echo.Validator.
type EchoValidator struct {
	validator *validator.Validate
}

func NewEchoValidator(v *validator.Validate) *EchoValidator {
	return &EchoValidator{validator: v}
}

func (cv *EchoValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
