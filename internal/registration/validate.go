package registration

import (
	"errors"
	"regexp"
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password the form accepts.
const MinPasswordLength = 6

// Code identifies which local check rejected the form.
type Code string

const (
	EmptyEmail         Code = "EmptyEmail"
	InvalidEmailFormat Code = "InvalidEmailFormat"
	PasswordTooShort   Code = "PasswordTooShort"
)

var messages = map[Code]string{
	EmptyEmail:         "Email is required",
	InvalidEmailFormat: "Enter a valid email",
	PasswordTooShort:   "Password must be at least 6 characters",
}

// ValidationError is a client error: a failure detected before any call to
// the authentication service.
type ValidationError struct {
	Code Code
}

func (e *ValidationError) Error() string {
	return messages[e.Code]
}

// looseEmail is a syntactic check only: something@something.something with
// no whitespace or extra '@'. Whitespace is the browser's set: ASCII spaces,
// \v, the Unicode separators and U+FEFF.
var looseEmail = regexp.MustCompile(`^` + emailPart + `+@` + emailPart + `+\.` + emailPart + `+$`)

const emailPart = `[^@\s\v\p{Z}\x{FEFF}]`

// utf16Len counts UTF-16 code units, the length a browser reports.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// credentials is the shape validated by the package validator. Field order
// matters: errors are reported email first.
type credentials struct {
	Email    string `validate:"required,looseemail"`
	Password string `validate:"utf16min=6"`
}

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

func init() {
	_ = validatorInstance.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	_ = validatorInstance.RegisterValidation("utf16min", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf16Len(fl.Field().String()) >= n
	}, true)
}

// Validate runs the local checks in order and returns the first failure as a
// *ValidationError, or nil when the form may be submitted.
func Validate(email, password string) error {
	err := validatorInstance.Struct(credentials{Email: email, Password: password})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	switch {
	case fe.Field() == "Email" && fe.Tag() == "required":
		return &ValidationError{Code: EmptyEmail}
	case fe.Field() == "Email":
		return &ValidationError{Code: InvalidEmailFormat}
	default:
		return &ValidationError{Code: PasswordTooShort}
	}
}
