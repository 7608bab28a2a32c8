package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// RegisterForm is the body of POST /register. Validation belongs to the
// registration view, so it carries no tags.
type RegisterForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginForm is the body of POST /login.
type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}
