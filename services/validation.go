package services

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegistrationInput is what the sign-up form submits. It is validated
// locally, before any network call is attempted.
type RegistrationInput struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// LoginInput is what the login form submits.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

var (
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrWeakPassword     = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordRequired = errors.New("password is required")
)

// ValidateRegistration checks the sign-up form and returns the first
// problem found as a user-presentable error.
func ValidateRegistration(in RegistrationInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch first := verrs[0]; first.Field() {
	case "Name":
		return ErrNameRequired
	case "Email":
		return ErrInvalidEmail
	case "Password":
		return ErrWeakPassword
	case "ConfirmPassword":
		return ErrPasswordMismatch
	default:
		return err
	}
}

// ValidateLogin checks the login form.
func ValidateLogin(in LoginInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch first := verrs[0]; first.Field() {
	case "Email":
		return ErrInvalidEmail
	case "Password":
		return ErrPasswordRequired
	default:
		return err
	}
}
