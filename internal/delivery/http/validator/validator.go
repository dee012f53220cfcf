// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "editais/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo's c.Validate calls.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as the
// generic validation error with the field details attached.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
