// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator wraps a playground validator instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates an Echo-compatible validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as 400s.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
