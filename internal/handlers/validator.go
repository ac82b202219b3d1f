package handlers

import (
	"banking-client/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator with the engine's validation rules
type CustomValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
