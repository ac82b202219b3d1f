package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"banking-client/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	accountNumberRegex = regexp.MustCompile(`^[A-Za-z0-9-]{3,34}$`)
	phoneNumberRegex   = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("phone_number", validatePhoneNumber)

	// amounts are validated through their decimal text
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validator errors into field -> message pairs. Errors
// that are not validation errors are reported under the "request" key.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["request"] = err.Error()
		return fields
	}

	for _, fe := range validationErrs {
		fields[fe.Field()] = describe(fe)
	}
	return fields
}

// FirstMessage is the human readable text of the first failing field
func FirstMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("%s %s", fe.Field(), describe(fe))
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "account_number":
		return "must be a valid account number"
	case "account_type":
		return "must be Savings, Checking or Fixed Deposit"
	case "positive_amount":
		return "must be greater than 0"
	case "phone_number":
		return "must be a valid phone number"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Custom validation functions

// validateAccountNumber accepts the alphanumeric numbers the ledger issues (ACC001, 1012345678)
func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberRegex.MatchString(fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	if d, ok := fl.Field().Interface().(decimal.Decimal); ok {
		return d.IsPositive()
	}

	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	default:
		return false
	}
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.IsValidAccountType(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeTransactionType(fl.Field().String())
	return ok
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	return phoneNumberRegex.MatchString(phone)
}
