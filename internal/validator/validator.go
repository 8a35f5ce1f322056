// Package validator wraps the go-playground validation engine with the
// domain validations used by the mutation gateway, and translates engine
// errors into per-field messages.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "famfin/internal/errors"
)

var (
	engine *validator.Validate
	once   sync.Once
)

var (
	hexColorRegex     = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	installmentsRegex = regexp.MustCompile(`^[0-9]{1,2}x?$`)
)

// Engine returns the shared validation engine with all custom validations
// registered. Field names in errors follow the struct's json tags.
func Engine() *validator.Validate {
	once.Do(func() {
		engine = validator.New()

		engine.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = engine.RegisterValidation("transaction_type", validateTransactionType)
		_ = engine.RegisterValidation("account_type", validateAccountType)
		_ = engine.RegisterValidation("day_of_month", validateDayOfMonth)
		_ = engine.RegisterValidation("installments", validateInstallments)
		_ = engine.RegisterValidation("hex_color", validateHexColor)
	})
	return engine
}

// Check validates a draft struct and returns a VALIDATION_FAILED AppError
// with per-field messages, or nil when the draft is valid.
func Check(draft interface{}) *apperrors.AppError {
	if err := Engine().Struct(draft); err != nil {
		return apperrors.Validation(Fields(err))
	}
	return nil
}

// Fields translates a validation error into messages keyed by field name.
func Fields(err error) map[string]string {
	fields := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fields["_"] = err.Error()
		return fields
	}
	for _, e := range verrs {
		fields[e.Field()] = message(e)
	}
	return fields
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "day_of_month":
		return "must be a day between 1 and 31"
	case "transaction_type":
		return "must be INCOME or EXPENSE"
	case "account_type":
		return "must be CHECKING, SAVINGS or CREDIT_CARD"
	case "installments":
		return "must be an installment count like 3 or 3x"
	case "hex_color":
		return "must be a hex color like #CCFF00"
	default:
		return "is invalid"
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "INCOME", "EXPENSE":
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CHECKING", "SAVINGS", "CREDIT_CARD":
		return true
	}
	return false
}

func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

func validateInstallments(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return installmentsRegex.MatchString(s)
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}
