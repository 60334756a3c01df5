// Package validation wraps go-playground/validator with a shared instance
// and converts its field errors into apperrors.ValidationError, keyed by the
// JSON name of each field.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"movie-catalog/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s and returns the failing fields, or nil when s is valid.
// The result is never a non-nil interface wrapping a nil pointer.
func Struct(s any) *apperrors.ValidationError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("body", "invalid request body")
	}

	result := &apperrors.ValidationError{}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), message(fe))
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
