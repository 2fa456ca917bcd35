package common

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/fantasy-manager-go/internal/domain/shared"
)

var requestValidator = validator.New()

// ValidateRequest checks a command's `validate` tags and reports the first
// failing field as a *shared.ValidationError
func ValidateRequest(request interface{}) error {
	err := requestValidator.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	return shared.NewValidationError(toSnakeCase(first.Field()), describeTag(first))
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min", "gte":
		return "must be at least " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// toSnakeCase keeps acronyms together: "TeamID" becomes "team_id"
func toSnakeCase(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		isUpper := r >= 'A' && r <= 'Z'
		if isUpper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevLower = !isUpper
	}
	return b.String()
}
