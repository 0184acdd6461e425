package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	field   string
	message string
}

// extractFieldErrors flattens validator errors into field/message pairs so
// responses never expose struct internals.
func extractFieldErrors(err error) []fieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "invalid value"
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = "below minimum of " + fe.Param()
		case "max":
			msg = "above maximum of " + fe.Param()
		}
		out = append(out, fieldError{field: fe.StructField(), message: msg})
	}
	return out
}
