package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError is one user-facing validation failure, keyed by the wire field
// name (see RegisterTagNameFunc in RegisterValidators).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatFieldErrors converts a binding/validation error into per-field
// {field, message} pairs for 400 responses. Non-validator errors collapse to
// a single generic entry so malformed JSON never leaks parser internals.
func FormatFieldErrors(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Message: "Request body is malformed"}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: messageForTag(e),
		})
	}
	return out
}

func messageForTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	case "valid_name":
		return "Contains characters that are not allowed in a name"
	case "valid_phone":
		return "Must be a valid phone number (digits, optional leading +)"
	case "no_emoji":
		return "Emoji characters are not allowed"
	case "future_date":
		return "Must be a date in YYYY-MM-DD format, today or later"
	default:
		return fmt.Sprintf("Failed %s validation", e.Tag())
	}
}
