package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single failed rule on a single field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all failed rules for a request
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// HasErrors reports whether any rule failed
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// ToValidationErrors converts validator library errors to our error type
func ToValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{
			Field:   "request",
			Message: err.Error(),
			Rule:    "struct",
		}}
	}

	errors := make(ValidationErrors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		errors = append(errors, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageForTag(fe),
			Value:   fe.Value(),
			Rule:    fe.Tag(),
		})
	}
	return errors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "language_code":
		return "must be a valid language code"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
