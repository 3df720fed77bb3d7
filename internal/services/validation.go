package services

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-vacancies/internal/passwords"
)

// RootField keys errors that concern the payload as a whole
const RootField = "__root__"

const (
	msgRequired         = "field required"
	msgInvalidURL       = "invalid or missing URL scheme"
	msgPasswordWeak     = "Password too weak. Password must contain at least eight characters, at least one number and both lower and uppercase letters, and special characters."
	msgPasswordMismatch = "Password mismatch."
	msgInvalidValue     = "invalid value"
)

// ValidationError maps field names to human readable messages
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return passwords.IsStrong(fl.Field().String())
	})

	return v
}

// validateStruct runs struct tag validation and converts failures to *ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "http_url":
		return msgInvalidURL
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
	case "password":
		return msgPasswordWeak
	case "eqfield":
		return msgPasswordMismatch
	default:
		return msgInvalidValue
	}
}
