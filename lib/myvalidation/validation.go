// Package myvalidation validates request structs with struct tags and reports failures as invalid input.
package myvalidation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/danudara/storefront/lib/myerrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tagName := range []string{"json", "form"} {
			tag := strings.SplitN(f.Tag.Get(tagName), ",", 2)[0]
			if tag != "" && tag != "-" {
				return tag
			}
		}
		return f.Name
	})
	// money is compared as a float; precision beyond that is irrelevant for bounds checks
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Struct returns nil or an invalid-input error listing every offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return myerrors.NewInvalidInputError(err)
	}

	messages := []string{}
	for _, fieldErr := range validationErrors {
		messages = append(messages, fmt.Sprintf("%s %s", fieldErr.Field(), message(fieldErr)))
	}
	sort.Strings(messages)
	return myerrors.NewInvalidInputError(&FieldsError{
		Fields:   fieldNames(validationErrors),
		Missing:  missingFieldNames(validationErrors),
		Messages: messages,
	})
}

// FieldsError names the fields that failed validation; Missing is the subset that was absent or blank.
type FieldsError struct {
	Fields   []string
	Missing  []string
	Messages []string
}

func (e *FieldsError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

func fieldNames(errs validator.ValidationErrors) []string {
	names := []string{}
	for _, fieldErr := range errs {
		names = append(names, fieldErr.Field())
	}
	sort.Strings(names)
	return names
}

func missingFieldNames(errs validator.ValidationErrors) []string {
	names := []string{}
	for _, fieldErr := range errs {
		if isPresenceRule(fieldErr.Tag()) {
			names = append(names, fieldErr.Field())
		}
	}
	sort.Strings(names)
	return names
}

func isPresenceRule(tag string) bool {
	return tag == "required" || tag == "notblank"
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or more", fe.Param())
	case "url":
		return "must be a valid url"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return "is invalid"
}
