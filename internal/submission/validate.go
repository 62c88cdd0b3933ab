/*
Copyright © 2025 DumpPro Inc.

Released under MIT license.
*/

package submission

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Supports common international/US phone formats, e.g. (555) 123-4567.
	phoneRegexp = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
	// US zip code, 5-digit or 5+4 form.
	zipRegexp = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// fieldMessages maps "<json field>.<failed tag>" to the message surfaced to
// the client. Unlisted combinations fall back to a generic per-field message.
var fieldMessages = map[string]string{
	"name.required":    "Name must be at least 2 characters",
	"name.min":         "Name must be at least 2 characters",
	"name.max":         "Name must be less than 100 characters",
	"email.required":   "Please enter a valid email address",
	"email.email":      "Please enter a valid email address",
	"phone.required":   "Please enter a valid phone number (e.g., (555) 123-4567)",
	"phone.usphone":    "Please enter a valid phone number (e.g., (555) 123-4567)",
	"message.required": "Message must be at least 10 characters",
	"message.min":      "Message must be at least 10 characters",
	"message.max":      "Message must be less than 1000 characters",

	"zipCode.required":        "Zip code is required",
	"zipCode.uszip":           "Please enter a valid US zip code (e.g., 12345 or 12345-6789)",
	"dumpsterSize.required":   "Please select a dumpster size",
	"projectType.required":    "Please select a project type",
	"serviceType.required":    "Please select a service type",
	"rentalDuration.required": "Please select rental duration",
	"deliveryDate.required":   "Please select a delivery date",
	"address.required":        "Please enter a delivery address",
	"address.min":             "Please enter a delivery address",
	"address.max":             "Address must be less than 200 characters",
}

// Validator checks form payloads against their schema and produces
// aggregated, human-readable rejections.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the custom usphone/uszip rules registered.
func NewValidator() *Validator {
	v := validator.New()

	// Surface json field names instead of Go struct field names in errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "usphone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	mustRegister(v, "uszip", func(fl validator.FieldLevel) bool {
		return zipRegexp.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// ValidateStruct checks the payload and returns a *ValidationError with one
// message per violated field, or nil if every field constraint passes.
func (v *Validator) ValidateStruct(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// validator.InvalidValidationError, can only happen on a non-struct payload.
		return &ValidationError{Messages: []string{"Invalid request payload"}}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, messageFor(fe))
	}
	return &ValidationError{Messages: messages}
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("Field %q is invalid", fe.Field())
}
