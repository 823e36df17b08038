// Package validators holds the custom validation tags and the shared validator instance.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var (
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

	instance *validator.Validate
	once     sync.Once
)

// PincodeValidation accepts six digit postal codes that do not start with zero
func PincodeValidation(fl validator.FieldLevel) bool {
	return pincodePattern.MatchString(fl.Field().String())
}

// GSTINValidation accepts a 15 character GST identification number
func GSTINValidation(fl validator.FieldLevel) bool {
	return gstinPattern.MatchString(strings.ToUpper(fl.Field().String()))
}

// Get returns the shared validator with the custom tags registered.
// Field names in errors follow the json tag when one is present.
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("pincode", PincodeValidation)
		_ = v.RegisterValidation("gstin", GSTINValidation)
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct validates s and converts the first failure into an apperror validation error
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return apperror.FieldValidation(fe.Field(), "%s", describe(fe))
	}
	return apperror.Validation("validation error: %v", err)
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "e164":
		return fmt.Sprintf("%s must be an E.164 phone number", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "pincode":
		return fmt.Sprintf("%s must be a 6-digit pincode", field)
	case "gstin":
		return fmt.Sprintf("%s must be a valid GST number", field)
	case "uuid4", "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte", "lte", "gt", "lt":
		return fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid url", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
