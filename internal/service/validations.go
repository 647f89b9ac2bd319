package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/hydration/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	beverageTypeRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	clockRe        = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		})
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// Lowercase slug: "water", "green-tea"
		validate.RegisterValidation("beverage_type", func(fl validator.FieldLevel) bool {
			return beverageTypeRe.MatchString(fl.Field().String())
		})
		// 24h "HH:MM"
		validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return clockRe.MatchString(fl.Field().String())
		})
	})
}

// validateStruct runs the validator and turns field errors into a single
// ErrValidation carrying a readable message.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, strings.Join(msgs, "; "))
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", errorvalues.ErrValidation, msg)
}
