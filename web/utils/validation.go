// Package utils holds request validation helpers shared by the handlers.
package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/telclab/topup-sandbox/errs"
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field errors under their json names so the messages match
	// what the caller actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}()

// ValidateStruct runs the validator tags on a request DTO and converts
// failures into the field-error taxonomy.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	ve := errs.ValidationErrs()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			ve.Add(fe.Field(), messageFor(fe))
		}

		return errs.ValidationFailedErr(ve.Err())
	}

	return errs.ValidationFailedErr(err)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "cannot be empty"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
