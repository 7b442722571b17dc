package service

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/travel-planner/internal/domain"
)

// validate is shared by every service. Field names are taken from the
// `form` struct tag so errors name the form field the user sees.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("form"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// validateForm runs struct validation on req and converts any failures into
// a *domain.ValidationError. messages maps form field name to the text the
// user sees; fields without an entry fall back to "<field> is invalid".
func validateForm(req any, messages map[string]string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("service.validateForm: %w", err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		if verr.Has(fe.Field()) {
			continue
		}
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		verr.Fields = append(verr.Fields, domain.FieldError{Field: fe.Field(), Message: msg})
	}
	return verr
}
