package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/accountrest/account-service/internal/models"
)

// emailPattern accepts word characters, dots and hyphens in the local part,
// a domain of the same character class, and a final dotted segment.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

var validate = newValidator()

// FieldError describes a single validation failure for one account field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// accountFields mirrors the submitted account payload. Pointer fields let the
// required tag distinguish "absent" from "empty string".
type accountFields struct {
	Name        *string `json:"name" validate:"required"`
	Email       *string `json:"email" validate:"required,account_email"`
	Address     *string `json:"address" validate:"required"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  *string `json:"date_joined" validate:"omitempty,iso_date"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("account_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(models.DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Validate reports whether the submitted account data satisfies every field
// rule. Pure and side-effect free: malformed input is a validation failure,
// never an error.
func Validate(data map[string]any) bool {
	return len(Check(data)) == 0
}

// Check returns one FieldError per violated rule, or nil when the data is
// valid. A field that is present with a non-string JSON value (including
// null) fails with a type error; the remaining rules run through the
// validator instance.
func Check(data map[string]any) []FieldError {
	var fieldErrors []FieldError

	fields := accountFields{}
	for _, f := range []struct {
		key  string
		dest **string
	}{
		{"name", &fields.Name},
		{"email", &fields.Email},
		{"address", &fields.Address},
		{"phone_number", &fields.PhoneNumber},
		{"date_joined", &fields.DateJoined},
	} {
		v, present := data[f.key]
		if !present {
			continue
		}
		s, ok := v.(string)
		if !ok {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   f.key,
				Message: "Value must be a string",
				Type:    "type",
			})
			continue
		}
		*f.dest = &s
	}

	err := validate.Struct(fields)
	if err == nil {
		return fieldErrors
	}
	for _, fe := range err.(validator.ValidationErrors) {
		// Skip rules on fields that already failed the type check; the
		// type error is the one worth reporting.
		if hasFieldError(fieldErrors, fe.Field()) {
			continue
		}
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return fieldErrors
}

func hasFieldError(fieldErrors []FieldError, field string) bool {
	for _, fe := range fieldErrors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "account_email":
		return "Invalid email format"
	case "iso_date":
		return "Invalid date, expected YYYY-MM-DD"
	default:
		return "Invalid value"
	}
}
