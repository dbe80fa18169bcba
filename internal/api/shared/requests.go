package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/workshop-app/workshop-api/internal/domain"
)

// MaxRequestBodyBytes bounds JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// account_email is the rule domain.User enforces.
	_ = v.RegisterValidation("account_email", func(fl validator.FieldLevel) bool {
		return domain.ValidateEmail(fl.Field().String()) == nil
	})
	return v
}

// DecodeJSON decodes the request body into v. Trailing data after the first
// JSON value is rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON value")
	}
	return nil
}

// ValidateRequest validates v with its struct tags.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

// ValidationMessage turns a validator error into a client-safe message that
// names the offending field and rule.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), tagMessage(fe))
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email", "account_email":
		return "invalid email format"
	case "min", "gte", "gt":
		if fe.Kind() == reflect.String {
			return "too short"
		}
		return "too small"
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return "too long"
		}
		return "too large"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "validation failed"
	}
}
