package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/contacts-api/internal/domain"
)

// Global validator instance for reuse. Field errors are reported under
// their JSON names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct. Empty or
// malformed bodies are reported as validation errors.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewValidationError("request body is required")
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domain.NewValidationError(fmt.Sprintf("%s: must be of type %s", typeErr.Field, typeErr.Type))
		}
		return domain.NewValidationError("invalid JSON body")
	}
	return nil
}

// ValidateRequest validates the given struct against its validate tags.
// The returned validation error lists every violated constraint as
// "field: reason", joined by "; ".
func ValidateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError(err.Error())
	}

	structType := reflect.TypeOf(v)
	if structType.Kind() == reflect.Pointer {
		structType = structType.Elem()
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Field()+": "+describe(structType, fe))
	}
	return domain.NewValidationError(strings.Join(messages, "; "))
}

func describe(structType reflect.Type, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "max":
		lo, hi := lengthBounds(structType, fe.StructField())
		switch {
		case lo != "" && hi != "":
			return fmt.Sprintf("length must be between %s and %s", lo, hi)
		case hi != "":
			return "length must be at most " + hi
		default:
			return "length must be at least " + lo
		}
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// lengthBounds reads the min and max parameters of a field's validate tag
// so both limits can be named in the message.
func lengthBounds(structType reflect.Type, fieldName string) (lo, hi string) {
	if structType.Kind() != reflect.Struct {
		return "", ""
	}
	field, ok := structType.FieldByName(fieldName)
	if !ok {
		return "", ""
	}
	for rule := range strings.SplitSeq(field.Tag.Get("validate"), ",") {
		if v, found := strings.CutPrefix(rule, "min="); found {
			lo = v
		}
		if v, found := strings.CutPrefix(rule, "max="); found {
			hi = v
		}
	}
	return lo, hi
}
