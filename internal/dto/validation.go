package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DemoUserAlias mirrors models.DemoUserAlias; dto stays free of model imports.
const DemoUserAlias = "demo-user-id"

// ValidationErrors is the failed outcome of validating a request. It renders as
// {"_errors": [...], "<field>": {"_errors": [...]}}.
type ValidationErrors struct {
	Form   []string
	Fields map[string][]string
}

func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Form)+len(e.Fields))
	parts = append(parts, e.Form...)
	for _, field := range e.fieldNames() {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationErrors) AddField(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationErrors) AddForm(msg string) {
	e.Form = append(e.Form, msg)
}

func (e *ValidationErrors) Empty() bool {
	return len(e.Form) == 0 && len(e.Fields) == 0
}

func (e *ValidationErrors) fieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (e *ValidationErrors) MarshalJSON() ([]byte, error) {
	type fieldErrors struct {
		Errors []string `json:"_errors"`
	}
	out := make(map[string]interface{}, len(e.Fields)+1)
	form := e.Form
	if form == nil {
		form = []string{}
	}
	out["_errors"] = form
	for name, msgs := range e.Fields {
		out[name] = fieldErrors{Errors: msgs}
	}
	return json.Marshal(out)
}

// ValidationFailure is the 400 response body.
type ValidationFailure struct {
	Error *ValidationErrors `json:"error"`
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
	_ = v.RegisterValidation("userref", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == DemoUserAlias {
			return true
		}
		_, err := uuid.Parse(s)
		return err == nil
	})
	_ = v.RegisterValidation("isodatetime", func(fl validator.FieldLevel) bool {
		_, err := ParseTimestamp(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks req against its struct tags. It returns nil when req is valid.
func Validate(req interface{}) *ValidationErrors {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs := &ValidationErrors{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verrs.AddForm(err.Error())
		return verrs
	}
	for _, fe := range fieldErrs {
		verrs.AddField(fe.Field(), message(fe))
	}
	return verrs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "len":
		return fmt.Sprintf("String must contain exactly %s character(s)", fe.Param())
	case "userref":
		return "Invalid user id"
	case "isodatetime":
		return "Invalid datetime"
	case "url":
		return "Invalid url"
	case "gte":
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	}
	return "Invalid value"
}

// ParseTimestamp accepts RFC 3339 datetimes with a Z or numeric offset and optional
// fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// DecodeStrict unmarshals a JSON body, reporting malformed input and type mismatches
// as validation errors.
func DecodeStrict(body []byte, dest interface{}) *ValidationErrors {
	if len(body) == 0 {
		body = []byte("{}")
	}
	err := json.Unmarshal(body, dest)
	if err == nil {
		return nil
	}
	verrs := &ValidationErrors{}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		verrs.AddField(typeErr.Field, fmt.Sprintf("Expected %s, received %s", typeErr.Type.Kind(), typeErr.Value))
		return verrs
	}
	verrs.AddForm("Invalid JSON body")
	return verrs
}

// DecodeLenient unmarshals a JSON body, leaving dest at its zero value when the body
// is malformed. Used by the placeholder routes.
func DecodeLenient(body []byte, dest interface{}) {
	if err := json.Unmarshal(body, dest); err != nil {
		rv := reflect.ValueOf(dest)
		if rv.Kind() == reflect.Ptr && !rv.IsNil() {
			rv.Elem().Set(reflect.Zero(rv.Elem().Type()))
		}
	}
}
