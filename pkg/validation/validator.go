package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

// New returns a validator that reports fields by their JSON names.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	configure(v)
	return v
}

// Init applies the same configuration to gin's binding engine.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=8")
	_ = v.RegisterValidation("maxbytes", maxBytes)
}

// maxBytes limits the UTF-8 length of a string, e.g. bcrypt's 72-byte input cap.
func maxBytes(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= n
}

// Messages converts validation and decoding errors into ordered, human-readable sentences.
// Nested fields are reported with dotted paths, e.g. "children.0.name".
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []string{"The request body must be valid JSON."}
	}
	if errors.As(err, &ute) {
		if ute.Field == "" {
			return []string{"The request body must be a JSON object."}
		}
		return []string{fmt.Sprintf("The %s field has an invalid type.", ute.Field)}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, formatFieldError(fieldPath(fe), fe))
		}
		return out
	}

	return []string{"The request payload is invalid."}
}

// fieldPath drops the root struct name and rewrites indexes: Input.children[0].name -> children.0.name
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return indexPattern.ReplaceAllString(ns, ".$1")
}

func formatFieldError(field string, fe validator.FieldError) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min", "pwd":
		if fe.Tag() == "pwd" {
			param = "8"
		}
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s must have at least %s items.", field, param)
		case reflect.String:
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		default:
			return fmt.Sprintf("The %s must be at least %s.", field, param)
		}
	case "max":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("The %s must not have more than %s items.", field, param)
		case reflect.String:
			return fmt.Sprintf("The %s must not be greater than %s characters.", field, param)
		default:
			return fmt.Sprintf("The %s must not be greater than %s.", field, param)
		}
	case "maxbytes":
		return fmt.Sprintf("The %s must not be greater than %s bytes.", field, param)
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", field, param)
	case "alphanum":
		return fmt.Sprintf("The %s must only contain letters and numbers.", field)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		if param != "" {
			return fmt.Sprintf("The %s field failed the %s=%s rule.", field, fe.Tag(), param)
		}
		return fmt.Sprintf("The %s field failed the %s rule.", field, fe.Tag())
	}
}
