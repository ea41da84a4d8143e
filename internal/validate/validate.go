package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"essencia/internal/domain"
)

var (
	reID = regexp.MustCompile(`^[0-9]{1,18}$`)

	v = newValidator()
)

const (
	DefaultLimit = 6
	MaxLimit     = 100
)

// FieldError is one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors is the list reported back to the client with a 400.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BadBody reports a payload that is not decodable JSON of the expected shape.
func BadBody(err error) Errors {
	return Errors{{Field: "body", Rule: "json", Message: "malformed JSON body: " + err.Error()}}
}

func newValidator() *validator.Validate {
	vv := validator.New(validator.WithRequiredStructEnabled())
	vv.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = vv.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		_, ok := Category(fl.Field().String())
		return ok
	})
	_ = vv.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return vv
}

// checker is implemented by shapes with rules that struct tags cannot express.
type checker interface {
	check() Errors
}

// Struct runs the tag rules on s and converts failures to Errors.
func Struct(s any) error {
	var out Errors
	if c, ok := s.(checker); ok {
		out = append(out, c.check()...)
	}
	if err := v.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Message: message(fe)})
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "category":
		return fmt.Sprintf("must be one of %v", domain.Categories)
	}
	return "failed " + fe.Tag()
}

// ID validates a numeric resource identifier from a path segment.
func ID(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if !reID.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Category accepts exactly one of the catalog categories.
func Category(s string) (domain.Category, bool) {
	for _, c := range domain.Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Page parses a 1-indexed page number; anything unusable means page 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Limit parses a page size, defaulting to DefaultLimit and clamping to MaxLimit.
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
