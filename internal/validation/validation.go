package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	personNameRe  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRe       = regexp.MustCompile(`^\+?\d{10,15}$`)
	pincodeRe     = regexp.MustCompile(`^\d{6}$`)
	productNameRe = regexp.MustCompile(`^[a-zA-Z0-9\s\-&.,()]+$`)
	phoneNoiseRe  = regexp.MustCompile(`\s|-`)
	indexRe       = regexp.MustCompile(`\[\d+\]`)
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists every violation found in a payload.
type Error struct {
	Fields []FieldError `json:"errors"`
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", f.Field, f.Message)
	}
	return b.String()
}

// Has reports whether field has at least one violation.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Message returns the first message recorded for field.
func (e *Error) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func IsValidation(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}

func Single(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

type Options struct {
	// EnforceTotals rejects orders whose order_total differs from
	// subtotal + delivery_fee or whose subtotal differs from the item sum.
	EnforceTotals bool
}

type Validator struct {
	v    *validator.Validate
	opts Options
}

func New(opts Options) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "personname", matchString(personNameRe))
	mustRegister(v, "phone", matchString(phoneRe))
	mustRegister(v, "pincode", matchString(pincodeRe))
	mustRegister(v, "productname", matchString(productNameRe))
	mustRegister(v, "uid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) == 36 && uuid.Validate(s) == nil
	})
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "integer", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})

	return &Validator{v: v, opts: opts}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validator: %v", tag, err))
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// NormalizePhone strips whitespace and hyphens.
func NormalizePhone(s string) string {
	return phoneNoiseRe.ReplaceAllString(s, "")
}

func normalizePhonePtr(p *string) {
	if p != nil {
		*p = NormalizePhone(*p)
	}
}

// check runs struct validation and appends one FieldError per violation,
// skipping paths the decoder already rejected.
func (v *Validator) check(d *decoder, in any, messages map[string]string) {
	err := v.v.Struct(in)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		d.fail("", err.Error())
		return
	}
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if d.rejected(path) {
			continue
		}
		d.fail(path, messageFor(path, fe, messages))
	}
}

// fieldPath drops the root struct name: "OrderInput.items[0].price" -> "items[0].price".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(path string, fe validator.FieldError, messages map[string]string) string {
	key := indexRe.ReplaceAllString(path, "") + "." + fe.Tag()
	if msg, ok := messages[key]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "Required"
	case "oneof":
		opts := strings.Fields(fe.Param())
		return fmt.Sprintf("Invalid enum value. Expected '%s', received '%v'", strings.Join(opts, "' | '"), fe.Value())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("Failed %s=%s", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("Failed %s", fe.Tag())
	}
}
