// Package bind decodes request inputs into DTOs and validates them.
// The API surface is read only, so binding happens from URL query
// parameters rather than JSON bodies; validation runs through a
// process-wide validator with english translations
package bind

import (
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	perr "gitscout/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// UT aliases ut.Translator
type UT = ut.Translator

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc

	// handleShape is the account login shape: alphanumeric and single
	// interior hyphens, as the remote service enforces on signup
	handleShape = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for min and max
		registerShortMin(v, trans)
		registerShortMax(v, trans)

		// common custom tag
		registerHandle(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// RegisterValidation registers a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// Query binds URL query parameters onto T by json tag name, then validates.
// Supported field kinds are string, int, and bool; anything a caller can
// type into a query string. Absent parameters leave the zero value in place
// so omitempty rules apply
func Query[T any](r *http.Request) (T, error) {
	var dst T
	qs := r.URL.Query()

	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag := f.Tag.Get("json")
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" || tag == "-" || !qs.Has(tag) {
			continue
		}
		raw := qs.Get(tag)

		switch f.Type.Kind() {
		case reflect.String:
			rv.Field(i).SetString(raw)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				var zero T
				return zero, perr.WithField(perr.Validationf("%s must be an integer", tag), tag)
			}
			rv.Field(i).SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				var zero T
				return zero, perr.WithField(perr.Validationf("%s must be a boolean", tag), tag)
			}
			rv.Field(i).SetBool(b)
		}
	}

	if err := Validate(dst); err != nil {
		var zero T
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation and maps failures to typed project errors
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	if _, ok := err.(*validator.InvalidValidationError); ok {
		return perr.Validationf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err)
	return perr.WithField(perr.Validationf("%s", msg), field)
}

// Field validates a single value against a tag expression, e.g. "handle"
// or "min=1,max=100"
func Field(value any, tag string) error {
	err := Get().Validator.Var(value, tag)
	if err == nil {
		return nil
	}
	_, msg := ValidationFieldAndMessage(err)
	return perr.Validationf("%s", msg)
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// custom translations with short messages

func registerShortMin(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("min", trans,
		func(ut ut.Translator) error {
			return ut.Add("min", "{0} must be at least {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("min", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerShortMax(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("max", trans,
		func(ut ut.Translator) error {
			return ut.Add("max", "{0} must be at most {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("max", fe.Field(), fe.Param())
			return msg
		},
	)
}

// registerHandle wires the "handle" tag: a syntactically plausible account
// login. Double hyphens are rejected separately since RE2 has no lookahead
func registerHandle(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return handleShape.MatchString(s) && !strings.Contains(s, "--")
	})
	_ = v.RegisterTranslation("handle", trans,
		func(ut ut.Translator) error {
			return ut.Add("handle", "{0} is not a valid account handle", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("handle", fe.Field())
			return msg
		},
	)
}
