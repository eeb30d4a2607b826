// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "github-activity/internal/platform/errors"
	"github-activity/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DefaultMaxBytes caps request bodies when Options.MaxBytes is zero
const DefaultMaxBytes = 1 << 20

// Validator bundles the shared validator with its english translator
type Validator struct {
	V *validator.Validate
	T ut.Translator
}

var (
	once sync.Once
	svc  *Validator
)

// Get returns the process-wide validator. Field names in messages come from json tags
func Get() *Validator {
	once.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		short(v, trans, "min", "{0} must have at least {1}")
		short(v, trans, "max", "{0} must have at most {1}")

		svc = &Validator{V: v, T: trans}
	})
	return svc
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// short overrides the stock min/max translations, which spell out "items" or "characters" per kind
func short(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// Options tunes ParseJSON
type Options struct {
	MaxBytes     int64 // 0 means DefaultMaxBytes
	AllowUnknown bool
}

// ParseJSON decodes one JSON document into T and validates it
// Malformed input maps to ErrorCodeJSON, failed rules to ErrorCodeValidation
func ParseJSON[T any](r *http.Request, opts ...Options) (T, error) {
	var zero T
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if r.Body == nil {
		return zero, perr.JSONErrf("empty body")
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("close request body failed")
		}
	}()

	// one extra byte tells an oversized body apart from one that fits exactly
	lr := &io.LimitedReader{R: r.Body, N: o.MaxBytes + 1}
	dec := json.NewDecoder(lr)
	if !o.AllowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return zero, perr.JSONErrf("empty body")
		case lr.N <= 0:
			return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
		default:
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
	}
	if dec.More() {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().V.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			logger.C(r.Context()).Error().Err(err).Msg("validator misuse")
			return zero, perr.JSONErrf("body must be a JSON object")
		}
		field, msg := FieldMessage(err)
		return zero, perr.WithField(perr.New(perr.ErrorCodeValidation, msg), field)
	}
	return dst, nil
}

// FieldMessage returns the first failing field and its translated message
func FieldMessage(err error) (field, msg string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().T)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
