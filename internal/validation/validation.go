// Package validation wraps go-playground/validator with english messages
// that use json field names
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

type svc struct {
	validate   *validator.Validate
	translator ut.Translator
}

var (
	once     sync.Once
	instance *svc
)

func get() *svc {
	once.Do(func() {
		enLoc := en.New()
		trans, _ := ut.New(enLoc, enLoc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
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
		registerQuantity(v, trans)

		instance = &svc{validate: v, translator: trans}
	})
	return instance
}

// Struct validates v and returns a *domain.ClientError carrying the first
// failing field's message
func Struct(v any) error {
	err := get().validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &domain.ClientError{Msg: verrs[0].Translate(get().translator)}
	}
	return &domain.ClientError{Msg: err.Error()}
}

// qty accepts 0 (defaulted later) and positive numbers
func registerQuantity(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("qty", func(fl validator.FieldLevel) bool {
		switch fl.Field().Kind() {
		case reflect.Float32, reflect.Float64:
			return fl.Field().Float() >= 0
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return fl.Field().Int() >= 0
		}
		return false
	})
	_ = v.RegisterTranslation("qty", trans,
		func(ut ut.Translator) error {
			return ut.Add("qty", "{0} must be positive", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("qty", fe.Field())
			return msg
		},
	)
}
