// Package validation registers the custom binding tags used by the request DTOs.
package validation

import (
	"reflect"
	"strings"
	"time"

	"paintball-booking/internal/domain/slot"

	"github.com/go-playground/validator/v10"
)

const (
	TagISODateTime = "isodatetime"
	TagISODate     = "isodate"
	TagHHMM        = "hhmm"
)

func Register(v *validator.Validate) error {
	// report json/form names in errors
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})

	if err := v.RegisterValidation(TagISODateTime, isoDateTime); err != nil {
		return err
	}
	if err := v.RegisterValidation(TagISODate, isoDate); err != nil {
		return err
	}
	return v.RegisterValidation(TagHHMM, hhmm)
}

func isoDateTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func hhmm(fl validator.FieldLevel) bool {
	_, err := slot.ParseClock(fl.FieldName(), fl.Field().String())
	return err == nil
}
