package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// +7XXXXXXXXXX или 8XXXXXXXXXX; пробелы, скобки и дефисы не считаются
var (
	phoneNoise = regexp.MustCompile(`[()\s-]`)
	ruPhone    = regexp.MustCompile(`^(\+7|8)\d{10}$`)
)

// IsRussianPhone reports whether s is a Russian phone number in either the
// +7 or the 8 form.
func IsRussianPhone(s string) bool {
	return ruPhone.MatchString(phoneNoise.ReplaceAllString(s, ""))
}

func init() {
	validate = validator.New()
	// ошибки отдаём по json-именам полей
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("ru_phone", func(fl validator.FieldLevel) bool {
		return IsRussianPhone(fl.Field().String())
	})
}

// Validate struct fields. Returns nil when v is valid, otherwise a
// field -> failed tag map.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string, len(ve))
	for _, fe := range ve {
		errors[fe.Field()] = fe.Tag()
	}
	return errors
}
