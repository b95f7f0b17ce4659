package vacancyapimodels

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	apimodels "vacancies-backend/models/api"
)

const DateLayout = "2006-01-02"

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

var vacancyValidator *validator.Validate

func init() {
	vacancyValidator = validator.New()
	vacancyValidator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = vacancyValidator.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegexp.MatchString(fl.Field().String())
	})
}

// ValidationRules настраиваемые проверки полей вакансии
type ValidationRules struct {
	SlugMinLength  int  // 0 - не проверяется
	CreatedNotPast bool // дата создания не может быть в прошлом
}

func validateStruct(data interface{}, verr *apimodels.ValidationError) {
	err := vacancyValidator.Struct(data)
	if err == nil {
		return
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.Add("__all__", err.Error())
		return
	}
	for _, fe := range fieldErrors {
		field := fe.Field()
		if pos := strings.Index(field, "["); pos > 0 {
			field = field[:pos]
		}
		verr.Add(field, fieldErrorMessage(fe))
	}
}

func fieldErrorMessage(fe validator.FieldError) string {
	value := fmt.Sprintf("%v", fe.Value())
	if v := reflect.ValueOf(fe.Value()); v.Kind() == reflect.Ptr && !v.IsNil() {
		value = fmt.Sprintf("%v", v.Elem().Interface())
	}
	prefix := ""
	if strings.Contains(fe.Field(), "[") {
		prefix = fmt.Sprintf("Item %q: ", value)
	}
	switch fe.Tag() {
	case "required":
		return prefix + "This field cannot be blank."
	case "max":
		return prefix + fmt.Sprintf("Ensure this value has at most %s characters (it has %d).", fe.Param(), utf8.RuneCountInString(value))
	case "min":
		return prefix + fmt.Sprintf("Ensure this value has at least %s characters (it has %d).", fe.Param(), utf8.RuneCountInString(value))
	case "slug":
		return "Enter a valid slug consisting of letters, numbers, underscores or hyphens."
	case "oneof":
		return fmt.Sprintf("Value %q is not a valid choice.", value)
	case "datetime":
		return fmt.Sprintf("%q value has an invalid date format. It must be in YYYY-MM-DD format.", value)
	case "uuid":
		return fmt.Sprintf("%q is not a valid UUID.", value)
	}
	return prefix + fmt.Sprintf("Failed on the %q rule.", fe.Tag())
}
