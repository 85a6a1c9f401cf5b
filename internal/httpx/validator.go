package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"bookstoretester/internal/locale"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("query"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	validate.RegisterValidation("locale", validateLocale)
}

func validateLocale(fl validator.FieldLevel) bool {
	_, err := locale.Parse(fl.Field().String())
	return err == nil
}

// ValidateStruct checks s against its `validate` tags and returns one
// detail per failing field, named by its `query` tag when present.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	var details []ErrorDetail
	for _, err := range validationErrors {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min", "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		case "max", "lte":
			message = fmt.Sprintf("%s must be at most %s", field, param)
		case "locale":
			message = fmt.Sprintf("%s must be one of en-US, de-DE, ja-JP, fr-FR, es-ES", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		details = append(details, ErrorDetail{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}

	return details
}
