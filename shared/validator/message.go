package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// layouts maps Go reference layouts to the notation clients know.
var layouts = strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD", "15", "hh", "04", "mm", "05", "ss")

var messages = map[string]func(fe val.FieldError) string{
	"required": func(fe val.FieldError) string {
		return fe.Field() + " is required"
	},
	"min": func(fe val.FieldError) string {
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	},
	"email": func(fe val.FieldError) string {
		return fe.Field() + " must be a valid email address"
	},
	"datetime": func(fe val.FieldError) string {
		return fmt.Sprintf("%s must be a date in %s format", fe.Field(), layouts.Replace(fe.Param()))
	},
}

// message reports the first failed rule in client terms.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fe := range valErrors {
		if render, ok := messages[fe.Tag()]; ok {
			return render(fe)
		}
	}

	return valErrors.Error()
}
