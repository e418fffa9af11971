// Package form holds the dialog forms and their client-side checks. A form
// that fails validation never reaches the API.
package form

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "libadmin/internal/errors"
)

var urlPattern = regexp.MustCompile(`^https?://[^\s$.?#].[^\s]*$`)

// messages maps "field.tag" to the text shown next to the field.
var messages = map[string]string{
	"title.required":       "Title is required",
	"author.required":      "Author is required",
	"description.required": "Description is required",
	"category_id.gt":       "Please select a category",
	"ebook.required_if":    "PDF URL is required when PDF version is selected",
	"ebook.httpurl":        "Please enter a valid URL",
	"quantity.min":         "Quantity cannot be negative",
	"has_physical.oneof":   "Physical availability must be yes or no",
	"name.required":        "Name is required",
	"email.required":       "Email is required",
	"email.email":          "Please enter a valid email",
	"role.required":        "Role is required",
	"role.oneof":           "Role must be user or admin",
	"password.required":    "Password is required",
	"password.min":         "Password must be at least 8 characters",
}

// Validator checks forms with go-playground/validator and reports failures
// as *errors.ValidationError keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the dashboard's custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return urlPattern.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(bookStructLevel, BookForm{})
	return &Validator{v: v}
}

// Engine exposes the underlying validator for echo's request binding.
func (fv *Validator) Engine() *validator.Validate {
	return fv.v
}

// Validate checks a form.
func (fv *Validator) Validate(form any) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &apperrors.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	if fe.Tag() == "required" {
		return strings.ToUpper(label[:1]) + label[1:] + " is required"
	}
	return label + " is invalid"
}
