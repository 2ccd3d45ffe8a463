package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report json names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Custom validations
	_ = v.RegisterValidation("supported_image", validateImageType)
	_ = v.RegisterValidation("account_role", validateAccountRole)
	_ = v.RegisterValidation("portfolio_category", validatePortfolioCategory)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		return errors.New(FormatError(err))
	}
	return nil
}

func (v *Validator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

// FormatError turns the first validation failure into a client-facing sentence.
func FormatError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "account_role":
		return "role must be Photographer or Client"
	case "portfolio_category":
		return "category is not a known portfolio category"
	case "supported_image":
		return "Only JPG and PNG files are allowed"
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// Only JPEG and PNG are accepted for portfolio images.
func validateImageType(fl validator.FieldLevel) bool {
	mimeType := fl.Field().String()
	supportedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
	}
	return supportedTypes[mimeType]
}

// Values mirror models.RolePhotographer and models.RoleClient; an account is
// never registered as Unspecified.
func validateAccountRole(fl validator.FieldLevel) bool {
	switch fl.Field().Int() {
	case 1, 2:
		return true
	}
	return false
}

func validatePortfolioCategory(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= 0 && n <= 10
}
