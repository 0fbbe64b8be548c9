package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validate is the global validator instance used across the matcher's HTTP layer.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("latitude", validateLatitude)
	_ = Validate.RegisterValidation("longitude", validateLongitude)
	_ = Validate.RegisterValidation("direction", validateDirection)
	_ = Validate.RegisterValidation("gender", validateGender)
}

// ValidateStruct validates a struct and returns a *FieldErrors if validation fails.
func ValidateStruct(s interface{}) error {
	if err := Validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return NewFieldErrors(validationErrors)
		}
		return err
	}
	return nil
}

func validateLatitude(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLongitude(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateDirection(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "TO_EVENT", "FROM_EVENT":
		return true
	default:
		return false
	}
}

func validateGender(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "male", "female", "non_binary", "prefer_not_to_say":
		return true
	default:
		return false
	}
}
