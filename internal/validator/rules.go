package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"crm_backend/internal/models"
)

// IFSC: 4 letters, a zero, 6 alphanumerics.
var ifscPattern = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

// registerCustomRules registers all custom validation functions on the
// given validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Registration failures are a startup bug; refuse to run.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-platform", validatePlatform)
	mustRegister("is-content-orientation", validateContentOrientation)
	mustRegister("pan", validatePAN)
	mustRegister("gstin", validateGSTIN)
	mustRegister("ifsc", validateIFSC)
}

func validateUserRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(models.UserRole(fl.Field().String()))
}

func validatePlatform(fl validator.FieldLevel) bool {
	return models.IsValidPlatform(models.Platform(fl.Field().String()))
}

func validateContentOrientation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidContentOrientation(models.ContentOrientation(value))
}

func validatePAN(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(value) == 10
}

func validateGSTIN(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return len(value) == 15
}

func validateIFSC(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return ifscPattern.MatchString(value)
}
