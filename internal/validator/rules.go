package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

// registerCustomRules binds the enum rules used by the profile DTOs.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-mentor-type", validateMentorType)
	mustRegister("is-expertise-level", validateExpertiseLevel)
	mustRegister("is-academic-level", validateAcademicLevel)
}

// Empty values pass; pairing with 'required' decides whether empty is legal.

func validateMentorType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.MentorType(value).IsValid()
}

func validateExpertiseLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ExpertiseLevel(value).IsValid()
}

func validateAcademicLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.AcademicLevel(value).IsValid()
}
