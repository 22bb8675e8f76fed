package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/cogni-tracker/internal/domain"
	"github.com/blaisecz/cogni-tracker/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON name
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := fl.Field().String()
		_, err := time.LoadLocation(tz)
		return err == nil
	})
	validate.RegisterValidation("gametype", func(fl validator.FieldLevel) bool {
		return domain.GameType(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("alcohol", func(fl validator.FieldLevel) bool {
		return domain.AlcoholUse(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("substance", func(fl validator.FieldLevel) bool {
		return domain.SubstanceType(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("activity", func(fl validator.FieldLevel) bool {
		return domain.PreSessionActivity(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("social", func(fl validator.FieldLevel) bool {
		return domain.SocialContext(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("noise", func(fl validator.FieldLevel) bool {
		return domain.NoiseLevel(fl.Field().String()).Valid()
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   err.Field(),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "timezone":
		return "must be a valid IANA timezone"
	case "gametype":
		return "must be one of: GO_NO_GO, VISUOSPATIAL_GRID, SIMON_SEQUENCE, VISUAL_SEARCH"
	case "alcohol":
		return "must be one of: NONE, SMALL, MODERATE, HIGH"
	case "substance":
		return "must be one of: NONE, PRESCRIBED, OTC, RECREATIONAL"
	case "activity":
		return "must be a known pre-session activity"
	case "social":
		return "must be one of: ALONE, WITH_FAMILY, WITH_FRIENDS, WITH_COWORKERS, IN_PUBLIC"
	case "noise":
		return "must be one of: QUIET, MODERATE, LOUD"
	default:
		return "is invalid"
	}
}
