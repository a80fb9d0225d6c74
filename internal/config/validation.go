package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	experimentNameRegexp = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)
	templateTagRegexp    = regexp.MustCompile(`\{\{([^{}]*)\}\}`)
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be > %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be < %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "increasing":
		return "must be strictly increasing"
	case "experiment_name":
		return "must consist only of letters, numbers, dots, underscores and hyphens"
	case "artifact_template":
		return fmt.Sprintf("template placeholders must be one of: {{%s}}", ARTIFACT_TMPL_SUB_NAME)
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "training.learning_rate.rate")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	if err := validate.RegisterValidation("increasing", validateStrictlyIncreasing); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("experiment_name", validateExperimentName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("artifact_template", validateArtifactTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "yaml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Custom validator: integer sequence must be strictly increasing
func validateStrictlyIncreasing(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}

	var prev int64
	for i := 0; i < field.Len(); i++ {
		v := field.Index(i).Int()
		if i > 0 && v <= prev {
			return false
		}
		prev = v
	}
	return true
}

// Custom validator: experiment name format (becomes a directory name)
func validateExperimentName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return experimentNameRegexp.MatchString(name)
}

// Custom validator: artifact path template placeholders must be known
func validateArtifactTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, m := range templateTagRegexp.FindAllStringSubmatch(value, -1) {
		if m[1] != ARTIFACT_TMPL_SUB_NAME {
			return false
		}
	}
	return true
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the YAML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
