package synchronizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SoloLeveler_Go/internal/domain"
)

var validate = validator.New()

// ValidatePersonalQuest trims and checks a new personal quest before it is sent
func ValidatePersonalQuest(name, description string) (domain.NewPersonalQuest, error) {
	quest := domain.NewPersonalQuest{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := validate.Struct(quest); err != nil {
		return quest, fmt.Errorf("%w: %s", domain.ErrInvalidInput, formatValidationError(err))
	}
	return quest, nil
}

// formatValidationError keeps field names short and messages user-facing
func formatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "invalid quest"
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			problems = append(problems, field+" is required")
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters", field, e.Param()))
		default:
			problems = append(problems, field+" is invalid")
		}
	}
	sort.Strings(problems)
	return strings.Join(problems, ", ")
}
