package validation

import (
	"strings"

	"learntendo/internal/domain"
)

const (
	minQuestions = 1
	maxQuestions = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the raw multipart form fields of a
// question generation request. numOfQuestions arrives as a form string
// and is returned parsed when valid.
func (v *Validator) ValidateGenerateRequest(sourceType, numOfQuestions, difficultyLevel, typeOfQuestions string) (int, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	switch strings.TrimSpace(sourceType) {
	case "":
		errors = append(errors, domain.NewMissingFieldError("sourceType"))
	case string(domain.SourceTypeText), string(domain.SourceTypeFile):
	default:
		errors = append(errors, domain.NewInvalidFormatError("sourceType", sourceType))
	}

	count := 0
	if strings.TrimSpace(numOfQuestions) == "" {
		errors = append(errors, domain.NewMissingFieldError("numOfQuestions"))
	} else if parsed, err := parseQuestionCount(numOfQuestions); err != nil {
		errors = append(errors, domain.NewInvalidFormatError("numOfQuestions", numOfQuestions))
	} else if parsed < minQuestions || parsed > maxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("numOfQuestions", parsed, minQuestions, maxQuestions))
	} else {
		count = parsed
	}

	if strings.TrimSpace(difficultyLevel) == "" {
		errors = append(errors, domain.NewMissingFieldError("difficultyLevel"))
	}
	if strings.TrimSpace(typeOfQuestions) == "" {
		errors = append(errors, domain.NewMissingFieldError("typeOfQuestions"))
	}

	return count, errors
}

// parseQuestionCount parses the count field, rejecting anything that
// is not a short run of digits.
func parseQuestionCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	count := 0
	for _, char := range s {
		if char < '0' || char > '9' {
			return 0, domain.NewValidationError("numOfQuestions must be a number")
		}
		count = count*10 + int(char-'0')
		if count > maxQuestions {
			return count, nil
		}
	}
	return count, nil
}
