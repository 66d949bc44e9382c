package validate

import (
	"fmt"
	"regexp"
	"strings"

	"cable-billing/internal/pkg/apperrors"
)

// MaxAmount caps a single bill or payment in whole currency units.
const MaxAmount int64 = 1_000_000_000

var phonePattern = regexp.MustCompile(`^07\d{8}$`)

// PhoneNumber accepts local mobile numbers of the form 07XXXXXXXX.
func PhoneNumber(field, value string) error {
	if !phonePattern.MatchString(value) {
		return apperrors.NewValidationError(field, "must be a 10 digit number starting with 07")
	}
	return nil
}

func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, "cannot be empty")
	}
	return nil
}

func Range(field string, value, min, max int) error {
	if value < min || value > max {
		return apperrors.NewValidationError(field, "out of range")
	}
	return nil
}

// Amount accepts whole amounts in [0, MaxAmount].
func Amount(field string, value int64) error {
	if value < 0 {
		return apperrors.NewValidationError(field, "cannot be negative")
	}
	if value > MaxAmount {
		return apperrors.NewValidationError(field, fmt.Sprintf("cannot exceed %d", MaxAmount))
	}
	return nil
}
