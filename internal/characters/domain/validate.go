package domain

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "github.com/louisbranch/zelda-characters/internal/errors"
)

// Numeric stat bounds for character attributes.
const (
	StatMin = 1
	StatMax = 999
)

// MinNameLength is the minimum character name length after trimming.
const MinNameLength = 2

// emailPattern is a simplified RFC 5322 check.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRequiredField checks that a required field is not empty and meets
// the minimum length after trimming. The first failing rule wins.
func ValidateRequiredField(value, name string, minLength int) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("%s is required", name))
	}
	if len(trimmed) < minLength {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("%s must be at least %d characters", name, minLength))
	}
	return nil
}

// ValidateEmail checks the email format. The pattern is anchored against the
// raw value, so surrounding whitespace fails the format check; trimming
// happens at normalization, after validation.
func ValidateEmail(value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.New(apperrors.CodeValidation, "Email is required")
	}
	if !emailPattern.MatchString(value) {
		return apperrors.New(apperrors.CodeValidation, "Invalid email format")
	}
	return nil
}

// ValidateNumericRange checks that a numeric field is within [min, max].
func ValidateNumericRange(value int, name string, min, max int) error {
	if value < min || value > max {
		return apperrors.New(apperrors.CodeValidation, fmt.Sprintf("%s must be between %d and %d", name, min, max))
	}
	return nil
}

// ValidateCreate checks all fields for character creation, returning the
// first failure.
func ValidateCreate(input CreateInput) error {
	if err := ValidateRequiredField(input.Name, "Name", MinNameLength); err != nil {
		return err
	}
	if err := ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := ValidateRequiredField(input.Game, "Game", 1); err != nil {
		return err
	}

	stats := []struct {
		value int
		name  string
	}{
		{input.Health, "Health"},
		{input.Stamina, "Stamina"},
		{input.Attack, "Attack"},
		{input.Defense, "Defense"},
	}
	for _, stat := range stats {
		if err := ValidateNumericRange(stat.value, stat.name, StatMin, StatMax); err != nil {
			return err
		}
	}
	return nil
}

// ValidateUpdate checks the fields of a partial update. Absent (nil) patch
// fields are skipped entirely; present fields must satisfy the same rules as
// creation, so a present zero is invalid rather than "unset".
func ValidateUpdate(id string, patch Patch) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.New(apperrors.CodeValidation, "Character ID is required")
	}

	if patch.Name != nil {
		if err := ValidateRequiredField(*patch.Name, "Name", MinNameLength); err != nil {
			return err
		}
	}
	if patch.Email != nil {
		if err := ValidateEmail(*patch.Email); err != nil {
			return err
		}
	}
	if patch.Game != nil {
		if err := ValidateRequiredField(*patch.Game, "Game", 1); err != nil {
			return err
		}
	}

	stats := []struct {
		value *int
		name  string
	}{
		{patch.Health, "Health"},
		{patch.Stamina, "Stamina"},
		{patch.Attack, "Attack"},
		{patch.Defense, "Defense"},
	}
	for _, stat := range stats {
		if stat.value == nil {
			continue
		}
		if err := ValidateNumericRange(*stat.value, stat.name, StatMin, StatMax); err != nil {
			return err
		}
	}
	return nil
}
