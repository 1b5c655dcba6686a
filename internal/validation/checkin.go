// Package validation enforces the input contracts for sign-in and check-in
// payloads, reporting problems per field.
package validation

import (
	"strings"

	"reentrybuddy/internal/models"
)

// ValidateInsertUser checks a sign-in payload. Both name parts are required.
func ValidateInsertUser(insert models.InsertUser) error {
	fields := map[string]string{}

	if strings.TrimSpace(insert.FirstName) == "" {
		fields["firstName"] = "First name is required"
	}
	if strings.TrimSpace(insert.LastName) == "" {
		fields["lastName"] = "Last name is required"
	}

	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}

// ValidateInsertCheckIn checks a check-in payload. Feeling and goal are
// required; the journal entry is optional.
func ValidateInsertCheckIn(insert models.InsertCheckIn) error {
	fields := map[string]string{}

	if strings.TrimSpace(insert.Feeling) == "" {
		fields["feeling"] = "Please share how you're feeling"
	}
	if strings.TrimSpace(insert.Goal) == "" {
		fields["goal"] = "Please set a simple goal for today"
	}

	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}
