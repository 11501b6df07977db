// Package validate holds the user validation rules shared by every
// architecture variant. The id rule is pluggable so each variant can pick
// its policy once and apply it uniformly.
package validate

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"

	"userarch/pkg/apperrors"
)

// emailPattern accepts local@domain.tld shapes: no spaces, no second @,
// at least one dot in the domain part. Intentionally nothing stricter.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IDPolicy validates a user id. Implementations return a validation error
// or nil.
type IDPolicy func(id string) error

// NonEmptyID accepts any non-empty identifier.
func NonEmptyID(id string) error {
	if id == "" {
		return apperrors.New(apperrors.CodeValidation, "User ID is required")
	}
	return nil
}

// UUIDID requires the canonical hyphenated UUID textual form, hex case
// insensitive. govalidator.IsUUID only matches lowercase, so fold first.
func UUIDID(id string) error {
	if id == "" || !govalidator.IsUUID(strings.ToLower(id)) {
		return apperrors.New(apperrors.CodeValidation, "User ID is required and must be a valid UUID")
	}
	return nil
}

// Name requires at least two characters after trimming whitespace. An empty
// name fails with the same message as a too-short one; one rule, one message.
func Name(name string) error {
	if len(strings.TrimSpace(name)) < 2 {
		return apperrors.New(apperrors.CodeValidation, "Name must be at least 2 characters long")
	}
	return nil
}

// Email checks the accepted address shape.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return apperrors.New(apperrors.CodeValidation, "Invalid email format")
	}
	return nil
}

// User runs the full rule set in the contract order: id, name, email.
func User(policy IDPolicy, id, name, email string) error {
	if err := policy(id); err != nil {
		return err
	}
	if err := Name(name); err != nil {
		return err
	}
	return Email(email)
}
