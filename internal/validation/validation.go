// Package validation enforces the input rules for profile fields.
package validation

import (
	"fmt"
	"regexp"

	"github.com/daxog/gitus/internal/apperr"
	"github.com/daxog/gitus/internal/profile"
)

// Limits configures the validation bounds. Passed in explicitly so tests
// and the settings file can override the defaults.
type Limits struct {
	MaxUsernameLength int
	MaxEmailLength    int
	MaxAliasLength    int
	ReservedAlias     string
}

// DefaultLimits returns the standard validation bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxUsernameLength: 30,
		MaxEmailLength:    100,
		MaxAliasLength:    30,
		ReservedAlias:     "back",
	}
}

// Simple email validation regex
var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validator checks candidate profile fields against the configured
// limits and the existing collection. Each rule set is checked in order;
// the first failing rule wins.
type Validator struct {
	limits Limits
}

// New creates a Validator with the given limits.
func New(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// ReservedAlias returns the alias value reserved for menu navigation.
func (v *Validator) ReservedAlias() string {
	return v.limits.ReservedAlias
}

// Username validates a candidate Git username.
func (v *Validator) Username(name string, existing profile.Collection) error {
	if name == "" {
		return &apperr.ValidationError{Reason: "username cannot be empty"}
	}
	if len(name) > v.limits.MaxUsernameLength {
		return &apperr.ValidationError{Reason: fmt.Sprintf("username too long (max %d characters)", v.limits.MaxUsernameLength)}
	}
	if existing.HasUsername(name) {
		return &apperr.ValidationError{Reason: "username already exists"}
	}
	return nil
}

// Email validates a candidate Git email address.
func (v *Validator) Email(email string, existing profile.Collection) error {
	if email == "" {
		return &apperr.ValidationError{Reason: "email cannot be empty"}
	}
	if len(email) > v.limits.MaxEmailLength {
		return &apperr.ValidationError{Reason: fmt.Sprintf("email too long (max %d characters)", v.limits.MaxEmailLength)}
	}
	if !emailRe.MatchString(email) {
		return &apperr.ValidationError{Reason: "invalid email format"}
	}
	if existing.HasEmail(email) {
		return &apperr.ValidationError{Reason: "email already exists"}
	}
	return nil
}

// Alias validates a candidate profile alias.
func (v *Validator) Alias(alias string, existing profile.Collection) error {
	if alias == "" {
		return &apperr.ValidationError{Reason: "alias cannot be empty"}
	}
	if len(alias) > v.limits.MaxAliasLength {
		return &apperr.ValidationError{Reason: fmt.Sprintf("alias too long (max %d characters)", v.limits.MaxAliasLength)}
	}
	if alias == v.limits.ReservedAlias {
		return &apperr.ValidationError{Reason: fmt.Sprintf("alias cannot be '%s'", v.limits.ReservedAlias)}
	}
	if existing.HasAlias(alias) {
		return &apperr.ValidationError{Reason: "alias already exists"}
	}
	return nil
}
