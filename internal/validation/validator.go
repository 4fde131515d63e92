package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"todo-list/internal/config"
)

// DefaultTextMaxLength is used when no configuration is supplied.
const DefaultTextMaxLength = 500

// Validator provides common validation utilities
type Validator struct {
	clockTimeRegex *regexp.Regexp
	config         *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		clockTimeRegex: regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`),
		config:         nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := NewValidator()
	v.config = cfg
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTextLength checks the trimmed rune count against the configured maximum
func (v *Validator) IsValidTextLength(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= v.getTextMaxLength()
}

// IsValidClockTime checks for a 24-hour "HH:MM" value. Empty is allowed.
func (v *Validator) IsValidClockTime(s string) bool {
	if s == "" {
		return true
	}
	return v.clockTimeRegex.MatchString(s)
}

// IsTimeRangeValid reports whether end is after start.
//
// The comparison is lexicographic, which matches chronological order for
// zero-padded "HH:MM" values within a single day. Ranges crossing midnight
// are rejected. If either bound is empty no constraint applies.
func IsTimeRangeValid(start, end string) bool {
	if start != "" && end != "" {
		return end > start
	}
	return true
}

// IsTimeRangeValid is the method form of the package-level check.
func (v *Validator) IsTimeRangeValid(start, end string) bool {
	return IsTimeRangeValid(start, end)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TextMaxLength returns the maximum accepted task text length in runes.
func (v *Validator) TextMaxLength() int {
	return v.getTextMaxLength()
}

func (v *Validator) getTextMaxLength() int {
	if v.config != nil && v.config.Validation.TextMaxLength > 0 {
		return v.config.Validation.TextMaxLength
	}
	return DefaultTextMaxLength
}
