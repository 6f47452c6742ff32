// Package validation checks single form field values against the rules used
// by the contact, login and admin training forms. Every rule is a pure
// predicate returning nil or an error carrying the user-facing message;
// surfacing the message is the caller's job.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field validation regex patterns
var (
	EmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Nigerian mobile format: +234/234/0 prefix, then 7/8/9, then 0/1,
	// then eight more digits.
	PhoneRegex    = regexp.MustCompile(`^(\+234|234|0)[7-9][0-1]\d{8}$`)
	URLRegex      = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
	NameRegex     = regexp.MustCompile(`^[a-zA-Z\s'-]{2,50}$`)
	DurationRegex = regexp.MustCompile(`(?i)^\d+\s*(day|week|month|year)s?$`)
	letterRegex   = regexp.MustCompile(`[a-zA-Z]`)
	digitRegex    = regexp.MustCompile(`\d`)
)

// Required fails when the trimmed value is empty.
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("This field is required")
	}
	return nil
}

// Email checks for a local@domain.tld shape.
func Email(value string) error {
	if value != "" && !EmailRegex.MatchString(value) {
		return fmt.Errorf("Please enter a valid email address")
	}
	return nil
}

// Phone checks for a valid Nigerian mobile number. Spaces are ignored.
func Phone(value string) error {
	if value != "" && !PhoneRegex.MatchString(strings.ReplaceAll(value, " ", "")) {
		return fmt.Errorf("Please enter a valid Nigerian phone number")
	}
	return nil
}

// URL checks for a permissive scheme+host+path shape.
func URL(value string) error {
	if value != "" && !URLRegex.MatchString(value) {
		return fmt.Errorf("Please enter a valid URL")
	}
	return nil
}

// Number checks that the value parses as a number within the optional
// min/max bounds.
func Number(value string, min, max *float64) error {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("Please enter a valid number")
	}
	if min != nil && n < *min {
		return fmt.Errorf("Value must be at least %v", *min)
	}
	if max != nil && n > *max {
		return fmt.Errorf("Value must not exceed %v", *max)
	}
	return nil
}

// Name checks for 2-50 characters of letters, spaces, hyphens and
// apostrophes.
func Name(value string) error {
	if value != "" && !NameRegex.MatchString(value) {
		return fmt.Errorf("Please enter a valid name (2-50 characters, letters only)")
	}
	return nil
}

// Password checks the password policy and, when a confirmation value is
// supplied, that the two match.
func Password(value string, confirm *string) error {
	if value == "" {
		return nil
	}
	if len(value) < 8 {
		return fmt.Errorf("Password must be at least 8 characters long")
	}
	if !letterRegex.MatchString(value) || !digitRegex.MatchString(value) {
		return fmt.Errorf("Password must contain at least one letter and one number")
	}
	if confirm != nil && *confirm != "" && value != *confirm {
		return fmt.Errorf("Passwords do not match")
	}
	return nil
}

// Price checks for a non-negative number.
func Price(value string) error {
	if value == "" {
		return nil
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("Price must be a positive number")
	}
	return nil
}

// Duration checks the loose quantity-and-unit grammar, e.g. "3 months".
func Duration(value string) error {
	if value != "" && !DurationRegex.MatchString(value) {
		return fmt.Errorf("Duration format: e.g., \"3 months\", \"6 weeks\"")
	}
	return nil
}
