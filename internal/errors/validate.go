package apperrors

import (
	"regexp"
	"strconv"
)

var alphanumeric = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// MinInputLength is the shortest input ValidateInput accepts.
const MinInputLength = 3

// ValidateInput checks that s is non-empty, at least MinInputLength
// characters long and strictly alphanumeric.
func ValidateInput(s string) error {
	switch {
	case s == "":
		return ValidationError{Field: "input", Message: "input cannot be empty"}
	case len(s) < MinInputLength:
		return ValidationError{
			Field:   "input",
			Message: "input must be at least 3 characters long",
			Detail:  "got " + strconv.Itoa(len(s)) + " characters",
		}
	case !alphanumeric.MatchString(s):
		return ValidationError{
			Field:   "input",
			Message: "input can only contain alphanumeric characters",
			Detail:  "allowed: a-z, A-Z, 0-9",
		}
	}
	return nil
}
