package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Constraint messages shown to the user when a field is rejected.
const (
	NameConstraints       = "Names should contain letters, spaces, parenthesis or slashes only, and it should not be blank"
	PhoneConstraints      = "Phone numbers should only contain numbers, and it should be at least 3 digits long"
	EmailConstraints      = "Emails should be of the format local-part@domain"
	AddressConstraints    = "Addresses can take any values, and it should not be blank"
	ClientTypeConstraints = "Client types should be alphanumeric words separated by spaces, and it should not be blank"
)

var (
	namePattern       = regexp.MustCompile(`^[\p{L}()/]+( [\p{L}()/]+)*$`)
	phonePattern      = regexp.MustCompile(`^\d{3,}$`)
	emailPattern      = regexp.MustCompile(`^[\w+\-.]+@[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9\-]*[A-Za-z0-9])?)*$`)
	clientTypePattern = regexp.MustCompile(`^[\p{L}\p{N}]+( [\p{L}\p{N}]+)*$`)
)

// ValidName reports whether s is an acceptable name
func ValidName(s string) bool { return namePattern.MatchString(s) }

// ValidPhone reports whether s is an acceptable phone number
func ValidPhone(s string) bool { return phonePattern.MatchString(s) }

// ValidEmail reports whether s is an acceptable email address
func ValidEmail(s string) bool { return emailPattern.MatchString(s) }

// ValidAddress reports whether s is an acceptable address
func ValidAddress(s string) bool { return strings.TrimSpace(s) != "" }

// ValidClientType reports whether s is an acceptable client type
func ValidClientType(s string) bool { return clientTypePattern.MatchString(s) }

// Validate checks every field of p and returns the first violated constraint.
func (p Person) Validate() error {
	switch {
	case !ValidName(p.Name):
		return errors.New(NameConstraints)
	case !ValidPhone(p.Phone):
		return errors.New(PhoneConstraints)
	case !ValidEmail(p.Email):
		return errors.New(EmailConstraints)
	case !ValidAddress(p.Address):
		return errors.New(AddressConstraints)
	}
	for _, ct := range p.ClientTypes {
		if !ValidClientType(ct) {
			return errors.New(ClientTypeConstraints)
		}
	}
	return nil
}
