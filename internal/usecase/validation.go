package usecase

import (
	"regexp"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether the address has a plausible mailbox@domain shape.
// Full RFC validation is the transport layer's concern.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidID reports whether id parses as a UUID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
