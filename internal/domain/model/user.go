package model

import "time"

// User is a customer record. Users registered via the API carry a password
// hash; users created implicitly during order placement do not.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        *string
	Address      *string
	PasswordHash *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
