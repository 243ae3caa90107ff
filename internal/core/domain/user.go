package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models an account resolved from a third-party identity assertion.
// ExternalID holds the provider's stable subject identifier; it stays empty
// for pre-provisioned accounts until their first provider sign-in links it.
// Email and ExternalID are each unique across users.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ExternalID string    `json:"external_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
