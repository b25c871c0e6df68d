package utils

import "github.com/google/uuid"

// NewID returns a random UUID string.
func NewID() string {
	return uuid.NewString()
}

// ShortID returns the first 8 hex characters of a random UUID, for directory names.
func ShortID() string {
	return NewID()[:8]
}
