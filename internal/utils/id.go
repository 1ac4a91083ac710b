package utils

import "github.com/google/uuid"

// NewConnID returns a process-unique identifier for a transport session.
func NewConnID() string {
	return uuid.NewString()
}
