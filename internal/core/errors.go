package core

import "fmt"

// NotFoundError represents a resource that could not be found.
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// IsNotFound checks if an error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*NotFoundError)
	return ok
}

// InvalidRating is returned at ingress when a rating field is non-finite
// (NaN or +/-Inf). The core itself never produces or accepts such values.
type InvalidRating struct {
	PlayerID PlayerID
	Field    string
}

func (e *InvalidRating) Error() string {
	return fmt.Sprintf("invalid rating for player %s: field %q is not finite", e.PlayerID, e.Field)
}

// DuplicateIdentifier is returned at ingress when two players in the same
// roster share an identifier.
type DuplicateIdentifier struct {
	ID PlayerID
}

func (e *DuplicateIdentifier) Error() string {
	return fmt.Sprintf("duplicate player identifier: %s", e.ID)
}
