package service

import "fmt"

// ValidationError rejects a request before any work starts, e.g. an upload
// with no collaborator selected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
