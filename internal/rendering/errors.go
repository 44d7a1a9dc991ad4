// Package rendering hydrates a portfolio page from a profile document.
package rendering

import "fmt"

// PageError represents an error parsing or serializing the page document
type PageError struct {
	Message string
	Cause   error
}

func (e *PageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("page error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("page error: %s", e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Cause
}

// LoadError represents a total failure to load profile data. The page
// carries the error notice and no section was rendered.
type LoadError struct {
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error: %v", e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
