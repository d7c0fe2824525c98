package domain

import (
	"errors"
	"fmt"
)

// ErrUnsupportedKind is returned when a kind outside the catalog is requested.
var ErrUnsupportedKind = errors.New("unsupported element kind")

// ErrInvariantViolation marks malformed input handed to the compiler.
// It signals a caller bug and is not meant to be shown to authors.
var ErrInvariantViolation = errors.New("invariant violation")

// InvariantError locates an invariant violation.
type InvariantError struct {
	ScreenID  string
	ElementID string
	Reason    string
}

func (e *InvariantError) Error() string {
	if e.ElementID != "" {
		return fmt.Sprintf("%s: screen %q element %q: %s", ErrInvariantViolation, e.ScreenID, e.ElementID, e.Reason)
	}
	return fmt.Sprintf("%s: screen %q: %s", ErrInvariantViolation, e.ScreenID, e.Reason)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

// Code classifies validation issues and fatal errors.
type Code string

const (
	CodeContentLimitExceeded Code = "ContentLimitExceeded"
	CodeCountLimitExceeded   Code = "CountLimitExceeded"
	CodeUnsupportedKind      Code = "UnsupportedKind"
	CodeInvariantViolation   Code = "InvariantViolation"
)

// ErrCacheMiss is returned by document caches for absent keys.
var ErrCacheMiss = errors.New("cache miss")
