package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports caller supplied input that is missing or cannot
	// be parsed into the required type.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound reports an operation on an id absent from its collection.
	ErrNotFound = errors.New("record not found")

	// ErrReferential reports a create or update that would point a donation or
	// volunteer project at a parent that does not exist.
	ErrReferential = errors.New("dangling reference")
)

const reasonRequired = "is required"

type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Missing reports whether the field was required and left empty.
func (e *ValidationError) Missing() bool {
	return e.Reason == reasonRequired
}

type NotFoundError struct {
	Kind Kind
	ID   uint

	// Link is the volunteer project still pointing at the missing record,
	// zero when the lookup was by id.
	Link uint
}

func (e *NotFoundError) Error() string {
	if e.Link != 0 {
		return fmt.Sprintf("%s %d not found (volunteer project %d)", e.Kind, e.ID, e.Link)
	}
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

type ReferenceError struct {
	Kind Kind
	ID   uint
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Kind, e.ID)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferential
}
