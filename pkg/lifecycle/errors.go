package lifecycle

import (
	"errors"
	"fmt"

	"github.com/Eloura74/Backbone/pkg/models"
)

// The lifecycle error taxonomy. All three are recoverable and carry enough
// context for a user-facing message; none is retried silently.

// ValidationError reports a missing or malformed required field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError reports an item id that references nothing.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("inbox item not found: %s", e.ID)
}

// InvalidStateError reports an operation illegal in the item's current
// state, e.g. editing or re-processing an archived item.
type InvalidStateError struct {
	ID     string
	Status models.Status
	Op     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s item %s in state %s", e.Op, e.ID, e.Status)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidState reports whether err is an InvalidStateError.
func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}
