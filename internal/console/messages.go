package console

import (
	"errors"
	"fmt"

	"github.com/charityfund/charity/internal/store"
)

// message turns an operation error into the single line shown to the operator.
func message(err error) string {
	var verr *store.ValidationError
	var nerr *store.NotFoundError
	var rerr *store.ReferenceError

	switch {
	case errors.As(err, &verr):
		if verr.Missing() {
			return fmt.Sprintf("%s is required.", titleWords(verr.Field))
		}
		return fmt.Sprintf("Invalid %s.", verr.Field)
	case errors.As(err, &nerr) && nerr.Link != 0:
		return fmt.Sprintf("%s %d not found (volunteer project %d).", nerr.Kind.Title(), nerr.ID, nerr.Link)
	case errors.As(err, &nerr):
		return fmt.Sprintf("%s not found.", nerr.Kind.Title())
	case errors.As(err, &rerr):
		return fmt.Sprintf("%s %d does not exist.", rerr.Kind.Title(), rerr.ID)
	case errors.Is(err, store.ErrValidation):
		return "Invalid input."
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}
