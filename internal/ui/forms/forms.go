// Package forms holds the per-entity form controllers. A controller loads
// the selected record into transient form data, validates and runs the
// save mutation on submit, and routes deletes through the global
// confirmation slot. A successful submit closes the dialog and resets the
// form; a failed one keeps the entered data so the user can correct it.
package forms

import (
	"errors"

	"github.com/nutridash/backend/internal/validation"
)

// ErrSubmitSuspended is returned while a nested reference-creation dialog
// is open; submitting the parent then would race the nested creation.
var ErrSubmitSuspended = errors.New("submit is suspended while a nested dialog is open")

// deleteTarget adapts a bare identifier to the mutation input contract.
type deleteTarget struct {
	ID uint
}

func (d deleteTarget) Validate() validation.FieldErrors {
	if d.ID == 0 {
		return validation.FieldErrors{"id": "id is required"}
	}
	return nil
}
