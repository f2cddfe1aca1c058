package validate

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/huyi122/Ticket-Master/model"
)

var validate = validator.New()

var ErrInvalidBackup = errors.New("invalid backup payload")

// Struct validates any input struct against its validate tags.
func Struct(input any) error {
	return validate.Struct(input)
}

// BackupPayload rejects a restored document wholesale unless the top-level
// shape matches: version 1, a timestamp, and both arrays present. There is
// no partial import.
func BackupPayload(doc *model.BackupData) error {
	if doc == nil {
		return ErrInvalidBackup
	}
	if doc.Events == nil || doc.Tickets == nil {
		return fmt.Errorf("%w: missing events or tickets", ErrInvalidBackup)
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return nil
}
