package service

import (
	"errors"
	"fmt"

	"axiapac.com/timesheets/store"
)

var (
	ErrTimesheetNotFound = errors.New("Not found")
	ErrTaskNotFound      = errors.New("Task not found")
	ErrArchiveDisabled   = errors.New("archive is not configured")
	ErrArchiveNotFound   = errors.New("Archive not found")
)

// ValidationError is a semantic input error that the caller can fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func timesheetErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTimesheetNotFound
	}
	return err
}

func taskErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrTaskNotFound
	}
	return err
}
