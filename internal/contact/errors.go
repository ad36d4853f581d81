package contact

import (
	"errors"
	"fmt"
)

// ValidationError reports a required field that is missing or blank after
// trimming. No write is performed when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError reports an operation that referenced an id with no stored
// row. Reads and updates return it for unknown ids; deletes do not.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contact %d not found", e.ID)
}

// StorageError wraps an engine-level failure (I/O, locked database, schema
// drift). Op names the store operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStorage reports whether err is, or wraps, a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
