package ledger

import "errors"

// ErrTransactionNotFound is returned by DeleteTransaction when no row
// matches the requested id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ValidationError reports caller-supplied input that violates a
// precondition. Nothing is persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// StorageError wraps a failure of the underlying store. The service never
// retries; the cause is surfaced to the caller as an opaque failure.
type StorageError struct {
	Err error
}

func (e StorageError) Error() string {
	return "storage: " + e.Err.Error()
}

func (e StorageError) Unwrap() error {
	return e.Err
}
