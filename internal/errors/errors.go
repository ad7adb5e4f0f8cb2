package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidInputError represents malformed caller input (bad date, negative
// config values). Rejected immediately, never retried.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// DataIntegrityError represents inconsistent stored state (duplicate roster
// entry, shift ending before it starts). Aborts the allocation run; the
// schedule is never partially computed from ambiguous data.
type DataIntegrityError struct {
	Message string
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity error: %s", e.Message)
}

// StorageTimeoutError represents a storage call that exceeded its bound.
// Retryable by the caller.
type StorageTimeoutError struct {
	Operation string
}

func (e *StorageTimeoutError) Error() string {
	return fmt.Sprintf("storage timeout during %s", e.Operation)
}

// ConflictError represents a write conflict the storage layer could not
// serialize. Not expected with unique-constraint-backed upserts, but
// surfaced rather than silently merged when it happens.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrShiftNotFound     = &NotFoundError{Entity: "shift"}
	ErrOperatorNotFound  = &NotFoundError{Entity: "operator"}
	ErrMachineNotFound   = &NotFoundError{Entity: "machine"}
	ErrActionNotFound    = &NotFoundError{Entity: "maintenance action"}
	ErrOverrideNotFound  = &NotFoundError{Entity: "shift override"}
	ErrExecutionNotFound = &NotFoundError{Entity: "maintenance execution"}
)

// Already Exists Errors
var (
	ErrShiftExists    = &AlreadyExistsError{Entity: "shift", Context: "with this name"}
	ErrOverrideExists = &AlreadyExistsError{Entity: "shift override", Context: "for this operator and date"}
)

// Business Logic Errors
var (
	ErrInvalidDate        = &InvalidInputError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
	ErrNegativeBuffer     = &InvalidInputError{Field: "buffer_minutes", Message: "must not be negative"}
	ErrNegativeBreak      = &InvalidInputError{Field: "break_minutes", Message: "must not be negative"}
	ErrInvalidStatus     = errors.New("invalid execution status")
	ErrShiftWindow       = errors.New("shift must end after it starts")
	ErrBreakExceedsShift = errors.New("break cannot exceed the shift window")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}

// IsDataIntegrity checks if an error is a DataIntegrityError
func IsDataIntegrity(err error) bool {
	var integrityErr *DataIntegrityError
	return errors.As(err, &integrityErr)
}

// IsStorageTimeout checks if an error is a StorageTimeoutError
func IsStorageTimeout(err error) bool {
	var timeoutErr *StorageTimeoutError
	return errors.As(err, &timeoutErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsRetryable reports whether the caller may retry the failed call
func IsRetryable(err error) bool {
	return IsStorageTimeout(err)
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}

// NewDataIntegrityError creates a new DataIntegrityError
func NewDataIntegrityError(format string, args ...interface{}) error {
	return &DataIntegrityError{Message: fmt.Sprintf(format, args...)}
}

// NewStorageTimeoutError creates a new StorageTimeoutError
func NewStorageTimeoutError(operation string) error {
	return &StorageTimeoutError{Operation: operation}
}

// NewConflictError creates a new ConflictError
func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}
