package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrReferenceNotFound   = errors.New("referenced object does not exist")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
)

// ObjectNotFoundError reports that the primary target of an operation does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ReferenceNotFoundError reports that an id referenced by a write does not denote
// a live row. Kind names the referenced entity ("pizza", "order", "item").
type ReferenceNotFoundError struct {
	Kind  string
	ID    any
	Cause error
}

func NewReferenceNotFoundError(kind string, id any) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Kind: kind, ID: id}
}

func NewReferenceNotFoundErrorWithCause(kind string, id any, cause error) *ReferenceNotFoundError {
	return &ReferenceNotFoundError{Kind: kind, ID: id, Cause: cause}
}

func (e *ReferenceNotFoundError) Error() string {
	msg := fmt.Sprintf("referenced %s does not exist: %v", e.Kind, e.ID)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ReferenceNotFoundError) Unwrap() error {
	return ErrReferenceNotFound
}

// ConstraintViolationError is returned when the store rejects a statement because
// of a foreign key or check constraint, e.g. deleting a pizza that order items
// still reference.
type ConstraintViolationError struct {
	Constraint string
	Cause      error
}

func NewConstraintViolationError(constraint string) *ConstraintViolationError {
	return &ConstraintViolationError{Constraint: constraint}
}

func NewConstraintViolationErrorWithCause(constraint string, cause error) *ConstraintViolationError {
	return &ConstraintViolationError{Constraint: constraint, Cause: cause}
}

func (e *ConstraintViolationError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrConstraintViolation, e.Constraint)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConstraintViolationError) Unwrap() error {
	return ErrConstraintViolation
}

// StorageUnavailableError wraps any lower-layer failure the caller cannot act on.
type StorageUnavailableError struct {
	Cause error
}

func NewStorageUnavailableError(cause error) *StorageUnavailableError {
	return &StorageUnavailableError{Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrStorageUnavailable, e.Cause)
	}
	return ErrStorageUnavailable.Error()
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}

type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// sanitize keeps user supplied values on a single log line.
func sanitize(v any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprint(v))
}

// IsValidation reports whether err was caused by invalid caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange) ||
		errors.Is(err, ErrValueIsRequired)
}
