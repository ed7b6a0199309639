package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every typed error in this
// package unwraps to exactly one of these.
var (
	ErrValueIsRequired         = errors.New("value is required")
	ErrValueIsInvalid          = errors.New("value is invalid")
	ErrValueIsOutOfRange       = errors.New("value is out of range")
	ErrObjectNotFound          = errors.New("object not found")
	ErrInvalidTransition       = errors.New("invalid workflow transition")
	ErrUnauthorized            = errors.New("role is not allowed to perform operation")
	ErrIncompleteDelegation    = errors.New("pricing delegation is incomplete")
	ErrFieldOwnershipViolation = errors.New("field is owned by another role")
	ErrVarietyMismatch         = errors.New("variety does not match entry variety")
	ErrConcurrencyConflict     = errors.New("aggregate was modified concurrently")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates that a required value is missing.
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
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
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
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value outside its allowed bounds.
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

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, allowed range is [%s, %s]",
		ErrValueIsOutOfRange, sanitize(e.ParamName), sanitize(e.Value), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates that an entity could not be located by its identifier.
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
		return fmt.Sprintf("%s: %s %s (cause: %s)", ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates an operation called while the entry is not in
// the operation's required source state. The entry is left unchanged.
type InvalidTransitionError struct {
	Operation string
	From      string
}

func NewInvalidTransitionError(operation, from string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, From: from}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not legal from %s", ErrInvalidTransition, sanitize(e.Operation), sanitize(e.From))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// UnauthorizedError indicates the caller's role is not in the operation's allowlist.
type UnauthorizedError struct {
	Operation string
	Role      string
}

func NewUnauthorizedError(operation, role string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Role: role}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s may not call %s", ErrUnauthorized, sanitize(e.Role), sanitize(e.Operation))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// IncompleteDelegationError indicates an attempt to advance past the pricing
// stage while delegated fields are still unfilled.
type IncompleteDelegationError struct {
	MissingFields []string
}

func NewIncompleteDelegationError(missingFields ...string) *IncompleteDelegationError {
	return &IncompleteDelegationError{MissingFields: missingFields}
}

func (e *IncompleteDelegationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrIncompleteDelegation, strings.Join(e.MissingFields, ", "))
}

func (e *IncompleteDelegationError) Unwrap() error {
	return ErrIncompleteDelegation
}

// FieldOwnershipViolationError indicates a write to a pricing field owned by
// the other role, regardless of whether the value would have changed.
type FieldOwnershipViolationError struct {
	FieldName string
	OwnedBy   string
}

func NewFieldOwnershipViolationError(fieldName, ownedBy string) *FieldOwnershipViolationError {
	return &FieldOwnershipViolationError{FieldName: fieldName, OwnedBy: ownedBy}
}

func (e *FieldOwnershipViolationError) Error() string {
	return fmt.Sprintf("%s: %s is owned by %s", ErrFieldOwnershipViolation, sanitize(e.FieldName), sanitize(e.OwnedBy))
}

func (e *FieldOwnershipViolationError) Unwrap() error {
	return ErrFieldOwnershipViolation
}

// VarietyMismatchError indicates a direct-storage target declared a variety
// different from the entry's variety. This is always a hard rejection.
type VarietyMismatchError struct {
	Declared string
	Expected string
}

func NewVarietyMismatchError(declared, expected string) *VarietyMismatchError {
	return &VarietyMismatchError{Declared: declared, Expected: expected}
}

func (e *VarietyMismatchError) Error() string {
	return fmt.Sprintf("%s: declared %s, entry holds %s", ErrVarietyMismatch, sanitize(e.Declared), sanitize(e.Expected))
}

func (e *VarietyMismatchError) Unwrap() error {
	return ErrVarietyMismatch
}

// ConcurrencyConflictError indicates that the optimistic version check failed
// while persisting the aggregate; the caller should retry with fresh state.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
}

func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrConcurrencyConflict, sanitize(e.ParamName), sanitize(e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
