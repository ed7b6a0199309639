// Package errs provides the typed error kinds returned by the workflow core.
//
// Every operation on an entry either fully commits or rejects with one of
// these errors; none of them is retried inside the core, since all of them
// describe caller or precondition faults rather than transient failures.
//
// Each error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrInvalidTransition)
//   - a struct type carrying the details
//   - constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() so errors.Is classification works
//
// The workflow-specific kinds are InvalidTransition, Unauthorized,
// IncompleteDelegation, FieldOwnershipViolation, VarietyMismatch and
// ConcurrencyConflict; generic validation faults use ValueIsRequired,
// ValueIsInvalid, ValueIsOutOfRange and ObjectNotFound.
package errs
