package errs_test

import (
	"errors"
	"testing"

	"mandi/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("entry", "123")

		assert.Equal(t, "entry", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: entry 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("entry", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: entry 123 (cause: database connection failed)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("bags")

		assert.Equal(t, "bags", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: bags", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("must be greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("bags", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: bags (cause: must be greater than 0)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("moisture", 150, 0, 100)

	assert.Equal(t, "moisture", err.ParamName)
	assert.Equal(t, 150, err.Value)
	assert.Equal(t, 0, err.Min)
	assert.Equal(t, 100, err.Max)
	assert.Equal(t, "value is out of range: moisture is 150, allowed range is [0, 100]", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())

	t.Run("sanitizes newlines", func(t *testing.T) {
		multi := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, multi.Error(), "hello world")
		assert.NotContains(t, multi.Error(), "\n")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("settleOwner", "Pricing")

	assert.Equal(t, "settleOwner", err.Operation)
	assert.Equal(t, "Pricing", err.From)
	assert.Equal(t, "invalid workflow transition: settleOwner is not legal from Pricing", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("setOffer", "supervisor")

	assert.Equal(t, "role is not allowed to perform operation: supervisor may not call setOffer", err.Error())
	assert.Equal(t, errs.ErrUnauthorized, err.Unwrap())
}

func TestIncompleteDelegationError(t *testing.T) {
	err := errs.NewIncompleteDelegationError("hamali", "lf")

	assert.Equal(t, []string{"hamali", "lf"}, err.MissingFields)
	assert.Equal(t, "pricing delegation is incomplete: missing hamali, lf", err.Error())
	assert.Equal(t, errs.ErrIncompleteDelegation, err.Unwrap())
}

func TestFieldOwnershipViolationError(t *testing.T) {
	err := errs.NewFieldOwnershipViolationError("brokerage", "admin")

	assert.Equal(t, "field is owned by another role: brokerage is owned by admin", err.Error())
	assert.Equal(t, errs.ErrFieldOwnershipViolation, err.Unwrap())
}

func TestVarietyMismatchError(t *testing.T) {
	err := errs.NewVarietyMismatchError("Sona Masoori", "BPT 5204")

	assert.Equal(t, "variety does not match entry variety: declared Sona Masoori, entry holds BPT 5204", err.Error())
	assert.Equal(t, errs.ErrVarietyMismatch, err.Unwrap())
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("entry", "42")

	assert.Equal(t, "aggregate was modified concurrently: entry 42", err.Error())
	assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("entry", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("bags"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("variety"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewInvalidTransitionError("decide", "Intake"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewUnauthorizedError("decide", "staff"), errs.ErrUnauthorized)
	require.ErrorIs(t, errs.NewIncompleteDelegationError("sute"), errs.ErrIncompleteDelegation)
	require.ErrorIs(t, errs.NewFieldOwnershipViolationError("lf", "manager"), errs.ErrFieldOwnershipViolation)
	require.ErrorIs(t, errs.NewVarietyMismatchError("a", "b"), errs.ErrVarietyMismatch)
	require.ErrorIs(t, errs.NewConcurrencyConflictError("entry", 7), errs.ErrConcurrencyConflict)
}
