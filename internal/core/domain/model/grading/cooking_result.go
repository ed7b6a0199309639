package grading

import (
	"errors"
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"
)

// ErrCookingResultIsNotConstructed is returned when a CookingResult was not
// created through NewCookingResult.
var ErrCookingResultIsNotConstructed = errors.New("CookingResult must be created via NewCookingResult constructor")

// CookingStatus is the outcome of the cook test.
type CookingStatus int

const (
	// CookingUnknown catches uninitialized status values.
	CookingUnknown CookingStatus = iota

	CookingPass
	CookingFail
	CookingRecheck

	// CookingMedium is recorded as-is but evaluated as a pass: a medium cook
	// does not block the entry from entering the pricing stage.
	CookingMedium
)

func cookingStatusStrings() map[CookingStatus]string {
	return map[CookingStatus]string{
		CookingUnknown: "Unknown",
		CookingPass:    "Pass",
		CookingFail:    "Fail",
		CookingRecheck: "Recheck",
		CookingMedium:  "Medium",
	}
}

// String implements fmt.Stringer.
func (s CookingStatus) String() string {
	if str, ok := cookingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects CookingUnknown and out-of-range values.
func (s CookingStatus) Validate() error {
	if s == CookingUnknown {
		return errs.NewValueIsInvalidErrorWithCause("cookingStatus", fmt.Errorf("%d is not a valid cooking status", s))
	}
	if _, ok := cookingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("cookingStatus", fmt.Errorf("%d is not a valid cooking status", s))
	}
	return nil
}

// IsPassEquivalent reports whether the status lets the entry advance to
// pricing. Medium counts as a pass.
func (s CookingStatus) IsPassEquivalent() bool {
	return s == CookingPass || s == CookingMedium
}

// CookingResult is the cook-test report attached to an entry whose lot
// decision was pass-with-cooking.
type CookingResult struct {
	id      kernel.UUID
	status  CookingStatus
	remarks string

	guard kernel.ConstructorGuard
}

// NewCookingResult creates a validated CookingResult.
func NewCookingResult(id kernel.UUID, status CookingStatus, remarks string) (*CookingResult, error) {
	c := &CookingResult{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(c.setID(id), c.setStatus(status)); err != nil {
		return nil, err
	}
	c.remarks = remarks

	return c, nil
}

// RestoreCookingResult reconstructs a CookingResult from persistence.
func RestoreCookingResult(id kernel.UUID, status CookingStatus, remarks string) (*CookingResult, error) {
	return NewCookingResult(id, status, remarks)
}

// Validate ensures the result was properly constructed.
func (c *CookingResult) Validate() error {
	if c == nil {
		return ErrCookingResultIsNotConstructed
	}
	return c.guard.Validate(ErrCookingResultIsNotConstructed)
}

func (c *CookingResult) ID() kernel.UUID       { return c.id }
func (c *CookingResult) Status() CookingStatus { return c.status }
func (c *CookingResult) Remarks() string       { return c.remarks }

// DisplayStatus is the status shown to callers: Medium re-evaluates to Pass.
func (c *CookingResult) DisplayStatus() CookingStatus {
	if c.status == CookingMedium {
		return CookingPass
	}
	return c.status
}

func (c *CookingResult) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CookingResult) setStatus(status CookingStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
