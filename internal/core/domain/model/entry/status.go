package entry

import (
	"fmt"

	"mandi/internal/pkg/errs"
)

// Status is the workflow stage of a sample entry. The post-allotment
// progress (delivering, weighed, settled) is derived per trip and is not part
// of the stored status.
type Status int

const (
	// StatusUnknown catches uninitialized status values.
	StatusUnknown Status = iota

	// StatusIntake: the entry exists, no grading yet.
	StatusIntake

	// StatusGraded: quality parameters recorded, awaiting the lot decision.
	StatusGraded

	// StatusCooking: decision was pass-with-cooking, awaiting the cook report.
	StatusCooking

	// StatusPricing: the admin may record an offer; delegated fields may still
	// be open.
	StatusPricing

	// StatusAllotted: a supervisor holds the lot, trips are being recorded.
	StatusAllotted

	// StatusReview: the lot is closed and every trip is fully settled,
	// awaiting the final approval.
	StatusReview

	// StatusDone is terminal: the entry passed review.
	StatusDone

	// StatusFailed is terminal: the lot was rejected at decision or cooking.
	StatusFailed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "Unknown",
		StatusIntake:   "Intake",
		StatusGraded:   "Graded",
		StatusCooking:  "Cooking",
		StatusPricing:  "Pricing",
		StatusAllotted: "Allotted",
		StatusReview:   "Review",
		StatusDone:     "Done",
		StatusFailed:   "Failed",
	}
}

func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusIntake:   {StatusGraded},
		StatusGraded:   {StatusCooking, StatusPricing, StatusFailed},
		StatusCooking:  {StatusPricing, StatusFailed},
		StatusPricing:  {StatusAllotted},
		StatusAllotted: {StatusReview},
		StatusReview:   {StatusDone},
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid entry status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid entry status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusFailed
}

// transitionTo moves the status along a legal edge or reports an invalid
// transition for the named operation, leaving the status unchanged.
func (s Status) transitionTo(next Status, operation string) (Status, error) {
	for _, allowed := range statusTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, errs.NewInvalidTransitionError(operation, s.String())
}

// require reports an invalid transition unless the status is one of the
// given stages. Used by operations that mutate within a stage.
func (s Status) require(operation string, stages ...Status) error {
	for _, stage := range stages {
		if s == stage {
			return nil
		}
	}
	return errs.NewInvalidTransitionError(operation, s.String())
}
