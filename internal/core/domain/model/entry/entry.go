// Package entry holds the aggregate root of the sample pipeline. An Entry is
// created at intake and carries its grading, cooking, offer and allotment
// through the workflow until it is approved or failed.
package entry

import (
	"errors"
	"fmt"
	"time"

	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is the aggregate root. All workflow rules are enforced here: an
// operation either moves the entry along a legal edge or fails with a typed
// error, leaving the aggregate unchanged.
type Entry struct {
	id        kernel.UUID
	entryDate time.Time
	entryType EntryType
	bags      int
	packaging Packaging
	variety   string

	status   Status
	decision LotDecision

	grading   *grading.GradingResult
	cooking   *grading.CookingResult
	offer     *pricing.Offer
	allotment *lot.Allotment

	version int

	guard kernel.ConstructorGuard
}

// NewEntry creates a validated Entry in the intake stage.
func NewEntry(
	id kernel.UUID,
	entryDate time.Time,
	entryType EntryType,
	bags int,
	packaging Packaging,
	variety string,
) (*Entry, error) {
	e := &Entry{
		status:   StatusIntake,
		decision: DecisionPending,
		guard:    kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setEntryDate(entryDate),
		e.setEntryType(entryType),
		e.setBags(bags),
		e.setPackaging(packaging),
		e.setVariety(variety),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	entryDate time.Time,
	entryType EntryType,
	bags int,
	packaging Packaging,
	variety string,
	status Status,
	decision LotDecision,
	gradingResult *grading.GradingResult,
	cookingResult *grading.CookingResult,
	offer *pricing.Offer,
	allotment *lot.Allotment,
	version int,
) (*Entry, error) {
	e, err := NewEntry(id, entryDate, entryType, bags, packaging, variety)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}

	e.status = status
	e.decision = decision
	e.grading = gradingResult
	e.cooking = cookingResult
	e.offer = offer
	e.allotment = allotment
	e.version = version

	return e, nil
}

// Validate ensures the entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID      { return e.id }
func (e *Entry) EntryDate() time.Time { return e.entryDate }
func (e *Entry) EntryType() EntryType { return e.entryType }
func (e *Entry) Bags() int            { return e.bags }
func (e *Entry) Packaging() Packaging { return e.packaging }
func (e *Entry) Variety() string      { return e.variety }
func (e *Entry) Status() Status       { return e.status }
func (e *Entry) Decision() LotDecision { return e.decision }

func (e *Entry) Grading() *grading.GradingResult { return e.grading }
func (e *Entry) Cooking() *grading.CookingResult { return e.cooking }
func (e *Entry) Offer() *pricing.Offer           { return e.offer }
func (e *Entry) Allotment() *lot.Allotment       { return e.allotment }

// Version is the optimistic concurrency token of the stored row.
func (e *Entry) Version() int { return e.version }

// AttachGrading records the quality parameters and moves the entry to the
// graded stage.
func (e *Entry) AttachGrading(g *grading.GradingResult) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	next, err := e.status.transitionTo(StatusGraded, "attachGrading")
	if err != nil {
		return err
	}

	e.grading = g
	e.status = next
	return nil
}

// UpdateGrading corrects the recorded quality parameters. Legal while the
// entry has not yet left the quality stages.
func (e *Entry) UpdateGrading(
	moisture, cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("updateGrading", StatusGraded, StatusCooking); err != nil {
		return err
	}
	return e.grading.Update(moisture, cutOne, bendOne, cutTwo, bendTwo, mixPercent, defectPercent, gradedBy)
}

// Decide records the owner's verdict on the graded lot. PassNoCook skips the
// cook test and goes straight to pricing, PassWithCook routes through the
// cooking stage, Rejected fails the entry.
func (e *Entry) Decide(decision LotDecision) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := decision.Validate(); err != nil {
		return err
	}

	var target Status
	switch decision {
	case PassNoCook:
		target = StatusPricing
	case PassWithCook:
		target = StatusCooking
	case Rejected:
		target = StatusFailed
	}

	next, err := e.status.transitionTo(target, "decide")
	if err != nil {
		return err
	}

	e.decision = decision
	e.status = next
	return nil
}

// AttachCooking records the cook report. Pass and medium advance the entry to
// pricing, fail rejects it, recheck keeps it in the cooking stage awaiting a
// fresh report.
func (e *Entry) AttachCooking(c *grading.CookingResult) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := e.status.require("attachCooking", StatusCooking); err != nil {
		return err
	}

	switch {
	case c.Status().IsPassEquivalent():
		e.status = StatusPricing
	case c.Status() == grading.CookingFail:
		e.status = StatusFailed
	}
	e.cooking = c
	return nil
}

// SetOffer records or replaces the admin's offer. The entry stays in the
// pricing stage until a supervisor is assigned.
func (e *Entry) SetOffer(o *pricing.Offer) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if err := e.status.require("setOffer", StatusPricing); err != nil {
		return err
	}

	e.offer = o
	return nil
}

// FillMissing writes manager values into the offer's delegated fields.
func (e *Entry) FillMissing(values map[pricing.FieldName]decimal.Decimal) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("fillMissing", StatusPricing); err != nil {
		return err
	}
	if e.offer == nil {
		return errs.NewObjectNotFoundError("offer", e.id.String())
	}
	return e.offer.FillMissing(values)
}

// AssignSupervisor hands the lot to a supervisor. A first assignment requires
// a complete offer and moves the entry to the allotted stage; while the lot is
// still open the assignment may be changed.
func (e *Entry) AssignSupervisor(allotmentID, supervisorID kernel.UUID, allottedBags int) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if e.status == StatusAllotted {
		return e.allotment.Reassign(supervisorID)
	}

	if err := e.status.require("assignSupervisor", StatusPricing); err != nil {
		return err
	}
	if e.offer == nil {
		return errs.NewObjectNotFoundError("offer", e.id.String())
	}
	if missing := e.offer.MissingFields(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, m := range missing {
			names[i] = string(m)
		}
		return errs.NewIncompleteDelegationError(names...)
	}

	a, err := lot.NewAllotment(allotmentID, supervisorID, allottedBags)
	if err != nil {
		return err
	}

	e.allotment = a
	e.status = StatusAllotted
	return nil
}

// RecordTrip registers a new delivery trip under the open allotment.
func (e *Entry) RecordTrip(t *lot.Trip) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("recordTrip", StatusAllotted); err != nil {
		return err
	}
	return e.allotment.AddTrip(t)
}

// RecordWeight attaches the weighbridge outcome to a trip. A direct storage
// target must declare the entry's own variety; a mismatch is a hard rejection.
func (e *Entry) RecordWeight(tripID kernel.UUID, w *lot.WeightRecord) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("recordWeight", StatusAllotted); err != nil {
		return err
	}
	if err := w.Validate(); err != nil {
		return err
	}

	if w.Target().Kind().IsDirect() && w.Target().Variety() != e.variety {
		return errs.NewVarietyMismatchError(w.Target().Variety(), e.variety)
	}

	t, err := e.allotment.TripByID(tripID)
	if err != nil {
		return err
	}
	return t.RecordWeight(w)
}

// CloseLot freezes the trip list. Weighing and settlement of the trips
// already recorded continue; once all of them are settled the entry moves to
// review.
func (e *Entry) CloseLot(at time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("closeLot", StatusAllotted); err != nil {
		return err
	}
	if err := e.allotment.Close(at); err != nil {
		return err
	}
	e.tryPromoteToReview()
	return nil
}

// SettleOwner runs the owner settlement phase over a weighed trip. The
// arithmetic terms come from the entry's offer, never from the caller.
func (e *Entry) SettleOwner(settlementID, tripID kernel.UUID, input settlement.OwnerInput) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("settleOwner", StatusAllotted); err != nil {
		return err
	}
	if e.offer == nil {
		return errs.NewObjectNotFoundError("offer", e.id.String())
	}

	t, err := e.allotment.TripByID(tripID)
	if err != nil {
		return err
	}
	w := t.Weight()
	if w == nil {
		return errs.NewInvalidTransitionError("settleOwner", lot.StageDelivering.String())
	}

	terms := settlement.Terms{
		BaseRateType:  e.offer.BaseRateType(),
		BaseRateUnit:  e.offer.BaseRateUnit(),
		CustomDivisor: e.offer.CustomDivisor(),
	}
	stl, err := settlement.NewOwnerSettlement(settlementID, terms, t.Bags(), w.NetWeight(), input)
	if err != nil {
		return err
	}
	return w.AttachSettlement(stl)
}

// SettleManager runs the manager settlement phase over an owner-settled trip
// and promotes the entry to review once the closed lot is fully settled.
func (e *Entry) SettleManager(tripID kernel.UUID, input settlement.ManagerInput) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if err := e.status.require("settleManager", StatusAllotted); err != nil {
		return err
	}

	t, err := e.allotment.TripByID(tripID)
	if err != nil {
		return err
	}
	w := t.Weight()
	if w == nil || w.Settlement() == nil {
		return errs.NewInvalidTransitionError("settleManager", t.Stage().String())
	}

	if err := w.Settlement().ApplyManagerPhase(input); err != nil {
		return err
	}
	e.tryPromoteToReview()
	return nil
}

// ApproveReview is the terminal approval.
func (e *Entry) ApproveReview() error {
	if err := e.Validate(); err != nil {
		return err
	}
	next, err := e.status.transitionTo(StatusDone, "approveReview")
	if err != nil {
		return err
	}
	e.status = next
	return nil
}

// tryPromoteToReview moves an allotted entry to review once the lot is closed
// and every recorded trip is manager-settled.
func (e *Entry) tryPromoteToReview() {
	if e.status != StatusAllotted {
		return
	}
	if e.allotment.IsClosed() && e.allotment.AllSettled() {
		e.status = StatusReview
	}
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setEntryDate(entryDate time.Time) error {
	if entryDate.IsZero() {
		return errs.NewValueIsRequiredError("entryDate")
	}
	e.entryDate = entryDate
	return nil
}

func (e *Entry) setEntryType(entryType EntryType) error {
	if err := entryType.Validate(); err != nil {
		return err
	}
	e.entryType = entryType
	return nil
}

func (e *Entry) setBags(bags int) error {
	if bags <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("bags", fmt.Errorf("%d is not greater than 0", bags))
	}
	e.bags = bags
	return nil
}

func (e *Entry) setPackaging(packaging Packaging) error {
	if err := packaging.Validate(); err != nil {
		return err
	}
	e.packaging = packaging
	return nil
}

func (e *Entry) setVariety(variety string) error {
	if variety == "" {
		return errs.NewValueIsRequiredError("variety")
	}
	e.variety = variety
	return nil
}
