package lot

import (
	"errors"
	"fmt"
	"time"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"
)

var (
	// ErrAllotmentIsNotConstructed is returned when an Allotment was not
	// created through NewAllotment.
	ErrAllotmentIsNotConstructed = errors.New("Allotment must be created via NewAllotment constructor")

	// ErrAllotmentAlreadyClosed is returned when a closed allotment is closed
	// again.
	ErrAllotmentAlreadyClosed = errors.New("allotment is already closed")

	// ErrAllotmentIsClosed rejects any mutation of trips after the lot was
	// closed. Closing is terminal for the physical side of the entry.
	ErrAllotmentIsClosed = errors.New("allotment is closed")
)

// Allotment binds the lot to one supervisor and collects the delivery trips
// made under it. Once closed, no further trips may be recorded; the trips
// already on it continue through weighing and settlement.
type Allotment struct {
	id            kernel.UUID
	supervisorID  kernel.UUID
	allottedBags  int
	closedAt      *time.Time
	trips         []*Trip

	guard kernel.ConstructorGuard
}

// NewAllotment creates a validated Allotment with no trips yet.
func NewAllotment(id, supervisorID kernel.UUID, allottedBags int) (*Allotment, error) {
	a := &Allotment{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setSupervisor(supervisorID),
		a.setAllottedBags(allottedBags),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAllotment reconstructs an Allotment from persistence.
func RestoreAllotment(
	id, supervisorID kernel.UUID,
	allottedBags int,
	closedAt *time.Time,
	trips []*Trip,
) (*Allotment, error) {
	a, err := NewAllotment(id, supervisorID, allottedBags)
	if err != nil {
		return nil, err
	}
	for _, t := range trips {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	a.trips = trips
	if closedAt != nil {
		at := *closedAt
		a.closedAt = &at
	}
	return a, nil
}

// Validate ensures the allotment was properly constructed.
func (a *Allotment) Validate() error {
	if a == nil {
		return ErrAllotmentIsNotConstructed
	}
	return a.guard.Validate(ErrAllotmentIsNotConstructed)
}

func (a *Allotment) ID() kernel.UUID           { return a.id }
func (a *Allotment) SupervisorID() kernel.UUID { return a.supervisorID }
func (a *Allotment) AllottedBags() int         { return a.allottedBags }

// ClosedAt returns when the lot was closed, nil while it is open.
func (a *Allotment) ClosedAt() *time.Time {
	if a.closedAt == nil {
		return nil
	}
	at := *a.closedAt
	return &at
}

// IsClosed reports whether the lot has been closed for new trips.
func (a *Allotment) IsClosed() bool {
	return a.closedAt != nil
}

// Trips returns the delivery trips recorded so far.
func (a *Allotment) Trips() []*Trip {
	return a.trips
}

// TripByID finds a trip under this allotment.
func (a *Allotment) TripByID(tripID kernel.UUID) (*Trip, error) {
	for _, t := range a.trips {
		if t.ID().IsEqual(tripID) {
			return t, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("tripID", tripID.String())
}

// Reassign hands the lot to a different supervisor. Blocked once closed.
func (a *Allotment) Reassign(supervisorID kernel.UUID) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsClosed() {
		return ErrAllotmentIsClosed
	}
	return a.setSupervisor(supervisorID)
}

// AddTrip records a new delivery trip. Blocked once closed, with no
// exceptions: a late lorry against a closed lot is an operational error the
// caller has to resolve upstream.
func (a *Allotment) AddTrip(t *Trip) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsClosed() {
		return ErrAllotmentIsClosed
	}
	if err := t.Validate(); err != nil {
		return err
	}
	for _, existing := range a.trips {
		if existing.ID().IsEqual(t.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("tripID",
				fmt.Errorf("%s is already recorded", t.ID()))
		}
	}
	a.trips = append(a.trips, t)
	return nil
}

// Close freezes the trip list. Trips already recorded continue through
// weighing and settlement.
func (a *Allotment) Close(at time.Time) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.IsClosed() {
		return ErrAllotmentAlreadyClosed
	}
	closedAt := at
	a.closedAt = &closedAt
	return nil
}

// AllSettled reports whether every trip has reached the manager-settled
// stage. An allotment with no trips is vacuously settled.
func (a *Allotment) AllSettled() bool {
	for _, t := range a.trips {
		if t.Stage() != StageManagerSettled {
			return false
		}
	}
	return true
}

func (a *Allotment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Allotment) setSupervisor(supervisorID kernel.UUID) error {
	if err := supervisorID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supervisorID", err)
	}
	a.supervisorID = supervisorID
	return nil
}

func (a *Allotment) setAllottedBags(bags int) error {
	if bags <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("allottedBags", fmt.Errorf("%d is not greater than 0", bags))
	}
	a.allottedBags = bags
	return nil
}
