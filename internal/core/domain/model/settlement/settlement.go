// Package settlement implements the two-phase cost calculation that turns one
// weight record into one financial row: an owner phase (sute, base rate,
// brokerage, EGB) followed by a manager phase (freight and hamali) that
// produces the reconciled grand total and per-weight average.
package settlement

import (
	"errors"
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrSettlementIsNotConstructed is returned when a Settlement was not
	// created through NewOwnerSettlement or RestoreSettlement.
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewOwnerSettlement constructor")

	// ErrManagerPhaseAlreadyApplied is returned when the manager phase is
	// applied a second time.
	ErrManagerPhaseAlreadyApplied = errors.New("manager phase already applied")
)

// averageScale is the rounding applied to the per-weight average rate.
const averageScale = 2

// Phase marks how far the settlement of one weight record has progressed.
type Phase int

const (
	PhaseUnknown Phase = iota

	// PhaseOwnerSettled: the owner wrote sute, base rate, brokerage and EGB.
	PhaseOwnerSettled

	// PhaseManagerSettled: the manager added freight and hamali; the grand
	// total and average are final.
	PhaseManagerSettled
)

func phaseStrings() map[Phase]string {
	return map[Phase]string{
		PhaseUnknown:        "Unknown",
		PhaseOwnerSettled:   "OwnerSettled",
		PhaseManagerSettled: "ManagerSettled",
	}
}

// String implements fmt.Stringer.
func (p Phase) String() string {
	if s, ok := phaseStrings()[p]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects PhaseUnknown and out-of-range values.
func (p Phase) Validate() error {
	if p != PhaseOwnerSettled && p != PhaseManagerSettled {
		return errs.NewValueIsInvalidErrorWithCause("phase", fmt.Errorf("%d is not a valid settlement phase", p))
	}
	return nil
}

// Terms carries the pricing facts the arithmetic depends on, taken from the
// entry's offer at settlement time.
type Terms struct {
	BaseRateType  pricing.BaseRateType
	BaseRateUnit  pricing.RateUnit
	CustomDivisor *decimal.Decimal
}

// Validate checks the terms are internally consistent: a valid type/unit pair
// and a positive custom divisor exactly when the type is MDLoose.
func (t Terms) Validate() error {
	if err := t.BaseRateType.Validate(); err != nil {
		return err
	}
	if err := t.BaseRateUnit.Validate(); err != nil {
		return err
	}
	if t.BaseRateType == pricing.MDLoose {
		if t.CustomDivisor == nil {
			return errs.NewValueIsRequiredError("customDivisor")
		}
		if !t.CustomDivisor.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("customDivisor",
				fmt.Errorf("%s is not greater than 0", t.CustomDivisor))
		}
	} else if t.CustomDivisor != nil {
		return errs.NewValueIsInvalidErrorWithCause("customDivisor",
			fmt.Errorf("only meaningful for %s terms", pricing.MDLoose))
	}
	return nil
}

// baseDivisor is the weight divisor for the base amount: the custom divisor
// for MDLoose, otherwise 75 for per-bag and 100 for per-quintal rates.
func (t Terms) baseDivisor() decimal.Decimal {
	if t.BaseRateType == pricing.MDLoose {
		return *t.CustomDivisor
	}
	if t.BaseRateUnit == pricing.PerBag {
		return decimal.NewFromInt(75)
	}
	return decimal.NewFromInt(100)
}

// brokerDivisor is the weight divisor for per-weight brokerage: the custom
// divisor for MDLoose, otherwise 100.
func (t Terms) brokerDivisor() decimal.Decimal {
	if t.BaseRateType == pricing.MDLoose {
		return *t.CustomDivisor
	}
	return decimal.NewFromInt(100)
}

// OwnerInput is the owner-phase rate sheet.
type OwnerInput struct {
	SuteRate      decimal.Decimal
	SuteUnit      pricing.RateUnit
	BaseRateValue decimal.Decimal
	BrokerageRate decimal.Decimal
	BrokerageUnit pricing.RateUnit
	EgbRate       decimal.Decimal
}

// Validate rejects negative rates, a non-positive base rate and invalid units.
func (in OwnerInput) Validate() error {
	if err := in.SuteUnit.Validate(); err != nil {
		return err
	}
	if err := in.BrokerageUnit.Validate(); err != nil {
		return err
	}
	if in.SuteRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("suteRate", fmt.Errorf("%s is negative", in.SuteRate))
	}
	if !in.BaseRateValue.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("baseRateValue", fmt.Errorf("%s is not greater than 0", in.BaseRateValue))
	}
	if in.BrokerageRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("brokerageRate", fmt.Errorf("%s is negative", in.BrokerageRate))
	}
	if in.EgbRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("egbRate", fmt.Errorf("%s is negative", in.EgbRate))
	}
	return nil
}

// ManagerInput is the manager-phase rate sheet: freight ("LF") and hamali.
type ManagerInput struct {
	LFRate     decimal.Decimal
	LFUnit     pricing.RateUnit
	HamaliRate decimal.Decimal
	HamaliUnit pricing.RateUnit
}

// Validate rejects negative rates and invalid units.
func (in ManagerInput) Validate() error {
	if err := in.LFUnit.Validate(); err != nil {
		return err
	}
	if err := in.HamaliUnit.Validate(); err != nil {
		return err
	}
	if in.LFRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("lfRate", fmt.Errorf("%s is negative", in.LFRate))
	}
	if in.HamaliRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("hamaliRate", fmt.Errorf("%s is negative", in.HamaliRate))
	}
	return nil
}

// Settlement is the financial row of one weight record. It is written twice:
// once by the owner phase, once by the manager phase. All amounts are exact
// decimals; sute is a weight deduction and never enters the monetary total.
type Settlement struct {
	id    kernel.UUID
	phase Phase
	terms Terms

	bags      int
	netWeight decimal.Decimal

	ownerInput    OwnerInput
	totalSute     decimal.Decimal
	suteNetWeight decimal.Decimal
	baseTotal     decimal.Decimal
	brokerTotal   decimal.Decimal
	egbTotal      decimal.Decimal
	ownerTotal    decimal.Decimal

	managerInput ManagerInput
	lfTotal      decimal.Decimal
	hamaliTotal  decimal.Decimal
	grandTotal   decimal.Decimal
	average      decimal.Decimal

	guard kernel.ConstructorGuard
}

// NewOwnerSettlement runs the owner phase over one weight record.
// bags and netWeight come from the weight record; terms come from the offer.
func NewOwnerSettlement(
	id kernel.UUID,
	terms Terms,
	bags int,
	netWeight decimal.Decimal,
	input OwnerInput,
) (*Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if bags <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("bags", fmt.Errorf("%d is not greater than 0", bags))
	}
	if !netWeight.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("netWeight", fmt.Errorf("%s is not greater than 0", netWeight))
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s := &Settlement{
		id:         id,
		phase:      PhaseOwnerSettled,
		terms:      terms,
		bags:       bags,
		netWeight:  netWeight,
		ownerInput: input,
		guard:      kernel.NewConstructorGuard(),
	}
	s.computeOwnerPhase()

	return s, nil
}

func (s *Settlement) computeOwnerPhase() {
	bags := decimal.NewFromInt(int64(s.bags))
	in := s.ownerInput

	if in.SuteUnit == pricing.PerBag {
		s.totalSute = in.SuteRate.Mul(bags)
	} else {
		s.totalSute = s.netWeight.Div(decimal.NewFromInt(1000)).Mul(in.SuteRate)
	}
	s.suteNetWeight = s.netWeight.Sub(s.totalSute)

	s.baseTotal = s.suteNetWeight.Div(s.terms.baseDivisor()).Mul(in.BaseRateValue)

	if in.BrokerageUnit == pricing.PerBag {
		s.brokerTotal = in.BrokerageRate.Mul(bags)
	} else {
		s.brokerTotal = s.netWeight.Div(s.terms.brokerDivisor()).Mul(in.BrokerageRate)
	}

	if s.terms.BaseRateType.IsLoose() {
		s.egbTotal = in.EgbRate.Mul(bags)
	} else {
		s.egbTotal = decimal.Zero
	}

	// sute reduces the weight basis but is never added to the cost
	s.ownerTotal = s.baseTotal.Add(s.brokerTotal).Add(s.egbTotal)
}

// ApplyManagerPhase adds freight and hamali and finalizes the totals.
// It is only legal once, and only after the owner phase.
func (s *Settlement) ApplyManagerPhase(input ManagerInput) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.phase == PhaseManagerSettled {
		return ErrManagerPhaseAlreadyApplied
	}
	if err := input.Validate(); err != nil {
		return err
	}

	bags := decimal.NewFromInt(int64(s.bags))
	hundred := decimal.NewFromInt(100)

	if input.LFUnit == pricing.PerBag {
		s.lfTotal = input.LFRate.Mul(bags)
	} else {
		s.lfTotal = s.netWeight.Div(hundred).Mul(input.LFRate)
	}

	if input.HamaliUnit == pricing.PerBag {
		s.hamaliTotal = input.HamaliRate.Mul(bags)
	} else {
		s.hamaliTotal = s.netWeight.Div(hundred).Mul(input.HamaliRate)
	}

	s.managerInput = input
	s.grandTotal = s.ownerTotal.Add(s.lfTotal).Add(s.hamaliTotal)

	if s.suteNetWeight.IsPositive() {
		s.average = s.grandTotal.DivRound(s.suteNetWeight, averageScale)
	} else {
		s.average = decimal.Zero
	}

	s.phase = PhaseManagerSettled
	return nil
}

// Validate ensures the settlement was properly constructed.
func (s *Settlement) Validate() error {
	if s == nil {
		return ErrSettlementIsNotConstructed
	}
	return s.guard.Validate(ErrSettlementIsNotConstructed)
}

func (s *Settlement) ID() kernel.UUID             { return s.id }
func (s *Settlement) Phase() Phase                { return s.phase }
func (s *Settlement) Terms() Terms                { return s.terms }
func (s *Settlement) Bags() int                   { return s.bags }
func (s *Settlement) NetWeight() decimal.Decimal  { return s.netWeight }
func (s *Settlement) OwnerInput() OwnerInput      { return s.ownerInput }
func (s *Settlement) ManagerInput() ManagerInput  { return s.managerInput }
func (s *Settlement) TotalSute() decimal.Decimal  { return s.totalSute }
func (s *Settlement) BaseTotal() decimal.Decimal  { return s.baseTotal }
func (s *Settlement) BrokerTotal() decimal.Decimal { return s.brokerTotal }
func (s *Settlement) EgbTotal() decimal.Decimal   { return s.egbTotal }
func (s *Settlement) OwnerTotal() decimal.Decimal { return s.ownerTotal }
func (s *Settlement) LFTotal() decimal.Decimal    { return s.lfTotal }
func (s *Settlement) HamaliTotal() decimal.Decimal { return s.hamaliTotal }
func (s *Settlement) GrandTotal() decimal.Decimal { return s.grandTotal }
func (s *Settlement) Average() decimal.Decimal    { return s.average }

// SuteNetWeight is the weight basis after the sute deduction.
func (s *Settlement) SuteNetWeight() decimal.Decimal { return s.suteNetWeight }

// IsFinal reports whether both phases have been written.
func (s *Settlement) IsFinal() bool {
	return s.phase == PhaseManagerSettled
}

// RestoreSettlement reconstructs a Settlement from persistence by re-running
// the arithmetic over the stored inputs. Recomputing instead of trusting the
// stored totals keeps a corrupted row from reaching a caller.
func RestoreSettlement(
	id kernel.UUID,
	phase Phase,
	terms Terms,
	bags int,
	netWeight decimal.Decimal,
	ownerInput OwnerInput,
	managerInput *ManagerInput,
) (*Settlement, error) {
	if err := phase.Validate(); err != nil {
		return nil, err
	}

	s, err := NewOwnerSettlement(id, terms, bags, netWeight, ownerInput)
	if err != nil {
		return nil, err
	}

	if phase == PhaseManagerSettled {
		if managerInput == nil {
			return nil, errs.NewValueIsRequiredError("managerInput")
		}
		if err := s.ApplyManagerPhase(*managerInput); err != nil {
			return nil, err
		}
	}

	return s, nil
}
