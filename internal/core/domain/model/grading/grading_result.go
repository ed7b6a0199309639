// Package grading holds the inspection data attached to a sample entry:
// the quality parameters recorded by the grader and the optional cooking
// report produced when the lot decision requires a cook test.
package grading

import (
	"errors"
	"fmt"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrGradingResultIsNotConstructed is returned when a GradingResult was not
// created through NewGradingResult or RestoreGradingResult.
var ErrGradingResultIsNotConstructed = errors.New("GradingResult must be created via NewGradingResult constructor")

// GradingResult records the quality parameters of one sample entry.
// It is created once per entry; later corrections go through Update, the
// result is never re-created.
//
// Invariants:
//   - moisture and the optional mix/defect percentages lie in [0, 100]
//   - cut and bend readings are non-negative
//   - the grader identity is never empty
type GradingResult struct {
	id       kernel.UUID
	moisture decimal.Decimal

	// paired cut/bend readings from the two sample draws
	cutOne  decimal.Decimal
	bendOne decimal.Decimal
	cutTwo  decimal.Decimal
	bendTwo decimal.Decimal

	// optional admixture and defect percentages; nil when not measured
	mixPercent    *decimal.Decimal
	defectPercent *decimal.Decimal

	gradedBy string

	guard kernel.ConstructorGuard
}

// NewGradingResult creates a validated GradingResult.
func NewGradingResult(
	id kernel.UUID,
	moisture decimal.Decimal,
	cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) (*GradingResult, error) {
	g := &GradingResult{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		g.setID(id),
		g.setMoisture(moisture),
		g.setReadings(cutOne, bendOne, cutTwo, bendTwo),
		g.setOptionalPercent("mixPercent", mixPercent, func(v *decimal.Decimal) { g.mixPercent = v }),
		g.setOptionalPercent("defectPercent", defectPercent, func(v *decimal.Decimal) { g.defectPercent = v }),
		g.setGradedBy(gradedBy),
	); err != nil {
		return nil, err
	}

	return g, nil
}

// RestoreGradingResult reconstructs a GradingResult from persistence.
func RestoreGradingResult(
	id kernel.UUID,
	moisture decimal.Decimal,
	cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) (*GradingResult, error) {
	return NewGradingResult(id, moisture, cutOne, bendOne, cutTwo, bendTwo, mixPercent, defectPercent, gradedBy)
}

// Update overwrites the measured values in place. This is the only edit path;
// the result keeps its identity so the audit trail stays intact.
func (g *GradingResult) Update(
	moisture decimal.Decimal,
	cutOne, bendOne, cutTwo, bendTwo decimal.Decimal,
	mixPercent, defectPercent *decimal.Decimal,
	gradedBy string,
) error {
	if err := g.Validate(); err != nil {
		return err
	}

	return errors.Join(
		g.setMoisture(moisture),
		g.setReadings(cutOne, bendOne, cutTwo, bendTwo),
		g.setOptionalPercent("mixPercent", mixPercent, func(v *decimal.Decimal) { g.mixPercent = v }),
		g.setOptionalPercent("defectPercent", defectPercent, func(v *decimal.Decimal) { g.defectPercent = v }),
		g.setGradedBy(gradedBy),
	)
}

// Validate ensures the result was properly constructed.
func (g *GradingResult) Validate() error {
	if g == nil {
		return ErrGradingResultIsNotConstructed
	}
	return g.guard.Validate(ErrGradingResultIsNotConstructed)
}

func (g *GradingResult) ID() kernel.UUID                 { return g.id }
func (g *GradingResult) Moisture() decimal.Decimal       { return g.moisture }
func (g *GradingResult) CutOne() decimal.Decimal         { return g.cutOne }
func (g *GradingResult) BendOne() decimal.Decimal        { return g.bendOne }
func (g *GradingResult) CutTwo() decimal.Decimal         { return g.cutTwo }
func (g *GradingResult) BendTwo() decimal.Decimal        { return g.bendTwo }
func (g *GradingResult) MixPercent() *decimal.Decimal    { return g.mixPercent }
func (g *GradingResult) DefectPercent() *decimal.Decimal { return g.defectPercent }
func (g *GradingResult) GradedBy() string                { return g.gradedBy }

func (g *GradingResult) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *GradingResult) setMoisture(moisture decimal.Decimal) error {
	if moisture.IsNegative() || moisture.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError("moisture", moisture.String(), "0", "100")
	}
	g.moisture = moisture
	return nil
}

func (g *GradingResult) setReadings(cutOne, bendOne, cutTwo, bendTwo decimal.Decimal) error {
	for name, v := range map[string]decimal.Decimal{
		"cutOne": cutOne, "bendOne": bendOne, "cutTwo": cutTwo, "bendTwo": bendTwo,
	} {
		if v.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v))
		}
	}
	g.cutOne, g.bendOne, g.cutTwo, g.bendTwo = cutOne, bendOne, cutTwo, bendTwo
	return nil
}

func (g *GradingResult) setOptionalPercent(name string, v *decimal.Decimal, assign func(*decimal.Decimal)) error {
	if v == nil {
		assign(nil)
		return nil
	}
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError(name, v.String(), "0", "100")
	}
	assign(v)
	return nil
}

func (g *GradingResult) setGradedBy(gradedBy string) error {
	if gradedBy == "" {
		return errs.NewValueIsRequiredError("gradedBy")
	}
	g.gradedBy = gradedBy
	return nil
}
