package services

import (
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
)

// TripProgress is the derived stage of one delivery trip.
type TripProgress struct {
	TripID kernel.UUID
	Stage  lot.Stage
}

// Progress is the effective position of an entry in the pipeline.
//
// The stored workflow status only goes as far as "allotted"; the physical
// progress after that point (delivering, weighed, owner-settled,
// manager-settled) is derived per trip and summarized as the minimum stage
// across all trips, so the entry never looks further along than its slowest
// lorry.
type Progress struct {
	Status    entry.Status
	TripStage lot.Stage
	Trips     []TripProgress
}

// Label is the single progress string shown to callers: the derived trip
// stage while the entry is allotted and has trips, the workflow status
// otherwise.
func (p Progress) Label() string {
	if p.Status == entry.StatusAllotted && p.TripStage != lot.StageUnknown {
		return p.TripStage.String()
	}
	return p.Status.String()
}

// ProgressCalculator is a domain service deriving entry progress.
//
// Business rules:
//   - outside the allotted stage the stored status is the progress
//   - inside the allotted stage the progress is the minimum trip stage
//   - an allotted entry with no trips yet reports no derived stage
type ProgressCalculator struct{}

// NewProgressCalculator creates a new ProgressCalculator instance.
func NewProgressCalculator() ProgressCalculator {
	return ProgressCalculator{}
}

// Calculate derives the progress of one entry.
func (c ProgressCalculator) Calculate(e *entry.Entry) (Progress, error) {
	if err := e.Validate(); err != nil {
		return Progress{}, err
	}

	p := Progress{Status: e.Status()}

	allotment := e.Allotment()
	if allotment == nil || len(allotment.Trips()) == 0 {
		return p, nil
	}

	minStage := lot.StageManagerSettled
	for _, t := range allotment.Trips() {
		stage := t.Stage()
		p.Trips = append(p.Trips, TripProgress{TripID: t.ID(), Stage: stage})
		if stage < minStage {
			minStage = stage
		}
	}
	p.TripStage = minStage

	return p, nil
}
