package services_test

import (
	"testing"
	"time"

	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSpec(value int64) pricing.FieldSpec {
	v := decimal.NewFromInt(value)
	return pricing.FieldSpec{Enabled: true, Value: &v}
}

func allottedEntry(t *testing.T) *entry.Entry {
	t.Helper()

	e, err := entry.NewEntry(kernel.NewUUID(),
		time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
		entry.NewSample, 100, entry.Packaging75kg, "sona masoori")
	require.NoError(t, err)

	g, err := grading.NewGradingResult(kernel.NewUUID(),
		decimal.NewFromFloat(13.5),
		decimal.NewFromInt(62), decimal.NewFromInt(4),
		decimal.NewFromInt(60), decimal.NewFromInt(5),
		nil, nil, "grader-1")
	require.NoError(t, err)
	require.NoError(t, e.AttachGrading(g))
	require.NoError(t, e.Decide(entry.PassNoCook))

	egb := decimal.NewFromInt(1)
	o, err := pricing.NewOffer(kernel.NewUUID(),
		decimal.NewFromInt(2100),
		pricing.PDLoose, pricing.PerQuintal, decimal.NewFromInt(2000),
		nil, &egb,
		pricing.Delegation{
			Sute:      fixedSpec(2),
			Moisture:  fixedSpec(0),
			Hamali:    fixedSpec(4),
			Brokerage: fixedSpec(5),
			LF:        fixedSpec(3),
		})
	require.NoError(t, err)
	require.NoError(t, e.SetOffer(o))
	require.NoError(t, e.AssignSupervisor(kernel.NewUUID(), kernel.NewUUID(), 100))

	return e
}

func recordTrip(t *testing.T, e *entry.Entry) kernel.UUID {
	t.Helper()
	tripID := kernel.NewUUID()
	trip, err := lot.NewTrip(tripID, "KA-05-1234", 100, decimal.NewFromInt(62), decimal.NewFromInt(4), "")
	require.NoError(t, err)
	require.NoError(t, e.RecordTrip(trip))
	return tripID
}

func weighTrip(t *testing.T, e *entry.Entry, tripID kernel.UUID) {
	t.Helper()
	w, err := lot.NewWeightRecord(kernel.NewUUID(),
		decimal.NewFromInt(7800), decimal.NewFromInt(300), lot.WarehouseTarget())
	require.NoError(t, err)
	require.NoError(t, e.RecordWeight(tripID, w))
}

func settleTrip(t *testing.T, e *entry.Entry, tripID kernel.UUID) {
	t.Helper()
	require.NoError(t, e.SettleOwner(kernel.NewUUID(), tripID, settlement.OwnerInput{
		SuteRate:      decimal.NewFromInt(2),
		SuteUnit:      pricing.PerBag,
		BaseRateValue: decimal.NewFromInt(2000),
		BrokerageRate: decimal.NewFromInt(5),
		BrokerageUnit: pricing.PerBag,
		EgbRate:       decimal.NewFromInt(1),
	}))
	require.NoError(t, e.SettleManager(tripID, settlement.ManagerInput{
		LFRate:     decimal.NewFromInt(3),
		LFUnit:     pricing.PerBag,
		HamaliRate: decimal.NewFromInt(4),
		HamaliUnit: pricing.PerBag,
	}))
}

func TestProgressCalculator_Calculate(t *testing.T) {
	calculator := services.NewProgressCalculator()

	t.Run("should report stored status before allotment", func(t *testing.T) {
		e, err := entry.NewEntry(kernel.NewUUID(),
			time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC),
			entry.NewSample, 100, entry.Packaging75kg, "sona masoori")
		require.NoError(t, err)

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, entry.StatusIntake, p.Status)
		assert.Equal(t, lot.StageUnknown, p.TripStage)
		assert.Empty(t, p.Trips)
		assert.Equal(t, "Intake", p.Label())
	})

	t.Run("should report no derived stage for allotted entry without trips", func(t *testing.T) {
		e := allottedEntry(t)

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, entry.StatusAllotted, p.Status)
		assert.Equal(t, lot.StageUnknown, p.TripStage)
		assert.Equal(t, "Allotted", p.Label())
	})

	t.Run("should derive stage from a single trip", func(t *testing.T) {
		e := allottedEntry(t)
		tripID := recordTrip(t, e)

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, lot.StageDelivering, p.TripStage)
		assert.Equal(t, "Delivering", p.Label())
		require.Len(t, p.Trips, 1)
		assert.True(t, p.Trips[0].TripID.IsEqual(tripID))
		assert.Equal(t, lot.StageDelivering, p.Trips[0].Stage)
	})

	t.Run("should summarize as the minimum stage across trips", func(t *testing.T) {
		e := allottedEntry(t)
		weighedID := recordTrip(t, e)
		weighTrip(t, e, weighedID)
		recordTrip(t, e)

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, lot.StageDelivering, p.TripStage)
		assert.Len(t, p.Trips, 2)
	})

	t.Run("should reach manager-settled once every trip is settled", func(t *testing.T) {
		e := allottedEntry(t)
		tripID := recordTrip(t, e)
		weighTrip(t, e, tripID)
		settleTrip(t, e, tripID)

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, lot.StageManagerSettled, p.TripStage)
		assert.Equal(t, "ManagerSettled", p.Label())
	})

	t.Run("should report status label outside the allotted stage", func(t *testing.T) {
		e := allottedEntry(t)
		tripID := recordTrip(t, e)
		weighTrip(t, e, tripID)
		settleTrip(t, e, tripID)
		require.NoError(t, e.CloseLot(time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC)))
		require.Equal(t, entry.StatusReview, e.Status())

		p, err := calculator.Calculate(e)

		require.NoError(t, err)
		assert.Equal(t, entry.StatusReview, p.Status)
		assert.Equal(t, "Review", p.Label())
	})

	t.Run("should reject nil entry", func(t *testing.T) {
		_, err := calculator.Calculate(nil)

		require.Error(t, err)
		assert.Equal(t, entry.ErrEntryIsNotConstructed, err)
	})
}
