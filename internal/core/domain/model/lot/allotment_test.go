package lot_test

import (
	"testing"
	"time"

	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTrip(t *testing.T, id kernel.UUID) *lot.Trip {
	t.Helper()
	trip, err := lot.NewTrip(id, "KA-05-1234", 100, decimal.NewFromInt(62), decimal.NewFromInt(4), "")
	require.NoError(t, err)
	return trip
}

func newTestAllotment(t *testing.T) *lot.Allotment {
	t.Helper()
	a, err := lot.NewAllotment(kernel.NewUUID(), kernel.NewUUID(), 100)
	require.NoError(t, err)
	return a
}

func settledTrip(t *testing.T, id kernel.UUID) *lot.Trip {
	t.Helper()
	trip := newTestTrip(t, id)
	w, err := lot.NewWeightRecord(kernel.NewUUID(), decimal.NewFromInt(7800), decimal.NewFromInt(300), lot.WarehouseTarget())
	require.NoError(t, err)
	require.NoError(t, trip.RecordWeight(w))

	stl, err := settlement.NewOwnerSettlement(
		kernel.NewUUID(),
		settlement.Terms{BaseRateType: pricing.PDLoose, BaseRateUnit: pricing.PerQuintal},
		trip.Bags(),
		w.NetWeight(),
		settlement.OwnerInput{
			SuteRate:      decimal.NewFromInt(2),
			SuteUnit:      pricing.PerBag,
			BaseRateValue: decimal.NewFromInt(2000),
			BrokerageRate: decimal.NewFromInt(5),
			BrokerageUnit: pricing.PerBag,
			EgbRate:       decimal.NewFromInt(1),
		},
	)
	require.NoError(t, err)
	require.NoError(t, w.AttachSettlement(stl))
	require.NoError(t, stl.ApplyManagerPhase(settlement.ManagerInput{
		LFRate:     decimal.NewFromInt(3),
		LFUnit:     pricing.PerBag,
		HamaliRate: decimal.NewFromInt(4),
		HamaliUnit: pricing.PerBag,
	}))
	return trip
}

func TestNewAllotment(t *testing.T) {
	t.Run("should create open allotment with no trips", func(t *testing.T) {
		id := kernel.NewUUID()
		supervisorID := kernel.NewUUID()

		a, err := lot.NewAllotment(id, supervisorID, 100)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.SupervisorID().IsEqual(supervisorID))
		assert.Equal(t, 100, a.AllottedBags())
		assert.False(t, a.IsClosed())
		assert.Nil(t, a.ClosedAt())
		assert.Empty(t, a.Trips())
	})

	t.Run("should fail with invalid supervisor ID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := lot.NewAllotment(kernel.NewUUID(), invalidID, 100)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "supervisorID")
	})

	t.Run("should fail with non-positive bags", func(t *testing.T) {
		a, err := lot.NewAllotment(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "allottedBags")
	})
}

func TestAllotment_AddTrip(t *testing.T) {
	t.Run("should record trips while open", func(t *testing.T) {
		a := newTestAllotment(t)

		require.NoError(t, a.AddTrip(newTestTrip(t, kernel.NewUUID())))
		require.NoError(t, a.AddTrip(newTestTrip(t, kernel.NewUUID())))

		assert.Len(t, a.Trips(), 2)
	})

	t.Run("should reject duplicate trip IDs", func(t *testing.T) {
		a := newTestAllotment(t)
		tripID := kernel.NewUUID()
		require.NoError(t, a.AddTrip(newTestTrip(t, tripID)))

		err := a.AddTrip(newTestTrip(t, tripID))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already recorded")
		assert.Len(t, a.Trips(), 1)
	})

	t.Run("should reject trips after closing", func(t *testing.T) {
		a := newTestAllotment(t)
		require.NoError(t, a.Close(time.Now()))

		err := a.AddTrip(newTestTrip(t, kernel.NewUUID()))

		require.Error(t, err)
		assert.Equal(t, lot.ErrAllotmentIsClosed, err)
	})

	t.Run("should reject nil trip", func(t *testing.T) {
		a := newTestAllotment(t)

		err := a.AddTrip(nil)

		require.Error(t, err)
		assert.Equal(t, lot.ErrTripIsNotConstructed, err)
	})
}

func TestAllotment_TripByID(t *testing.T) {
	t.Run("should find recorded trip", func(t *testing.T) {
		a := newTestAllotment(t)
		tripID := kernel.NewUUID()
		require.NoError(t, a.AddTrip(newTestTrip(t, tripID)))

		trip, err := a.TripByID(tripID)

		require.NoError(t, err)
		assert.True(t, trip.ID().IsEqual(tripID))
	})

	t.Run("should report unknown trip", func(t *testing.T) {
		a := newTestAllotment(t)

		trip, err := a.TripByID(kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, trip)
	})
}

func TestAllotment_Reassign(t *testing.T) {
	t.Run("should change supervisor while open", func(t *testing.T) {
		a := newTestAllotment(t)
		replacement := kernel.NewUUID()

		err := a.Reassign(replacement)

		require.NoError(t, err)
		assert.True(t, a.SupervisorID().IsEqual(replacement))
	})

	t.Run("should reject reassignment after closing", func(t *testing.T) {
		a := newTestAllotment(t)
		original := a.SupervisorID()
		require.NoError(t, a.Close(time.Now()))

		err := a.Reassign(kernel.NewUUID())

		require.Error(t, err)
		assert.Equal(t, lot.ErrAllotmentIsClosed, err)
		assert.True(t, a.SupervisorID().IsEqual(original))
	})
}

func TestAllotment_Close(t *testing.T) {
	t.Run("should record closing time", func(t *testing.T) {
		a := newTestAllotment(t)
		at := time.Date(2025, 11, 4, 18, 0, 0, 0, time.UTC)

		err := a.Close(at)

		require.NoError(t, err)
		assert.True(t, a.IsClosed())
		require.NotNil(t, a.ClosedAt())
		assert.True(t, a.ClosedAt().Equal(at))
	})

	t.Run("should reject closing twice", func(t *testing.T) {
		a := newTestAllotment(t)
		require.NoError(t, a.Close(time.Now()))

		err := a.Close(time.Now())

		require.Error(t, err)
		assert.Equal(t, lot.ErrAllotmentAlreadyClosed, err)
	})
}

func TestAllotment_AllSettled(t *testing.T) {
	t.Run("should be vacuously settled with no trips", func(t *testing.T) {
		a := newTestAllotment(t)

		assert.True(t, a.AllSettled())
	})

	t.Run("should be unsettled while a trip is delivering", func(t *testing.T) {
		a := newTestAllotment(t)
		require.NoError(t, a.AddTrip(newTestTrip(t, kernel.NewUUID())))

		assert.False(t, a.AllSettled())
	})

	t.Run("should be settled once every trip is manager-settled", func(t *testing.T) {
		a := newTestAllotment(t)
		require.NoError(t, a.AddTrip(settledTrip(t, kernel.NewUUID())))
		require.NoError(t, a.AddTrip(settledTrip(t, kernel.NewUUID())))

		assert.True(t, a.AllSettled())
	})

	t.Run("should be unsettled while one of the trips lags", func(t *testing.T) {
		a := newTestAllotment(t)
		require.NoError(t, a.AddTrip(settledTrip(t, kernel.NewUUID())))
		require.NoError(t, a.AddTrip(newTestTrip(t, kernel.NewUUID())))

		assert.False(t, a.AllSettled())
	})
}
