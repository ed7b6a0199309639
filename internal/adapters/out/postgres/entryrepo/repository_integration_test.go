package entryrepo_test

import (
	"context"
	"testing"
	"time"

	"mandi/internal/adapters/out/postgres/entryrepo"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/domain/model/lot"
	"mandi/internal/core/domain/model/pricing"
	"mandi/internal/core/domain/model/settlement"
	"mandi/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// EntryRepositoryIntegrationTestSuite provides integration tests for
// GormEntryRepository using PostgreSQL containers to verify persistence of
// the full aggregate graph and the optimistic version check.
type EntryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *entryrepo.GormEntryRepository
	tracker    *MockAggregateTracker
}

func (suite *EntryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&entryrepo.EntryDTO{},
		&entryrepo.GradingDTO{},
		&entryrepo.CookingDTO{},
		&entryrepo.OfferDTO{},
		&entryrepo.OfferFieldDTO{},
		&entryrepo.AllotmentDTO{},
		&entryrepo.TripDTO{},
		&entryrepo.WeightRecordDTO{},
		&entryrepo.SettlementDTO{},
	))
}

func (suite *EntryRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE entries, grading_results, cooking_results, offers, offer_fields," +
			" allotments, trips, weight_records, settlements").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = entryrepo.NewGormEntryRepository(suite.db, suite.tracker)
}

func (suite *EntryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EntryRepositoryIntegrationTestSuite) TestAdd_ValidEntry_Success() {
	ctx := context.Background()

	testEntry := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", testEntry.ID(), testEntry).Once()

	err := suite.repository.Add(ctx, testEntry)
	suite.Require().NoError(err)

	suite.assertEntryCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestAdd_StoredVersionStartsAtOne() {
	ctx := context.Background()

	testEntry := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", testEntry.ID(), testEntry).Once()

	err := suite.repository.Add(ctx, testEntry)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestGet_ExistingEntry_ReturnsEntry() {
	ctx := context.Background()

	original := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.EntryType(), retrieved.EntryType())
	suite.Equal(original.Bags(), retrieved.Bags())
	suite.Equal(original.Packaging(), retrieved.Packaging())
	suite.Equal(original.Variety(), retrieved.Variety())
	suite.Equal(entry.StatusIntake, retrieved.Status())
	suite.Nil(retrieved.Grading())
	suite.Nil(retrieved.Offer())
	suite.Nil(retrieved.Allotment())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestGet_NonExistentEntry_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

// TestGet_SettledEntry_RestoresFullGraph walks an entry through the entire
// pipeline, persists it and verifies the restored aggregate carries the
// grading, offer, allotment, trip, weight record and settlement.
func (suite *EntryRepositoryIntegrationTestSuite) TestGet_SettledEntry_RestoresFullGraph() {
	ctx := context.Background()

	original, tripID := suite.createSettledEntry()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(entry.StatusReview, retrieved.Status())
	suite.Require().NotNil(retrieved.Grading())
	suite.Require().NotNil(retrieved.Offer())
	suite.True(retrieved.Offer().IsComplete())

	allotment := retrieved.Allotment()
	suite.Require().NotNil(allotment)
	suite.True(allotment.IsClosed())

	trip, err := allotment.TripByID(tripID)
	suite.Require().NoError(err)
	suite.Equal(lot.StageManagerSettled, trip.Stage())

	weight := trip.Weight()
	suite.Require().NotNil(weight)
	stl := weight.Settlement()
	suite.Require().NotNil(stl)
	suite.True(stl.IsFinal())

	// The stored row carries inputs only; totals are recomputed on restore
	// and must match the in-memory aggregate exactly.
	originalTrip, err := original.Allotment().TripByID(tripID)
	suite.Require().NoError(err)
	originalStl := originalTrip.Weight().Settlement()
	suite.True(originalStl.GrandTotal().Equal(stl.GrandTotal()))
	suite.True(originalStl.Average().Equal(stl.Average()))
	suite.True(originalStl.SuteNetWeight().Equal(stl.SuteNetWeight()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestUpdate_AdvancesWorkflowAndVersion() {
	ctx := context.Background()

	original := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Load the stored row so the version token matches, then grade it
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.AttachGrading(suite.createGradingResult()))

	err = suite.repository.Update(ctx, retrieved)
	suite.Require().NoError(err)

	updated, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.StatusGraded, updated.Status())
	suite.NotNil(updated.Grading())
	suite.Equal(2, updated.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	original := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Two readers load the same version
	first, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	// The first writer wins
	suite.Require().NoError(first.AttachGrading(suite.createGradingResult()))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second writer holds a stale version token
	suite.Require().NoError(second.AttachGrading(suite.createGradingResult()))
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestUpdate_NonExistentEntry_ReturnsConcurrencyConflict() {
	ctx := context.Background()

	// An entry that was never stored has no row to match the version check
	err := suite.repository.Update(ctx, suite.createIntakeEntry())
	suite.Require().Error(err)

	var conflictErr *errs.ConcurrencyConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestUpdate_ReplacesChildGraph() {
	ctx := context.Background()

	original := suite.createIntakeEntry()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	// Grade the entry
	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.AttachGrading(suite.createGradingResult()))
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	// Decide and price it in a second round trip
	retrieved, err = suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.Decide(entry.PassNoCook))
	suite.Require().NoError(retrieved.SetOffer(suite.createCompleteOffer()))
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	updated, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.StatusPricing, updated.Status())
	suite.Equal(entry.PassNoCook, updated.Decision())
	suite.NotNil(updated.Grading())
	suite.NotNil(updated.Offer())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	intakeOne := suite.createIntakeEntry()
	intakeTwo := suite.createIntakeEntry()
	suite.Require().NoError(suite.repository.Add(ctx, intakeOne))
	suite.Require().NoError(suite.repository.Add(ctx, intakeTwo))

	graded := suite.createIntakeEntry()
	suite.Require().NoError(graded.AttachGrading(suite.createGradingResult()))
	suite.Require().NoError(suite.repository.Add(ctx, graded))

	intakeEntries, err := suite.repository.GetAllInStatus(ctx, entry.StatusIntake)
	suite.Require().NoError(err)
	suite.Len(intakeEntries, 2)
	for _, e := range intakeEntries {
		suite.Equal(entry.StatusIntake, e.Status())
	}

	gradedEntries, err := suite.repository.GetAllInStatus(ctx, entry.StatusGraded)
	suite.Require().NoError(err)
	suite.Len(gradedEntries, 1)
	suite.Equal(graded.ID(), gradedEntries[0].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *EntryRepositoryIntegrationTestSuite) TestGetAllInStatus_NoMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	entries, err := suite.repository.GetAllInStatus(ctx, entry.StatusReview)
	suite.Require().NoError(err)
	suite.Empty(entries)

	suite.tracker.AssertExpectations(suite.T())
}

// createIntakeEntry creates a fresh entry in the intake stage.
func (suite *EntryRepositoryIntegrationTestSuite) createIntakeEntry() *entry.Entry {
	e, err := entry.NewEntry(
		kernel.NewUUID(),
		time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		entry.NewSample,
		100,
		entry.Packaging75kg,
		"sona masoori",
	)
	suite.Require().NoError(err)
	return e
}

// createGradingResult creates a valid grading result.
func (suite *EntryRepositoryIntegrationTestSuite) createGradingResult() *grading.GradingResult {
	g, err := grading.NewGradingResult(
		kernel.NewUUID(),
		decimal.NewFromFloat(13.5),
		decimal.NewFromInt(62), decimal.NewFromInt(4),
		decimal.NewFromInt(60), decimal.NewFromInt(5),
		nil, nil,
		"grader-1",
	)
	suite.Require().NoError(err)
	return g
}

// createCompleteOffer creates an offer with every fee field fixed by the
// admin, so the entry may leave the pricing stage immediately.
func (suite *EntryRepositoryIntegrationTestSuite) createCompleteOffer() *pricing.Offer {
	fixed := func(v int64) pricing.FieldSpec {
		value := decimal.NewFromInt(v)
		return pricing.FieldSpec{Enabled: true, Value: &value}
	}
	egb := decimal.NewFromInt(1)

	o, err := pricing.NewOffer(
		kernel.NewUUID(),
		decimal.NewFromInt(2100),
		pricing.PDLoose,
		pricing.PerQuintal,
		decimal.NewFromInt(2000),
		nil,
		&egb,
		pricing.Delegation{
			Sute:      fixed(2),
			Moisture:  fixed(0),
			Hamali:    fixed(4),
			Brokerage: fixed(5),
			LF:        fixed(3),
		},
	)
	suite.Require().NoError(err)
	return o
}

// createSettledEntry walks a new entry through grading, pricing, allotment,
// weighing and both settlement phases, ending in the review stage.
func (suite *EntryRepositoryIntegrationTestSuite) createSettledEntry() (*entry.Entry, kernel.UUID) {
	e := suite.createIntakeEntry()
	suite.Require().NoError(e.AttachGrading(suite.createGradingResult()))
	suite.Require().NoError(e.Decide(entry.PassNoCook))
	suite.Require().NoError(e.SetOffer(suite.createCompleteOffer()))
	suite.Require().NoError(e.AssignSupervisor(kernel.NewUUID(), kernel.NewUUID(), 100))

	tripID := kernel.NewUUID()
	trip, err := lot.NewTrip(tripID, "KA-05-1234", 100, decimal.NewFromInt(62), decimal.NewFromInt(4), "")
	suite.Require().NoError(err)
	suite.Require().NoError(e.RecordTrip(trip))

	weight, err := lot.NewWeightRecord(
		kernel.NewUUID(),
		decimal.NewFromInt(7800),
		decimal.NewFromInt(300),
		lot.WarehouseTarget(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(e.RecordWeight(tripID, weight))

	suite.Require().NoError(e.SettleOwner(kernel.NewUUID(), tripID, settlement.OwnerInput{
		SuteRate:      decimal.NewFromInt(2),
		SuteUnit:      pricing.PerBag,
		BaseRateValue: decimal.NewFromInt(2000),
		BrokerageRate: decimal.NewFromInt(5),
		BrokerageUnit: pricing.PerBag,
		EgbRate:       decimal.NewFromInt(1),
	}))
	suite.Require().NoError(e.SettleManager(tripID, settlement.ManagerInput{
		LFRate:     decimal.NewFromInt(3),
		LFUnit:     pricing.PerBag,
		HamaliRate: decimal.NewFromInt(4),
		HamaliUnit: pricing.PerBag,
	}))
	suite.Require().NoError(e.CloseLot(time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)))

	suite.Require().Equal(entry.StatusReview, e.Status())
	return e, tripID
}

// assertEntryCount verifies the number of entry rows in the database.
func (suite *EntryRepositoryIntegrationTestSuite) assertEntryCount(expected int) {
	var count int64
	err := suite.db.Model(&entryrepo.EntryDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestEntryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EntryRepositoryIntegrationTestSuite))
}
