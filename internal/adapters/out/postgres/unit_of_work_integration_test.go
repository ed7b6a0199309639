package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "mandi/internal/adapters/out/postgres"
	"mandi/internal/adapters/out/postgres/entryrepo"
	"mandi/internal/core/domain/model/entry"
	"mandi/internal/core/domain/model/grading"
	"mandi/internal/core/domain/model/kernel"
	"mandi/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container, connects and runs the
// schema migrations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&entryrepo.EntryDTO{},
		&entryrepo.GradingDTO{},
		&entryrepo.CookingDTO{},
		&entryrepo.OfferDTO{},
		&entryrepo.OfferFieldDTO{},
		&entryrepo.AllotmentDTO{},
		&entryrepo.TripDTO{},
		&entryrepo.WeightRecordDTO{},
		&entryrepo.SettlementDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures a clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE entries, grading_results, cooking_results, offers, offer_fields," +
			" allotments, trips, weight_records, settlements").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.EntryRepository(), "First instance should provide entry repository")
	suite.NotNil(uow2.EntryRepository(), "Second instance should provide entry repository")
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail without
// an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_CommitPersists verifies changes written inside a committed
// transaction are visible to a fresh unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testEntry := createTestEntry()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.EntryRepository().Add(ctx, testEntry)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(testEntry.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible after commit through a new unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(testEntry.ID(), retrieved.ID())
}

// TestUnitOfWork_RollbackDiscards verifies rollback undoes all changes made
// within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testEntry := createTestEntry()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.EntryRepository().Add(ctx, testEntry)
	suite.Require().NoError(err)

	_, err = uow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().Error(err, "Entry should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that transactions opened by
// different unit of work instances do not see each other's changes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	entry1 := createTestEntry()
	entry2 := createTestEntry()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.EntryRepository().Add(ctx, entry1)
	suite.Require().NoError(err)
	err = uow2.EntryRepository().Add(ctx, entry2)
	suite.Require().NoError(err)

	// Each transaction only sees its own writes
	_, err = uow1.EntryRepository().Get(ctx, entry1.ID())
	suite.Require().NoError(err, "UOW1 should see entry1")
	_, err = uow1.EntryRepository().Get(ctx, entry2.ID())
	suite.Require().Error(err, "UOW1 should not see entry2")

	_, err = uow2.EntryRepository().Get(ctx, entry2.ID())
	suite.Require().NoError(err, "UOW2 should see entry2")
	_, err = uow2.EntryRepository().Get(ctx, entry1.ID())
	suite.Require().Error(err, "UOW2 should not see entry1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.EntryRepository().Get(ctx, entry1.ID())
	suite.Require().NoError(err, "Entry1 should persist after commit")
	_, err = newUow.EntryRepository().Get(ctx, entry2.ID())
	suite.Require().Error(err, "Entry2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repository operations outside an
// explicit transaction take effect immediately.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testEntry := createTestEntry()

	err := uow.EntryRepository().Add(ctx, testEntry)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(testEntry.ID(), retrieved.ID())
}

// TestUnitOfWork_GradingWorkflow walks the intake and grading steps the way a
// command handler does: one unit of work per step, read inside the
// transaction, write, commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GradingWorkflow() {
	ctx := context.Background()

	// Step 1: intake
	testEntry := createTestEntry()
	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.EntryRepository().Add(ctx, testEntry)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 2: grading
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	retrieved, err := uow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)

	gradingResult, err := grading.NewGradingResult(
		kernel.NewUUID(),
		decimal.NewFromFloat(13.5),
		decimal.NewFromInt(62), decimal.NewFromInt(4),
		decimal.NewFromInt(60), decimal.NewFromInt(5),
		nil, nil,
		"grader-1",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.AttachGrading(gradingResult))

	err = uow.EntryRepository().Update(ctx, retrieved)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 3: decide
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	retrieved, err = uow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.StatusGraded, retrieved.Status())
	suite.Require().NoError(retrieved.Decide(entry.PassNoCook))

	err = uow.EntryRepository().Update(ctx, retrieved)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the final state and version growth
	finalUow := suite.factory.Create()
	final, err := finalUow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.StatusPricing, final.Status())
	suite.Equal(entry.PassNoCook, final.Decision())
	suite.NotNil(final.Grading())
	suite.Equal(3, final.Version())
}

// TestUnitOfWork_WorkflowRollback verifies a rolled back workflow step leaves
// the stored entry untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()

	testEntry := createTestEntry()
	setupUow := suite.factory.Create()
	err := setupUow.EntryRepository().Add(ctx, testEntry)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	retrieved, err := uow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)

	gradingResult, err := grading.NewGradingResult(
		kernel.NewUUID(),
		decimal.NewFromFloat(14),
		decimal.NewFromInt(60), decimal.NewFromInt(6),
		decimal.NewFromInt(58), decimal.NewFromInt(7),
		nil, nil,
		"grader-2",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(retrieved.AttachGrading(gradingResult))

	err = uow.EntryRepository().Update(ctx, retrieved)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	finalUow := suite.factory.Create()
	final, err := finalUow.EntryRepository().Get(ctx, testEntry.ID())
	suite.Require().NoError(err)
	suite.Equal(entry.StatusIntake, final.Status())
	suite.Nil(final.Grading())
	suite.Equal(1, final.Version())
}

// createTestEntry creates a valid intake-stage entry for testing purposes.
func createTestEntry() *entry.Entry {
	testEntry, _ := entry.NewEntry(
		kernel.NewUUID(),
		time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		entry.NewSample,
		100,
		entry.Packaging75kg,
		"sona masoori",
	)
	return testEntry
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
