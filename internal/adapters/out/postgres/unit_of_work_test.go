package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "fastfood/internal/adapters/out/postgres"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
	"fastfood/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres_adapter.Migrate(db))
	return db
}

func newSQLiteFactory(t *testing.T) (*postgres_adapter.GormUnitOfWorkFactory, *recordingPublisher) {
	t.Helper()

	publisher := &recordingPublisher{}
	return postgres_adapter.NewGormUnitOfWorkFactory(newSQLiteDB(t), publisher), publisher
}

func TestGormUnitOfWork_CommitWithoutBegin_ReturnsError(t *testing.T) {
	factory, _ := newSQLiteFactory(t)
	uow := factory.Create()

	require.ErrorIs(t, uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
	require.ErrorIs(t, uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_Commit_PublishesEventsOnce(t *testing.T) {
	ctx := context.Background()
	factory, publisher := newSQLiteFactory(t)
	f := newTestFood(t)
	o := newTestOrder(t, f.ID())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.FoodRepository().Add(ctx, f))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	assert.Empty(t, publisher.names(), "nothing is published before commit")

	require.NoError(t, uow.Commit(ctx))

	assert.Equal(t, []string{order.EventCreated}, publisher.names())
	assert.Empty(t, o.DomainEvents())
	require.ErrorIs(t, uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_Rollback_DiscardsWritesAndEvents(t *testing.T) {
	ctx := context.Background()
	factory, publisher := newSQLiteFactory(t)
	f := newTestFood(t)
	o := newTestOrder(t, f.ID())

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))
	require.NoError(t, uow.Rollback(ctx))

	_, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, publisher.names())
}

func TestGormUnitOfWork_DeliverAcrossRepositories(t *testing.T) {
	ctx := context.Background()
	factory, publisher := newSQLiteFactory(t)
	f := newTestFood(t)
	o := newTestOrder(t, f.ID())
	staffID := kernel.NewUUID()

	setup := factory.Create()
	require.NoError(t, setup.Begin(ctx))
	require.NoError(t, setup.FoodRepository().Add(ctx, f))
	require.NoError(t, setup.OrderRepository().Add(ctx, o))
	require.NoError(t, setup.Commit(ctx))

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.Accept(staffID))
	require.NoError(t, uow.OrderRepository().Update(ctx, loaded))

	assigned, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, assigned.Depart(staffID))
	require.NoError(t, assigned.Deliver(staffID))

	record, err := delivery.NewRecord(kernel.NewUUID(), staffID, f.ID(), assigned.Quantity(), 60000, testTime)
	require.NoError(t, err)
	require.NoError(t, uow.DeliveryRecordRepository().Add(ctx, record))
	require.NoError(t, uow.OrderRepository().Delete(ctx, assigned))
	require.NoError(t, uow.Commit(ctx))

	_, err = factory.Create().OrderRepository().Get(ctx, o.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	stored, err := factory.Create().DeliveryRecordRepository().Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(60000), stored.TotalIncome())
	assert.Equal(t, []string{
		order.EventCreated,
		order.EventAccepted,
		order.EventInTransit,
		order.EventDelivered,
	}, publisher.names())
}

func TestGormUnitOfWork_RatingRepository_SharesTransaction(t *testing.T) {
	ctx := context.Background()
	factory, _ := newSQLiteFactory(t)
	f := newTestFood(t)
	userID := kernel.NewUUID()

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.FoodRepository().Add(ctx, f))
	rating, err := f.Rate(kernel.NewUUID(), userID, 4, nil)
	require.NoError(t, err)
	require.NoError(t, uow.RatingRepository().Add(ctx, rating))
	require.NoError(t, uow.FoodRepository().Update(ctx, f))
	require.NoError(t, uow.Rollback(ctx))

	_, err = factory.Create().RatingRepository().FindByFoodAndUser(ctx, f.ID(), userID)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormUnitOfWork_Begin_ClosedDatabase_ReturnsStorageError(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	uow := postgres_adapter.NewGormUnitOfWorkFactory(db, &recordingPublisher{}).Create()
	err = uow.Begin(ctx)

	require.Error(t, err)
	assert.Equal(t, errs.KindStorage, errs.KindOf(err))
	require.ErrorIs(t, uow.Commit(ctx), gorm.ErrInvalidTransaction)
}

func TestGormUnitOfWork_ShortenEstimates_MatchesPlanInMemory(t *testing.T) {
	ctx := context.Background()
	factory, _ := newSQLiteFactory(t)
	f := newTestFood(t)
	staffID := kernel.NewUUID()

	removed := newTestOrderAt(t, f.ID(), 10, testTime)
	earlier := newTestOrderAt(t, f.ID(), 20, testTime.Add(-time.Minute))
	later := newTestOrderAt(t, f.ID(), 12, testTime.Add(time.Minute))
	nearlyDue := newTestOrderAt(t, f.ID(), 3, testTime.Add(2*time.Minute))
	atMinimum := newTestOrderAt(t, f.ID(), order.MinEstimateMinutes, testTime.Add(3*time.Minute))
	assigned := newTestOrderAt(t, f.ID(), 30, testTime.Add(4*time.Minute))
	require.NoError(t, assigned.Accept(staffID))
	inTransit := newTestOrderAt(t, f.ID(), 30, testTime.Add(5*time.Minute))
	require.NoError(t, inTransit.Accept(staffID))
	require.NoError(t, inTransit.Depart(staffID))
	orders := []*order.Order{removed, earlier, later, nearlyDue, atMinimum, assigned, inTransit}

	setup := factory.Create()
	require.NoError(t, setup.Begin(ctx))
	require.NoError(t, setup.FoodRepository().Add(ctx, f))
	for _, o := range orders {
		require.NoError(t, setup.OrderRepository().Add(ctx, o))
	}
	require.NoError(t, setup.Commit(ctx))

	plan, err := services.NewEstimateEngine().Rebalance(removed)
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	affected, err := uow.OrderRepository().ShortenEstimates(ctx, plan)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(ctx))

	changed := plan.Apply(orders)

	assert.Equal(t, int64(len(changed)), affected)
	assert.Len(t, changed, 3)
	repo := factory.Create().OrderRepository()
	for _, o := range orders {
		stored, err := repo.Get(ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, o.EstimateMinutes(), stored.EstimateMinutes(), "estimate of order created at %s", o.CreatedAt())
	}
}
