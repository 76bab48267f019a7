package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"fastfood/internal/adapters/out/postgres/deliveryrepo"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepository(t *testing.T) *deliveryrepo.GormRecordRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&deliveryrepo.RecordDTO{}))
	return deliveryrepo.NewGormRecordRepository(db)
}

func newRecord(t *testing.T) *delivery.Record {
	t.Helper()

	record, err := delivery.NewRecord(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3, 90000,
		time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	return record
}

func TestGormRecordRepository_AddThenGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	record := newRecord(t)

	require.NoError(t, repo.Add(ctx, record))

	loaded, err := repo.Get(ctx, record.ID())
	require.NoError(t, err)
	assert.Equal(t, record.StaffID(), loaded.StaffID())
	assert.Equal(t, record.FoodID(), loaded.FoodID())
	assert.Equal(t, 3, loaded.Quantity())
	assert.Equal(t, int64(90000), loaded.TotalIncome())
	assert.True(t, record.DeliveredAt().Equal(loaded.DeliveredAt()))
}

func TestGormRecordRepository_AddTwice_ReturnsConflict(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)
	record := newRecord(t)
	require.NoError(t, repo.Add(ctx, record))

	err := repo.Add(ctx, record)

	require.Error(t, err)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
}

func TestGormRecordRepository_Get_Missing_ReturnsNotFound(t *testing.T) {
	_, err := newRepository(t).Get(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormRecordRepository_Add_Unconstructed_ReturnsError(t *testing.T) {
	err := newRepository(t).Add(context.Background(), &delivery.Record{})

	require.ErrorIs(t, err, delivery.ErrRecordIsNotConstructed)
}
