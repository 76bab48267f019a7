package food_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFood(t *testing.T) *food.Food {
	t.Helper()
	pickup, err := kernel.NewLocation(40.84116287658114, 72.32745981241342)
	require.NoError(t, err)

	f, err := food.NewFood(kernel.NewUUID(), "Lavash", "with cheese", 10000, food.Som, pickup,
		[]string{"food_images/lavash.jpg"}, time.Now())
	require.NoError(t, err)
	return f
}

func TestNewFood(t *testing.T) {
	pickup, _ := kernel.NewLocation(1, 2)

	t.Run("should create food without ratings", func(t *testing.T) {
		f := newFood(t)

		require.NoError(t, f.Validate())
		assert.Equal(t, "Lavash", f.Name())
		assert.Equal(t, int64(10000), f.Price())
		assert.Equal(t, food.Som, f.Currency())
		assert.Equal(t, food.Score{}, f.Score())
		assert.Equal(t, []string{"food_images/lavash.jpg"}, f.Media())
		assert.Equal(t, 1, f.Version())
	})

	t.Run("should reject invalid fields", func(t *testing.T) {
		_, err := food.NewFood(kernel.NewUUID(), "  ", "", -1, food.Currency("eur"), pickup, nil, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price is invalid")
		assert.Contains(t, err.Error(), "currency")
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := food.NewFood(kernel.NewUUID(), "Water", "", 0, food.Som, pickup, nil, time.Now())

		require.NoError(t, err)
	})

	t.Run("media slice is copied", func(t *testing.T) {
		f := newFood(t)
		media := f.Media()
		media[0] = "changed"

		assert.Equal(t, "food_images/lavash.jpg", f.Media()[0])
	})
}

func TestRestoreFood(t *testing.T) {
	pickup, _ := kernel.NewLocation(1, 2)

	f, err := food.RestoreFood(kernel.NewUUID(), "Burger", "", 5, food.USD, pickup,
		food.Score{Average: 4.5, Count: 2}, nil, time.Now(), 7)
	require.NoError(t, err)
	assert.Equal(t, food.Score{Average: 4.5, Count: 2}, f.Score())
	assert.Equal(t, 7, f.Version())

	_, err = food.RestoreFood(kernel.NewUUID(), "Burger", "", 5, food.USD, pickup,
		food.Score{Average: 6, Count: 2}, nil, time.Now(), 1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = food.RestoreFood(kernel.NewUUID(), "Burger", "", 5, food.USD, pickup,
		food.Score{Average: 3, Count: 0}, nil, time.Now(), 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestFood_Edit(t *testing.T) {
	f := newFood(t)
	userID := kernel.NewUUID()
	_, err := f.Rate(kernel.NewUUID(), userID, 4, nil)
	require.NoError(t, err)
	pickup, _ := kernel.NewLocation(41.3, 69.2)

	require.NoError(t, f.Edit("Big lavash", "", 15, food.USD, pickup))

	assert.Equal(t, "Big lavash", f.Name())
	assert.Equal(t, int64(15), f.Price())
	assert.Equal(t, food.USD, f.Currency())
	assert.Equal(t, pickup, f.Pickup())
	assert.Equal(t, food.Score{Average: 4, Count: 1}, f.Score())

	t.Run("failed edit leaves food untouched", func(t *testing.T) {
		err := f.Edit("", "", -5, food.Som, pickup)

		require.Error(t, err)
		assert.Equal(t, "Big lavash", f.Name())
		assert.Equal(t, int64(15), f.Price())
	})
}

func TestFood_Rate(t *testing.T) {
	t.Run("same user re-rates", func(t *testing.T) {
		f := newFood(t)
		userID := kernel.NewUUID()

		first, err := f.Rate(kernel.NewUUID(), userID, 5, nil)
		require.NoError(t, err)
		assert.True(t, first.IsNew())

		second, err := f.Rate(kernel.NewUUID(), userID, 3, first)
		require.NoError(t, err)

		assert.False(t, second.IsNew())
		assert.True(t, second.ID().IsEqual(first.ID()))
		assert.Equal(t, 3, second.Value())
		assert.Equal(t, 5, first.Value())
		assert.InDelta(t, 3.0, f.Score().Average, 1e-9)
		assert.Equal(t, 1, f.Score().Count)
	})

	t.Run("two users", func(t *testing.T) {
		f := newFood(t)

		_, err := f.Rate(kernel.NewUUID(), kernel.NewUUID(), 4, nil)
		require.NoError(t, err)
		_, err = f.Rate(kernel.NewUUID(), kernel.NewUUID(), 5, nil)
		require.NoError(t, err)

		assert.InDelta(t, 4.5, f.Score().Average, 1e-9)
		assert.Equal(t, 2, f.Score().Count)
	})

	t.Run("average stays within bounds", func(t *testing.T) {
		f := newFood(t)
		users := make([]kernel.UUID, 0, 50)
		ratings := make([]*food.Rating, 0, 50)
		for i := range 50 {
			users = append(users, kernel.NewUUID())
			r, err := f.Rate(kernel.NewUUID(), users[i], food.MinRate+i%5, nil)
			require.NoError(t, err)
			ratings = append(ratings, r)
		}
		for i, r := range ratings {
			_, err := f.Rate(kernel.NewUUID(), users[i], food.MaxRate, r)
			require.NoError(t, err)
		}

		assert.LessOrEqual(t, f.Score().Average, float64(food.MaxRate))
		assert.GreaterOrEqual(t, f.Score().Average, 0.0)
		assert.InDelta(t, 5.0, f.Score().Average, 1e-9)
		assert.Equal(t, 50, f.Score().Count)
	})

	t.Run("value out of range", func(t *testing.T) {
		f := newFood(t)

		for _, v := range []int{0, 6, -1} {
			r, err := f.Rate(kernel.NewUUID(), kernel.NewUUID(), v, nil)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Nil(t, r)
		}
		assert.Equal(t, food.Score{}, f.Score())
	})

	t.Run("previous rating of another user is rejected", func(t *testing.T) {
		f := newFood(t)
		first, err := f.Rate(kernel.NewUUID(), kernel.NewUUID(), 5, nil)
		require.NoError(t, err)

		_, err = f.Rate(kernel.NewUUID(), kernel.NewUUID(), 1, first)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, food.Score{Average: 5, Count: 1}, f.Score())
	})
}

func TestRestoreRating(t *testing.T) {
	r, err := food.RestoreRating(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Value())
	assert.False(t, r.IsNew())

	_, err = food.RestoreRating(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), 9)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
