package queries_test

import (
	"testing"
	"time"

	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func TestGetFoodsQuery_Validate(t *testing.T) {
	require.NoError(t, queries.NewGetFoodsQuery().Validate())
	require.ErrorIs(t, queries.GetFoodsQuery{}.Validate(), queries.ErrGetFoodsQueryIsNotConstructed)
}

func TestNewGetOrdersQuery(t *testing.T) {
	user := newActor(t, kernel.RoleUser)
	staff := newActor(t, kernel.RoleStaff)
	admin := newActor(t, kernel.RoleAdmin)

	tests := []struct {
		name    string
		actor   kernel.Actor
		scope   queries.OrderScope
		wantErr errs.Kind
	}{
		{"user lists own orders", user, queries.ScopeMine, errs.KindUnknown},
		{"staff lists unassigned", staff, queries.ScopeUnassigned, errs.KindUnknown},
		{"admin lists assigned", admin, queries.ScopeAssignedToMe, errs.KindUnknown},
		{"user cannot list unassigned", user, queries.ScopeUnassigned, errs.KindForbidden},
		{"user cannot list assigned", user, queries.ScopeAssignedToMe, errs.KindForbidden},
		{"unknown scope", staff, queries.OrderScope(42), errs.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewGetOrdersQuery(tt.actor, tt.scope)

			if tt.wantErr == errs.KindUnknown {
				require.NoError(t, err)
				require.NoError(t, query.Validate())
				assert.Equal(t, tt.scope, query.Scope())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, errs.KindOf(err))
		})
	}

	_, err := queries.NewGetOrdersQuery(kernel.Actor{}, queries.ScopeMine)
	require.ErrorIs(t, err, kernel.ErrActorIsNotConstructed)
}

func TestNewPeriod(t *testing.T) {
	period, err := queries.NewPeriod(2024, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), period.Start())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), period.End())
	assert.Equal(t, "2024-02", period.String())

	december, err := queries.NewPeriod(2023, 12)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), december.End())

	for _, bad := range [][2]int{{2024, 0}, {2024, 13}, {1999, 5}, {10000, 1}} {
		_, err = queries.NewPeriod(bad[0], bad[1])
		require.Error(t, err, "%v", bad)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	}

	lateMay := time.Date(2024, 5, 31, 23, 0, 0, 0, time.FixedZone("UTC-3", -3*3600))
	assert.Equal(t, queries.Period{Year: 2024, Month: time.June}, queries.PeriodOf(lateMay))
}

func TestNewGetDeliveryRecordsQuery(t *testing.T) {
	period := queries.Period{Year: 2024, Month: time.March}
	staff := newActor(t, kernel.RoleStaff)
	admin := newActor(t, kernel.RoleAdmin)
	other := kernel.NewUUID()

	t.Run("staff is narrowed to own records", func(t *testing.T) {
		query, err := queries.NewGetDeliveryRecordsQuery(staff, period, nil)
		require.NoError(t, err)
		require.NotNil(t, query.StaffID())
		assert.Equal(t, staff.ID(), *query.StaffID())
	})

	t.Run("staff cannot list another member", func(t *testing.T) {
		_, err := queries.NewGetDeliveryRecordsQuery(staff, period, &other)
		require.Error(t, err)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	t.Run("admin lists everybody", func(t *testing.T) {
		query, err := queries.NewGetDeliveryRecordsQuery(admin, period, nil)
		require.NoError(t, err)
		assert.Nil(t, query.StaffID())
		assert.Equal(t, period, query.Period())
	})

	t.Run("admin filters by staff", func(t *testing.T) {
		query, err := queries.NewGetDeliveryRecordsQuery(admin, period, &other)
		require.NoError(t, err)
		assert.Equal(t, other, *query.StaffID())
	})

	t.Run("user is forbidden", func(t *testing.T) {
		_, err := queries.NewGetDeliveryRecordsQuery(newActor(t, kernel.RoleUser), period, nil)
		assert.Equal(t, errs.KindForbidden, errs.KindOf(err))
	})

	t.Run("invalid period", func(t *testing.T) {
		_, err := queries.NewGetDeliveryRecordsQuery(admin, queries.Period{Year: 2024}, nil)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})
}

func TestNewGetOverdueOrdersQuery(t *testing.T) {
	_, err := queries.NewGetOverdueOrdersQuery(time.Time{})
	require.Error(t, err)

	query, err := queries.NewGetOverdueOrdersQuery(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	require.ErrorIs(t, queries.GetOverdueOrdersQuery{}.Validate(), queries.ErrGetOverdueOrdersQueryIsNotConstructed)
}

func TestOrderView_Deadline(t *testing.T) {
	view := queries.OrderView{
		CreatedAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		EstimateMinutes: 25,
	}
	assert.Equal(t, time.Date(2024, 3, 1, 12, 25, 0, 0, time.UTC), view.Deadline())
}
