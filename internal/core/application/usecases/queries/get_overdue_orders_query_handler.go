package queries

import (
	"context"
	"slices"

	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle returns overdue orders, most overdue first. The deadline is computed
// here rather than in SQL so the statement runs unchanged on every driver.
func (h GetOverdueOrdersQueryHandler) Handle(ctx context.Context, query GetOverdueOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw("SELECT "+orderColumns+" FROM orders WHERE created_at < ? ORDER BY created_at, id", query.Now()).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("select overdue orders", err)
	}

	views, err := toOrderViews(rows)
	if err != nil {
		return nil, err
	}

	overdue := make([]OrderView, 0, len(views))
	for _, view := range views {
		if query.Now().After(view.Deadline()) {
			overdue = append(overdue, view)
		}
	}

	slices.SortStableFunc(overdue, func(a, b OrderView) int {
		return a.Deadline().Compare(b.Deadline())
	})
	return overdue, nil
}
