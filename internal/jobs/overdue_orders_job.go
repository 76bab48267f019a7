package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const DefaultOverdueOrdersSchedule = "0 * * * * *"

type overdueOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetOverdueOrdersQuery) ([]queries.OrderView, error)
}

// OverdueOrdersJob warns about orders that missed their estimate.
type OverdueOrdersJob struct {
	handler  overdueOrdersHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOverdueOrdersJob(handler overdueOrdersHandler, schedule string, logger *slog.Logger) *OverdueOrdersJob {
	if schedule == "" {
		schedule = DefaultOverdueOrdersSchedule
	}

	return &OverdueOrdersJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "overdue_orders_job"),
	}
}

func (j *OverdueOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started", "schedule", j.schedule)
	return nil
}

func (j *OverdueOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

// Run checks once and returns the number of overdue orders found.
func (j *OverdueOrdersJob) Run(ctx context.Context) int {
	now := j.now()
	query, err := queries.NewGetOverdueOrdersQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders query is invalid", "error", err)
		return 0
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return 0
	}

	for _, o := range orders {
		attrs := []any{
			"order_id", o.ID.String(),
			"status", o.Status.String(),
			"late_by", now.Sub(o.Deadline()).Round(time.Second).String(),
		}
		if o.StaffID != nil {
			attrs = append(attrs, "staff_id", o.StaffID.String())
		}
		j.logger.WarnContext(ctx, "Order is overdue", attrs...)
	}
	return len(orders)
}
