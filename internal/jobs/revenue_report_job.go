package jobs

import (
	"context"
	"log/slog"
	"time"

	"fastfood/internal/core/application/usecases/queries"
	"fastfood/internal/core/domain/model/delivery"

	"github.com/robfig/cron/v3"
)

const DefaultRevenueReportSchedule = "0 0 * * * *"

type monthlyRevenueHandler interface {
	Handle(ctx context.Context, query queries.GetMonthlyRevenueQuery) (queries.MonthlyRevenue, error)
}

// RevenueReportJob logs the running totals of the current month.
type RevenueReportJob struct {
	handler  monthlyRevenueHandler
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRevenueReportJob(handler monthlyRevenueHandler, schedule string, logger *slog.Logger) *RevenueReportJob {
	if schedule == "" {
		schedule = DefaultRevenueReportSchedule
	}

	return &RevenueReportJob{
		handler:  handler,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "revenue_report_job"),
	}
}

func (j *RevenueReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Revenue report job started", "schedule", j.schedule)
	return nil
}

func (j *RevenueReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Revenue report job stopped")
}

// Run reports once.
func (j *RevenueReportJob) Run(ctx context.Context) {
	query, err := queries.NewGetMonthlyRevenueQuery(queries.PeriodOf(j.now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Revenue report query is invalid", "error", err)
		return
	}

	revenue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Revenue report job failed", "error", err)
		return
	}

	for _, staff := range revenue.ByStaff {
		j.logger.InfoContext(ctx, "Staff revenue",
			"period", revenue.Period.String(),
			"staff_id", staff.StaffID.String(),
			"deliveries", staff.Deliveries,
			"quantity", staff.Quantity,
			"income", delivery.FormatIncome(staff.TotalIncome),
		)
	}
	j.logger.InfoContext(ctx, "Monthly revenue",
		"period", revenue.Period.String(),
		"deliveries", revenue.Deliveries,
		"income", delivery.FormatIncome(revenue.TotalIncome),
	)
}
