package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the jobs. Empty values fall back to
// the job defaults.
type Schedules struct {
	RevenueReport string
	OverdueOrders string
}

// JobManager starts and stops every background job together.
type JobManager struct {
	revenueReportJob *RevenueReportJob
	overdueOrdersJob *OverdueOrdersJob
}

func NewJobManager(
	schedules Schedules,
	revenueHandler monthlyRevenueHandler,
	overdueHandler overdueOrdersHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		revenueReportJob: NewRevenueReportJob(revenueHandler, schedules.RevenueReport, logger),
		overdueOrdersJob: NewOverdueOrdersJob(overdueHandler, schedules.OverdueOrders, logger),
	}
}

// StartAll starts all scheduled jobs. When one fails to start the ones
// already running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.revenueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start revenue report job: %w", err)
	}

	if err := jm.overdueOrdersJob.Start(); err != nil {
		jm.revenueReportJob.Stop()
		return fmt.Errorf("failed to start overdue orders job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.overdueOrdersJob.Stop()
	jm.revenueReportJob.Stop()
}
