// Package jobs provides scheduled background tasks for the fastfood service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and only read: they run query handlers and log what they find.
//
// # Available Jobs
//
//  1. RevenueReportJob logs the sales of the current month per staff member.
//  2. OverdueOrdersJob logs the orders whose estimate has run out.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.Schedules{
//		RevenueReport: "0 0 * * * *",
//		OverdueOrders: "0 * * * * *",
//	}, revenueHandler, overdueHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// A job run that fails is logged and retried at the next tick.
package jobs
