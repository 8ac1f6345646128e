// Package jobs provides scheduled background tasks for the restaurant.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with seconds.
//
// # Available Jobs
//
// 1. KitchenReportJob - logs how many items wait in the kitchen, by status
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger, jobs.NewKitchenReportJob(loop, r, "0 * * * * *", logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next run happens on schedule. A job whose
// schedule does not parse fails to start, and JobManager stops the jobs it
// had already started.
package jobs
