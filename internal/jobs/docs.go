// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. OrderDispatchJob - Runs every 15 seconds to assign the oldest waiting
// order to the nearest available driver within the configured radius
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(dispatchHandler, radiusKm, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A dispatch pass that finds no waiting order, no merchant coordinates, or
// no driver in range ends silently; only unexpected failures are logged.
package jobs
