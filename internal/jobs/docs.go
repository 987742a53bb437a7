// Package jobs provides scheduled background tasks for the restaurant server.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
//  1. StaleDeliveryJob - abandons deliveries whose courier did not confirm in
//     time and returns their vehicles (default "*/5 * * * * *")
//  2. FleetStatsJob - samples queue and fleet counters into the Prometheus
//     gauges (default "*/10 * * * * *")
//
// # Usage
//
//	jobManager := jobs.NewJobManager(staleDeliveryJob, fleetStatsJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Each job also exposes Run for a single synchronous tick.
package jobs
