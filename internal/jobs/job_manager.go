package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleDeliveryJob *StaleDeliveryJob
	fleetStatsJob    *FleetStatsJob
}

func NewJobManager(staleDeliveryJob *StaleDeliveryJob, fleetStatsJob *FleetStatsJob) *JobManager {
	return &JobManager{
		staleDeliveryJob: staleDeliveryJob,
		fleetStatsJob:    fleetStatsJob,
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the ones already
// running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale delivery job: %w", err)
	}

	if err := jm.fleetStatsJob.Start(); err != nil {
		jm.staleDeliveryJob.Stop()
		return fmt.Errorf("failed to start fleet stats job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	jm.fleetStatsJob.Stop()
	jm.staleDeliveryJob.Stop()
}
