package jobs

import (
	"fmt"
	"log/slog"
)

// Job is a scheduled task the manager owns.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts jobs in registration order and stops them in reverse.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

// NewJobManager creates a manager for jobs.
func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	return &JobManager{jobs: jobs, logger: logger.With("component", "job_manager")}
}

// StartAll starts every job. When one fails, the jobs already started are
// stopped again and the error names the failing job.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %s: %w", job.Name(), err)
		}
		jm.started = append(jm.started, job)
	}

	jm.logger.Info("Scheduled jobs started", "count", len(jm.started))
	return nil
}

// StopAll stops the started jobs, last started first. Calling it twice is safe.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
