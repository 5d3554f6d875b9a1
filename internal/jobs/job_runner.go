package jobs

import (
	"database/sql"

	"orghub-backend/internal/config"
	"orghub-backend/internal/logger"
	"orghub-backend/internal/repository/postgres"
	"orghub-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	store  *postgres.Store
	files  *storage.LocalStorage
	config *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, store *postgres.Store, files *storage.LocalStorage, cfg *config.Config) *JobRunner {
	return &JobRunner{
		db:     db,
		store:  store,
		files:  files,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SyncFinancialData()
	jr.CleanupExpiredUploads()
}
