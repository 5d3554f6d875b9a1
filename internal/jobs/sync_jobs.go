package jobs

import (
	"context"
	"time"

	"orghub-backend/internal/logger"
)

// SyncFinancialData provisions the previous year's financial rows for
// active organizations whose data is stale, then stamps synced_on. The
// ANAF pull itself happens out of band; this job keeps every active
// organization's income and expense rows present so the sync has
// somewhere to land.
func (jr *JobRunner) SyncFinancialData() {
	jr.runWithRecovery("SyncFinancialData", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		// Anything not synced in the last 24 hours is due.
		orgs, err := jr.store.OrganizationRepository.ListFinancialOutOfSync(ctx, now.Add(-24*time.Hour))
		if err != nil {
			logger.Error("Failed to list organizations for financial sync", "error", err)
			return
		}

		prevYear := int32(now.Year() - 1)
		synced := 0
		for _, org := range orgs {
			if err := jr.store.OrganizationRepository.EnsureFinancialYear(ctx, org.ID, prevYear); err != nil {
				logger.Error("Failed to provision financial year", "org_id", org.ID, "year", prevYear, "error", err)
				continue
			}
			if err := jr.store.OrganizationRepository.UpdateSyncedOn(ctx, org.ID, now); err != nil {
				logger.Error("Failed to update synced_on", "org_id", org.ID, "error", err)
				continue
			}
			synced++
		}

		logger.Info("Financial sync finished", "candidates", len(orgs), "synced", synced)
	})
}

// CleanupExpiredUploads removes temporary upload files whose presigned
// URLs have long expired.
func (jr *JobRunner) CleanupExpiredUploads() {
	jr.runWithRecovery("CleanupExpiredUploads", func() {
		removed, err := jr.files.CleanupExpired(24 * time.Hour)
		if err != nil {
			logger.Error("Failed to clean up expired uploads", "error", err)
			return
		}
		logger.Info("Expired uploads removed", "count", removed)
	})
}
