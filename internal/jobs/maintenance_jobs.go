package jobs

import (
	"context"
	"time"

	"arena-backend/internal/logger"
)

// CloseOverdueRegistrations closes registration for tournaments whose
// start date has passed while registration was still open.
func (jr *JobRunner) CloseOverdueRegistrations() {
	jr.runWithRecovery("CloseOverdueRegistrations", func() {
		ctx := context.Background()

		count, err := jr.store.TournamentRepository.CloseOverdueRegistrations(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to close overdue registrations", "error", err)
			return
		}
		logger.Info("Closed overdue tournament registrations", "count", count)
	})
}

// PurgeResolvedJoinRequests deletes join requests that reached a
// terminal state longer ago than the retention window. Pending requests
// are never touched.
func (jr *JobRunner) PurgeResolvedJoinRequests() {
	jr.runWithRecovery("PurgeResolvedJoinRequests", func() {
		ctx := context.Background()

		retention := time.Duration(jr.config.Scheduler.JoinRequestRetentionDays) * 24 * time.Hour
		cutoff := time.Now().Add(-retention)

		count, err := jr.store.JoinRequestRepository.PurgeResolvedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge resolved join requests", "error", err)
			return
		}
		logger.Info("Purged resolved join requests", "count", count, "cutoff", cutoff.Format("2006-01-02"))
	})
}
