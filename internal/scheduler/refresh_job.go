package scheduler

import (
	"context"
	"time"
)

// SnapshotRefresher rebuilds simulation state from a fresh market snapshot.
type SnapshotRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshJob periodically refreshes the market snapshot so the scene does
// not serve stale metrics past the cache TTL.
type RefreshJob struct {
	refresher SnapshotRefresher
	timeout   time.Duration
}

// NewRefreshJob creates a snapshot refresh job with a per-run timeout.
func NewRefreshJob(refresher SnapshotRefresher, timeout time.Duration) *RefreshJob {
	return &RefreshJob{refresher: refresher, timeout: timeout}
}

// Name implements Job.
func (j *RefreshJob) Name() string { return "snapshot_refresh" }

// Run implements Job.
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.refresher.Refresh(ctx)
}
