package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically purges carts that have been idle longer than
// the configured expiry. Runs once a minute; the backing store decides
// whether a sweep is needed at all.
type CartCleanupJob struct {
	cartStore ports.CartStore
	maxIdle   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartCleanupJob creates a cleanup job for the given cart store.
// Carts untouched for maxIdle are dropped on the next sweep.
func NewCartCleanupJob(cartStore ports.CartStore, maxIdle time.Duration, logger *slog.Logger) *CartCleanupJob {
	return &CartCleanupJob{
		cartStore: cartStore,
		maxIdle:   maxIdle,
		cron:      cron.New(),
		logger:    logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cleanup job to run every minute.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		removed, err := j.cartStore.PurgeIdle(ctx, j.maxIdle)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned carts", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}
