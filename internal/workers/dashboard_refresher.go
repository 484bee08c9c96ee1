package workers

import (
	"context"
	"time"

	"dare/enterprisehub/internal/logging"
	"dare/enterprisehub/internal/models/dtos/responses"

	"go.uber.org/zap"
)

// StatsRefresher recomputes and re-caches dashboard stats.
type StatsRefresher interface {
	Refresh(ctx context.Context) (*responses.DashboardStats, error)
}

// DashboardRefresher keeps the dashboard cache warm so the first request after
// expiry does not pay for the aggregate queries.
type DashboardRefresher struct {
	stats    StatsRefresher
	interval time.Duration
	runs     int
	log      *zap.SugaredLogger
}

func NewDashboardRefresher(stats StatsRefresher, interval time.Duration) *DashboardRefresher {
	return &DashboardRefresher{stats: stats, interval: interval, log: logging.Named("workers.dashboard")}
}

// Start refreshes once immediately and then on every tick until ctx is done.
func (r *DashboardRefresher) Start(ctx context.Context) {
	r.log.Infow("Dashboard refresher started", "interval", r.interval.String())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			r.log.Infow("Dashboard refresher stopped", "runs", r.runs)
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *DashboardRefresher) refresh(ctx context.Context) {
	queryCtx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	r.runs++
	stats, err := r.stats.Refresh(queryCtx)
	if err != nil {
		if ctx.Err() == nil {
			r.log.Warnw("Dashboard refresh failed", "error", err)
		}
		return
	}
	r.log.Debugw("Dashboard refreshed",
		"businesses", stats.TotalBusinesses,
		"active_youth", stats.ActiveYouth,
	)
}
