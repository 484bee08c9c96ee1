package workers

import (
	"context"
	"time"
)

type WorkersContainer struct {
	Dashboard *DashboardRefresher
}

// InitWorkers starts the background workers. A zero refresh interval leaves
// the dashboard refresher off.
func InitWorkers(ctx context.Context, stats StatsRefresher, refreshEvery time.Duration) *WorkersContainer {
	c := &WorkersContainer{}
	if refreshEvery > 0 {
		c.Dashboard = NewDashboardRefresher(stats, refreshEvery)
		go c.Dashboard.Start(ctx)
	}
	return c
}
