package services

import (
	"context"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/db/repositories"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/models/dtos/responses"

	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

const dashboardStatsKey = string(constants.CachePrefixDashboard) + "stats"

type DashboardService struct {
	repo    *repositories.DashboardRepository
	cache   common.CacheInterface
	ttl     time.Duration
	metrics *metrics.MetricsRegistry
}

func NewDashboardService(db *sqlx.DB, cache common.CacheInterface, ttl time.Duration, m *metrics.MetricsRegistry) *DashboardService {
	return &DashboardService{
		repo:    repositories.NewDashboardRepository(db),
		cache:   cache,
		ttl:     ttl,
		metrics: m,
	}
}

// Stats returns program-wide counts, served from cache for up to ttl.
func (s *DashboardService) Stats(ctx context.Context) (*responses.DashboardStats, error) {
	stats, hit, err := common.CachedJSON(s.cache, dashboardStatsKey, s.ttl, func() (*responses.DashboardStats, error) {
		return s.compute(ctx)
	})
	s.metrics.ObserveCache(string(constants.CachePrefixDashboard), hit)
	if err != nil {
		return nil, apperr.Storage("dashboard stats", err)
	}
	return stats, nil
}

// Invalidate drops the cached stats.
func (s *DashboardService) Invalidate() {
	if s.cache != nil {
		s.cache.Delete(dashboardStatsKey)
	}
}

// Refresh recomputes the stats and replaces the cached copy.
func (s *DashboardService) Refresh(ctx context.Context) (*responses.DashboardStats, error) {
	s.Invalidate()
	return s.Stats(ctx)
}

func (s *DashboardService) compute(ctx context.Context) (*responses.DashboardStats, error) {
	stats := &responses.DashboardStats{
		BusinessesByDistrict: map[string]int64{},
		AssessmentsByStatus:  map[string]int64{},
	}

	g, gctx := errgroup.WithContext(ctx)

	count := func(queryType string, dst *int64, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			started := time.Now()
			n, err := fn(gctx)
			s.metrics.ObserveQuery(queryType, started, err)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count("active_youth", &stats.ActiveYouth, s.repo.ActiveYouth)
	count("active_mentors", &stats.ActiveMentors, s.repo.ActiveMentors)
	count("active_mentorships", &stats.ActiveMentorships, s.repo.ActiveMentorships)
	count("active_makerspace_links", &stats.ActiveMakerspaceLinks, s.repo.ActiveMakerspaceAssignments)

	g.Go(func() error {
		started := time.Now()
		rows, err := s.repo.BusinessesByDistrict(gctx)
		s.metrics.ObserveQuery("businesses_by_district", started, err)
		if err != nil {
			return err
		}
		for _, row := range rows {
			stats.BusinessesByDistrict[row.Label] = row.Total
			stats.TotalBusinesses += row.Total
		}
		return nil
	})

	g.Go(func() error {
		started := time.Now()
		rows, err := s.repo.AssessmentsByStatus(gctx)
		s.metrics.ObserveQuery("assessments_by_status", started, err)
		if err != nil {
			return err
		}
		for _, row := range rows {
			stats.AssessmentsByStatus[row.Label] = row.Total
		}
		return nil
	})

	g.Go(func() error {
		started := time.Now()
		rows, err := s.repo.TrackingByVerification(gctx)
		s.metrics.ObserveQuery("tracking_by_verification", started, err)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if row.IsVerified {
				stats.VerifiedTrackingRecords += row.Total
			} else {
				stats.PendingTrackingRecords += row.Total
			}
		}
		return nil
	})

	g.Go(func() error {
		started := time.Now()
		avg, err := s.repo.AverageFeasibility(gctx)
		s.metrics.ObserveQuery("average_feasibility", started, err)
		if err != nil {
			return err
		}
		if avg != nil {
			v := round2(*avg)
			stats.AverageFeasibility = &v
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	stats.GeneratedAt = time.Now().UTC()
	return stats, nil
}

// Ping reports database reachability for the health endpoint.
func (s *DashboardService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
