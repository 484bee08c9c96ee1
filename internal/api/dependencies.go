package api

import (
	"time"

	"dare/enterprisehub/internal/auth"
	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/metrics"
	"dare/enterprisehub/internal/services"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Services struct {
	Users         *services.UserService
	RBAC          *services.RBACService
	Youth         *services.YouthService
	Businesses    *services.BusinessService
	Relationships *services.RelationshipService
	Mentors       *services.MentorService
	Makerspaces   *services.MakerspaceService
	Resources     *services.ResourceService
	Feasibility   *services.FeasibilityService
	Tracking      *services.TrackingService
	Dashboard     *services.DashboardService
}

// Dependencies is everything the HTTP layer needs. Redis is nil when the
// in-memory cache is in use.
type Dependencies struct {
	Services *Services
	Cache    common.CacheInterface
	Redis    *redis.Client
	Metrics  *metrics.MetricsRegistry
}

type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	DashboardTTL  time.Duration
	PermissionTTL time.Duration
}

func InitDependencies(gdb *gorm.DB, sqlDB *sqlx.DB, cache common.CacheInterface, redisClient *redis.Client, m *metrics.MetricsRegistry, opts Options) *Dependencies {
	tokens := auth.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	rbac := services.NewRBACService(gdb, cache, opts.PermissionTTL, m)

	svc := &Services{
		Users:         services.NewUserService(gdb, tokens, rbac, m),
		RBAC:          rbac,
		Youth:         services.NewYouthService(gdb),
		Businesses:    services.NewBusinessService(gdb, m),
		Relationships: services.NewRelationshipService(gdb, m),
		Mentors:       services.NewMentorService(gdb),
		Makerspaces:   services.NewMakerspaceService(gdb),
		Resources:     services.NewResourceService(gdb),
		Feasibility:   services.NewFeasibilityService(gdb, m),
		Tracking:      services.NewTrackingService(gdb, m),
		Dashboard:     services.NewDashboardService(sqlDB, cache, opts.DashboardTTL, m),
	}

	return &Dependencies{
		Services: svc,
		Cache:    cache,
		Redis:    redisClient,
		Metrics:  m,
	}
}
