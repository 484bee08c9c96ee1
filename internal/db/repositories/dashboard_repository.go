package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// DashboardRepository runs the raw aggregate queries behind the dashboard.
type DashboardRepository struct {
	db *sqlx.DB
}

func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

func (r *DashboardRepository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, r.db.Rebind(query)); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}

func (r *DashboardRepository) ActiveYouth(ctx context.Context) (int64, error) {
	return r.count(ctx, constants.CountActiveYouth)
}

func (r *DashboardRepository) ActiveMentors(ctx context.Context) (int64, error) {
	return r.count(ctx, constants.CountActiveMentors)
}

func (r *DashboardRepository) ActiveMentorships(ctx context.Context) (int64, error) {
	return r.count(ctx, constants.CountActiveMentorships)
}

func (r *DashboardRepository) ActiveMakerspaceAssignments(ctx context.Context) (int64, error) {
	return r.count(ctx, constants.CountActiveMakerspaceAssignments)
}

func (r *DashboardRepository) BusinessesByDistrict(ctx context.Context) ([]entities.GroupCount, error) {
	var rows []entities.GroupCount
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.CountBusinessesByDistrict)); err != nil {
		return nil, fmt.Errorf("businesses by district: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) AssessmentsByStatus(ctx context.Context) ([]entities.GroupCount, error) {
	var rows []entities.GroupCount
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.CountAssessmentsByStatus)); err != nil {
		return nil, fmt.Errorf("assessments by status: %w", err)
	}
	return rows, nil
}

func (r *DashboardRepository) TrackingByVerification(ctx context.Context) ([]entities.VerificationCount, error) {
	var rows []entities.VerificationCount
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.CountTrackingByVerification)); err != nil {
		return nil, fmt.Errorf("tracking by verification: %w", err)
	}
	return rows, nil
}

// AverageFeasibility is nil when no assessment has a percentage yet.
func (r *DashboardRepository) AverageFeasibility(ctx context.Context) (*float64, error) {
	var avg sql.NullFloat64
	if err := r.db.GetContext(ctx, &avg, r.db.Rebind(constants.AverageFeasibilityPercentage)); err != nil {
		return nil, fmt.Errorf("average feasibility: %w", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	v := avg.Float64
	return &v, nil
}

// Ping checks the shared connection pool for the health endpoint.
func (r *DashboardRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
