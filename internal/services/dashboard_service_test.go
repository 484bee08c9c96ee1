package services

import (
	"context"
	"testing"
	"time"

	"dare/enterprisehub/internal/common"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/testutil"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSQLX(t *testing.T, gdb *gorm.DB) *sqlx.DB {
	t.Helper()
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlite3")
}

func TestDashboard_Stats(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	ctx := context.Background()

	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	testutil.CreateBusiness(t, gdb, "Kasese Crafts")
	other := testutil.CreateBusiness(t, gdb, "Kyenjojo Tea")
	require.NoError(t, gdb.Model(other).Update("district", constants.DistrictKyenjojo).Error)
	testutil.CreateYouth(t, gdb, "amina")
	testutil.CreateYouth(t, gdb, "brian")
	testutil.CreateMentor(t, gdb, "mentor1")

	feas := NewFeasibilityService(gdb, nil)
	_, err := feas.Create(ctx, nil, &requests.CreateAssessmentRequest{BusinessID: biz.ID, Scores: requiredScores(4)})
	require.NoError(t, err)
	_, err = feas.Create(ctx, nil, &requests.CreateAssessmentRequest{BusinessID: other.ID, Scores: requiredScores(3)})
	require.NoError(t, err)

	tracking := NewTrackingService(gdb, nil)
	rec, err := tracking.Record(ctx, biz.ID, nil, weeklyRecord(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	_, err = tracking.Record(ctx, biz.ID, nil, weeklyRecord(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	verifier := testutil.CreateUser(t, gdb, "verifier", constants.RoleReviewer)
	_, err = tracking.Verify(ctx, rec.ID, verifier.ID)
	require.NoError(t, err)

	svc := NewDashboardService(newTestSQLX(t, gdb), nil, 0, nil)
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.ActiveYouth)
	assert.Equal(t, int64(3), stats.TotalBusinesses)
	assert.Equal(t, map[string]int64{"Kasese": 2, "Kyenjojo": 1}, stats.BusinessesByDistrict)
	assert.Equal(t, int64(1), stats.ActiveMentors)
	assert.Equal(t, map[string]int64{"Draft": 2}, stats.AssessmentsByStatus)
	require.NotNil(t, stats.AverageFeasibility)
	assert.Equal(t, 70.0, *stats.AverageFeasibility)
	assert.Equal(t, int64(1), stats.VerifiedTrackingRecords)
	assert.Equal(t, int64(1), stats.PendingTrackingRecords)
	assert.False(t, stats.GeneratedAt.IsZero())

	require.NoError(t, svc.Ping(ctx))
}

func TestDashboard_EmptyDatabase(t *testing.T) {
	gdb := testutil.NewTestDB(t)

	stats, err := NewDashboardService(newTestSQLX(t, gdb), nil, 0, nil).Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalBusinesses)
	assert.Nil(t, stats.AverageFeasibility)
	assert.Empty(t, stats.BusinessesByDistrict)
}

func TestDashboard_CachedUntilInvalidated(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	ctx := context.Background()
	cache := common.NewCacheService(time.Minute, time.Minute)
	svc := NewDashboardService(newTestSQLX(t, gdb), cache, time.Minute, nil)

	testutil.CreateYouth(t, gdb, "amina")
	first, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ActiveYouth)

	testutil.CreateYouth(t, gdb, "brian")
	cached, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cached.ActiveYouth)

	svc.Invalidate()
	fresh, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fresh.ActiveYouth)

	testutil.CreateYouth(t, gdb, "carol")
	refreshed, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), refreshed.ActiveYouth)

	again, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), again.ActiveYouth)
}
