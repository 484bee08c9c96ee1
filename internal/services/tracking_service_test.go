package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weeklyRecord(start time.Time) *requests.RecordTrackingRequest {
	return &requests.RecordTrackingRequest{
		TrackingPeriod:           constants.PeriodWeekly,
		PeriodStart:              requests.NewDate(start),
		ProjectedRevenue:         120000,
		ActualRevenue:            100000,
		ProjectedExpenditure:     70000,
		ActualExpenditure:        65000,
		PermanentMaleEmployees:   1,
		PermanentFemaleEmployees: 2,
		TemporaryFemaleEmployees: 1,
	}
}

func TestTracking_RecordDerivesFields(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	rec, err := svc.Record(context.Background(), biz.ID, nil, weeklyRecord(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	assert.Equal(t, 50000.0, rec.ProjectedProfit)
	assert.Equal(t, 35000.0, rec.ActualProfit)
	assert.Equal(t, 400000.0, rec.MonthlyRevenueEquivalent)
	assert.Equal(t, 4, rec.TotalEmployees)
	assert.False(t, rec.IsVerified)
}

func TestTracking_RejectsMismatchedEcho(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	req := weeklyRecord(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	req.ActualProfit = testutil.FloatPtr(35000)
	req.TotalEmployees = testutil.IntPtr(5)
	req.PeriodEnd = requests.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := svc.Record(context.Background(), biz.ID, nil, req)

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "totalEmployees")
	assert.Contains(t, verr.Fields, "periodEnd")
	assert.NotContains(t, verr.Fields, "actualProfit")
}

func TestTracking_EmptyPeriodStart(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	var req requests.RecordTrackingRequest
	require.NoError(t, json.Unmarshal([]byte(`{"trackingPeriod":"monthly","periodStart":"","actualRevenue":5000}`), &req))
	require.NotNil(t, req.PeriodStart)

	_, err := svc.Record(context.Background(), biz.ID, nil, &req)
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, "is required", verr.Fields["periodStart"])

	req.TrackingPeriod = "fortnightly"
	_, err = svc.Record(context.Background(), biz.ID, nil, &req)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "periodStart")
	assert.Contains(t, verr.Fields, "trackingPeriod")

	var count int64
	require.NoError(t, gdb.Model(&gormModels.BusinessTracking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTracking_DuplicatePeriod(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	ctx := context.Background()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.Record(ctx, biz.ID, nil, weeklyRecord(start))
	require.NoError(t, err)

	_, err = svc.Record(ctx, biz.ID, nil, weeklyRecord(start))
	var conflict *apperr.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, constants.MsgDuplicateTracking, conflict.Message)

	monthly := weeklyRecord(start)
	monthly.TrackingPeriod = constants.PeriodMonthly
	_, err = svc.Record(ctx, biz.ID, nil, monthly)
	assert.NoError(t, err, "same start with a different period is a separate record")
}

func TestTracking_VerifyLocksRecord(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	ctx := context.Background()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	verifier := testutil.CreateUser(t, gdb, "verifier", constants.RoleManager)
	other := testutil.CreateUser(t, gdb, "other", constants.RoleAdmin)

	rec, err := svc.Record(ctx, biz.ID, nil, weeklyRecord(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, &requests.UpdateTrackingRequest{ActualExpenditure: testutil.FloatPtr(80000)})
	require.NoError(t, err)
	assert.Equal(t, 20000.0, updated.ActualProfit)
	assert.Equal(t, 2, updated.Version)

	verified, err := svc.Verify(ctx, rec.ID, verifier.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	require.NotNil(t, verified.VerifiedBy)
	assert.Equal(t, verifier.ID, *verified.VerifiedBy)

	again, err := svc.Verify(ctx, rec.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, verifier.ID, *again.VerifiedBy)

	_, err = svc.Update(ctx, rec.ID, &requests.UpdateTrackingRequest{Notes: testutil.StrPtr("late edit")})
	var locked *apperr.LockedError
	assert.True(t, errors.As(err, &locked))
}

func TestTracking_Summary(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewTrackingService(gdb, nil)
	ctx := context.Background()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	verifier := testutil.CreateUser(t, gdb, "verifier", constants.RoleManager)

	first, err := svc.Record(ctx, biz.ID, nil, weeklyRecord(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	second := weeklyRecord(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
	second.PermanentMaleEmployees = 3
	_, err = svc.Record(ctx, biz.ID, nil, second)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, first.ID, verifier.ID)
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Records)
	assert.Equal(t, int64(1), summary.VerifiedRecords)
	assert.Equal(t, int64(1), summary.UnverifiedRecords)
	assert.Equal(t, 200000.0, summary.TotalRevenue)
	assert.Equal(t, 130000.0, summary.TotalExpenditure)
	assert.Equal(t, 70000.0, summary.TotalProfit)
	assert.Equal(t, 6, summary.LatestEmployees)

	page, err := svc.List(ctx, biz.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.True(t, page.Items[0].PeriodStart.After(page.Items[1].PeriodStart))

	_, err = svc.Summary(ctx, 999)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
