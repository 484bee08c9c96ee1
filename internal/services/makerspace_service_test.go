package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakerspace_DeactivateKeepsAssignments(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewMakerspaceService(gdb)
	rel := NewRelationshipService(gdb, nil)
	ctx := context.Background()

	ms, err := svc.Create(ctx, &requests.CreateMakerspaceRequest{Name: "Fort Portal Hub", District: constants.DistrictKabarole})
	require.NoError(t, err)
	assert.True(t, ms.IsActive)

	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	_, err = rel.AssignMakerspace(ctx, biz.ID, nil, &requests.AssignMakerspaceRequest{MakerspaceID: ms.ID})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, ms.ID))

	listed, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Empty(t, listed)
	listed, err = svc.List(ctx, constants.DistrictKabarole, true)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	current, err := rel.ActiveMakerspace(ctx, biz.ID)
	require.NoError(t, err)
	assert.Equal(t, ms.ID, current.MakerspaceID)

	other := testutil.CreateBusiness(t, gdb, "Kyenjojo Tea")
	_, err = rel.AssignMakerspace(ctx, other.ID, nil, &requests.AssignMakerspaceRequest{MakerspaceID: ms.ID})
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr), "inactive makerspace takes no new businesses")
}

func TestResources_CostHistory(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewResourceService(gdb)
	ctx := context.Background()
	ms := testutil.CreateMakerspace(t, gdb, "Fort Portal Hub")

	res, err := svc.CreateMakerspaceResource(ctx, ms.ID, &requests.CreateResourceRequest{
		Name:            "Sewing machine",
		AcquisitionCost: testutil.FloatPtr(850000),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Quantity)
	assert.Equal(t, constants.ResourceAvailable, res.Status)

	for _, amount := range []float64{25000, 40000.5} {
		_, err := svc.AddMakerspaceResourceCost(ctx, ms.ID, res.ID, nil, &requests.AddResourceCostRequest{
			CostType: constants.CostMaintenance,
			Amount:   amount,
			CostDate: requests.NewDate(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		})
		require.NoError(t, err)
	}

	summary, err := svc.MakerspaceResourceCostSummary(ctx, ms.ID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Entries)
	assert.Equal(t, 65000.5, summary.HistoryTotal)
	assert.Equal(t, 915000.5, summary.TotalCost)

	status := constants.ResourceMaintenance
	updated, err := svc.UpdateMakerspaceResource(ctx, ms.ID, res.ID, &requests.UpdateResourceRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, status, updated.Status)

	other := testutil.CreateMakerspace(t, gdb, "Kyenjojo Works")
	_, err = svc.GetMakerspaceResource(ctx, other.ID, res.ID)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf), "resources are scoped to their owner")

	require.NoError(t, svc.DeleteMakerspaceResource(ctx, ms.ID, res.ID))
	_, err = svc.MakerspaceResourceCostSummary(ctx, ms.ID, res.ID)
	assert.True(t, errors.As(err, &nf))
}

func TestResources_BusinessOwned(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewResourceService(gdb)
	ctx := context.Background()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	res, err := svc.CreateBusinessResource(ctx, biz.ID, &requests.CreateResourceRequest{Name: "Honey extractor", Quantity: testutil.IntPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Quantity)

	_, err = svc.AddBusinessResourceCost(ctx, biz.ID, res.ID, nil, &requests.AddResourceCostRequest{CostType: "bribe", Amount: 10})
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))

	list, err := svc.ListBusinessResources(ctx, biz.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	summary, err := svc.BusinessResourceCostSummary(ctx, biz.ID, res.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCost)

	_, err = svc.ListBusinessResources(ctx, 999)
	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}
