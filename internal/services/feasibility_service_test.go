package services

import (
	"context"
	"errors"
	"testing"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeasibility_SubmitReviewLock(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewFeasibilityService(gdb, nil)
	ctx := context.Background()

	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")
	assessor := testutil.CreateUser(t, gdb, "assessor", constants.RoleManager)
	reviewer := testutil.CreateUser(t, gdb, "reviewer", constants.RoleAdmin)

	view, err := svc.Create(ctx, &assessor.ID, &requests.CreateAssessmentRequest{
		BusinessID: biz.ID,
		Scores:     requests.ScorePatch{"marketDemand": testutil.IntPtr(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, constants.FeasibilityDraft, view.Status)
	id := view.ID

	_, err = svc.Transition(ctx, id, &requests.AssessmentStatusRequest{Status: constants.FeasibilityCompleted})
	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr), "incomplete form must not submit")
	assert.Contains(t, verr.Fields, "scores.competitionLevel")

	view, err = svc.Update(ctx, id, &requests.UpdateAssessmentRequest{Scores: requiredScores(3)})
	require.NoError(t, err)
	assert.True(t, view.Progress.ReadyToSubmit)
	require.NotNil(t, view.OverallFeasibilityPercentage)
	assert.Equal(t, 60.0, *view.OverallFeasibilityPercentage)

	view, err = svc.Transition(ctx, id, &requests.AssessmentStatusRequest{Status: constants.FeasibilityCompleted})
	require.NoError(t, err)
	assert.NotNil(t, view.SubmittedAt)

	_, err = svc.Update(ctx, id, &requests.UpdateAssessmentRequest{Scores: requests.ScorePatch{"marketDemand": testutil.IntPtr(5)}})
	var conflict *apperr.ConflictError
	assert.True(t, errors.As(err, &conflict), "completed form is frozen")

	_, err = svc.Transition(ctx, id, &requests.AssessmentStatusRequest{Status: constants.FeasibilityReviewed})
	assert.True(t, errors.As(err, &conflict), "reviewed only through review")

	view, err = svc.Review(ctx, id, reviewer.ID, &requests.ReviewAssessmentRequest{ReviewComments: "Strong market case"})
	require.NoError(t, err)
	assert.Equal(t, constants.FeasibilityReviewed, view.Status)
	require.NotNil(t, view.ReviewedBy)
	assert.Equal(t, reviewer.ID, *view.ReviewedBy)
	assert.NotNil(t, view.ReviewDate)

	var locked *apperr.LockedError
	_, err = svc.Update(ctx, id, &requests.UpdateAssessmentRequest{Scores: requests.ScorePatch{"marketDemand": testutil.IntPtr(5)}})
	assert.True(t, errors.As(err, &locked))
	_, err = svc.Transition(ctx, id, &requests.AssessmentStatusRequest{Status: constants.FeasibilityInProgress})
	assert.True(t, errors.As(err, &locked))
	_, err = svc.Review(ctx, id, reviewer.ID, &requests.ReviewAssessmentRequest{ReviewComments: "again"})
	assert.True(t, errors.As(err, &locked))

	comments := "Follow up in Q3"
	view, err = svc.Update(ctx, id, &requests.UpdateAssessmentRequest{ReviewComments: &comments})
	require.NoError(t, err)
	assert.Equal(t, comments, view.ReviewComments)
}

func TestFeasibility_ReopenCompleted(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewFeasibilityService(gdb, nil)
	ctx := context.Background()
	biz := testutil.CreateBusiness(t, gdb, "Kasese Honey")

	view, err := svc.Create(ctx, nil, &requests.CreateAssessmentRequest{BusinessID: biz.ID, Scores: requiredScores(5)})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, view.ID, &requests.AssessmentStatusRequest{Status: constants.FeasibilityCompleted})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, view.ID, &requests.AssessmentStatusRequest{Status: constants.FeasibilityInProgress})
	require.NoError(t, err)

	view, err = svc.Update(ctx, view.ID, &requests.UpdateAssessmentRequest{Scores: requests.ScorePatch{"marketDemand": testutil.IntPtr(1)}})
	require.NoError(t, err)
	assert.Equal(t, constants.FeasibilityInProgress, view.Status)
	assert.Equal(t, 1, *view.MarketDemand)
}

func TestFeasibility_CreateUnknownBusiness(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewFeasibilityService(gdb, nil)

	_, err := svc.Create(context.Background(), nil, &requests.CreateAssessmentRequest{BusinessID: 42})

	var nf *apperr.NotFoundError
	assert.True(t, errors.As(err, &nf))
}

func TestFeasibility_ListFilters(t *testing.T) {
	gdb := testutil.NewTestDB(t)
	svc := NewFeasibilityService(gdb, nil)
	ctx := context.Background()
	a := testutil.CreateBusiness(t, gdb, "A")
	b := testutil.CreateBusiness(t, gdb, "B")

	for _, id := range []uint{a.ID, a.ID, b.ID} {
		_, err := svc.Create(ctx, nil, &requests.CreateAssessmentRequest{BusinessID: id})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, a.ID, "", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(ctx, 0, constants.FeasibilityCompleted, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, page.Total)

	_, err = svc.List(ctx, 0, "Archived", 0, 0)
	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
}
