package services

import (
	"errors"
	"testing"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	gormModels "dare/enterprisehub/internal/models/gorm"
	"dare/enterprisehub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requiredScores fills every required sub-score with v.
func requiredScores(v int) requests.ScorePatch {
	patch := requests.ScorePatch{}
	for _, f := range gormModels.ScoreCatalog {
		if f.Required {
			patch[f.Key] = testutil.IntPtr(v)
		}
	}
	return patch
}

func TestComputeAggregates(t *testing.T) {
	a := &gormModels.FeasibilityAssessment{}
	require.NoError(t, applyScorePatch(&a.FeasibilityScores, requests.ScorePatch{
		"marketDemand":     testutil.IntPtr(5),
		"competitionLevel": testutil.IntPtr(4),
		"startupCosts":     testutil.IntPtr(2),
	}))

	computeAggregates(a)

	require.NotNil(t, a.MarketScore)
	assert.Equal(t, 4.5, *a.MarketScore)
	require.NotNil(t, a.FinancialScore)
	assert.Equal(t, 2.0, *a.FinancialScore)
	assert.Nil(t, a.OperationalScore)
	assert.Nil(t, a.TeamScore)

	require.NotNil(t, a.AverageScore)
	assert.Equal(t, 3.67, *a.AverageScore)
	require.NotNil(t, a.OverallFeasibilityPercentage)
	assert.Equal(t, 73.33, *a.OverallFeasibilityPercentage)
	assert.Equal(t, RatingFeasible, a.FeasibilityRating)
}

func TestComputeAggregates_ClearingScoresResetsDerived(t *testing.T) {
	a := &gormModels.FeasibilityAssessment{}
	require.NoError(t, applyScorePatch(&a.FeasibilityScores, requests.ScorePatch{"marketDemand": testutil.IntPtr(3)}))
	computeAggregates(a)
	require.NotNil(t, a.AverageScore)

	require.NoError(t, applyScorePatch(&a.FeasibilityScores, requests.ScorePatch{"marketDemand": nil}))
	computeAggregates(a)

	assert.Nil(t, a.MarketScore)
	assert.Nil(t, a.AverageScore)
	assert.Nil(t, a.OverallFeasibilityPercentage)
	assert.Empty(t, a.FeasibilityRating)
}

func TestApplyScorePatch_RejectsWithoutWriting(t *testing.T) {
	scores := &gormModels.FeasibilityScores{}

	err := applyScorePatch(scores, requests.ScorePatch{
		"marketDemand": testutil.IntPtr(4),
		"teamSpirit":   testutil.IntPtr(3),
		"marketSize":   testutil.IntPtr(6),
	})

	var verr *apperr.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "scores.teamSpirit")
	assert.Contains(t, verr.Fields, "scores.marketSize")
	assert.Nil(t, scores.MarketDemand)
}

func TestRatingFor(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{100, RatingHighlyFeasible},
		{75, RatingHighlyFeasible},
		{74.99, RatingFeasible},
		{60, RatingFeasible},
		{59.99, RatingConditional},
		{40, RatingConditional},
		{39.99, RatingNotFeasible},
		{20, RatingNotFeasible},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ratingFor(tc.pct), "pct %.2f", tc.pct)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, canTransition(constants.FeasibilityDraft, constants.FeasibilityInProgress))
	assert.True(t, canTransition(constants.FeasibilityDraft, constants.FeasibilityCompleted))
	assert.True(t, canTransition(constants.FeasibilityCompleted, constants.FeasibilityInProgress))
	assert.True(t, canTransition(constants.FeasibilityCompleted, constants.FeasibilityReviewed))
	assert.False(t, canTransition(constants.FeasibilityDraft, constants.FeasibilityReviewed))
	assert.False(t, canTransition(constants.FeasibilityReviewed, constants.FeasibilityDraft))
	assert.False(t, canTransition(constants.FeasibilityReviewed, constants.FeasibilityInProgress))
}

func TestAssessmentProgress(t *testing.T) {
	a := &gormModels.FeasibilityAssessment{}
	require.NoError(t, applyScorePatch(&a.FeasibilityScores, requiredScores(4)))
	require.NoError(t, applyScorePatch(&a.FeasibilityScores, requests.ScorePatch{"marketDemand": nil, "pricingStrategy": testutil.IntPtr(2)}))

	progress := assessmentProgress(a)

	assert.False(t, progress.ReadyToSubmit)
	require.Len(t, progress.Categories, len(gormModels.ScoreCategories))

	market := progress.Categories[0]
	assert.Equal(t, gormModels.CategoryMarket, market.Category)
	assert.Equal(t, 5, market.Total)
	assert.Equal(t, 3, market.Populated)
	assert.Equal(t, []string{"marketDemand"}, market.MissingRequired)
	require.NotNil(t, market.Average)
	assert.Equal(t, 3.33, *market.Average)

	for _, cp := range progress.Categories[1:] {
		assert.True(t, cp.Complete, cp.Category)
	}
}
