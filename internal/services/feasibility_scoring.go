package services

import (
	"math"
	"sort"

	"dare/enterprisehub/internal/apperr"
	"dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/models/dtos/requests"
	"dare/enterprisehub/internal/models/dtos/responses"
	gormModels "dare/enterprisehub/internal/models/gorm"
)

const (
	RatingHighlyFeasible = "Highly Feasible"
	RatingFeasible       = "Feasible"
	RatingConditional    = "Feasible with Conditions"
	RatingNotFeasible    = "Not Feasible"
)

var scoreFieldByKey = func() map[string]gormModels.ScoreField {
	m := make(map[string]gormModels.ScoreField, len(gormModels.ScoreCatalog))
	for _, f := range gormModels.ScoreCatalog {
		m[f.Key] = f
	}
	return m
}()

// allowedTransitions lists the statuses reachable from each status. Draft may
// go straight to Completed when every required score is already filled in.
// Reviewed is only entered through Review.
var allowedTransitions = map[constants.FeasibilityStatus][]constants.FeasibilityStatus{
	constants.FeasibilityDraft:      {constants.FeasibilityInProgress, constants.FeasibilityCompleted},
	constants.FeasibilityInProgress: {constants.FeasibilityDraft, constants.FeasibilityCompleted},
	constants.FeasibilityCompleted:  {constants.FeasibilityInProgress, constants.FeasibilityReviewed},
	constants.FeasibilityReviewed:   {},
}

func canTransition(from, to constants.FeasibilityStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// applyScorePatch writes patch onto scores. Unknown keys and values outside
// 1..5 are rejected before anything is written.
func applyScorePatch(scores *gormModels.FeasibilityScores, patch requests.ScorePatch) error {
	if len(patch) == 0 {
		return nil
	}

	verr := &apperr.ValidationError{}
	keys := make([]string, 0, len(patch))
	for k := range patch {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := scoreFieldByKey[key]; !ok {
			verr.Add("scores."+key, "is not a known sub-score")
			continue
		}
		if v := patch[key]; v != nil && (*v < constants.MinScore || *v > constants.MaxScore) {
			verr.Add("scores."+key, "must be an integer between 1 and 5")
		}
	}
	if err := verr.OrNil(); err != nil {
		return err
	}

	for _, key := range keys {
		ref := scoreFieldByKey[key].Ref(scores)
		if v := patch[key]; v != nil {
			val := *v
			*ref = &val
		} else {
			*ref = nil
		}
	}
	return nil
}

// computeAggregates recomputes every derived score field from the sub-scores.
func computeAggregates(a *gormModels.FeasibilityAssessment) {
	sums := map[gormModels.ScoreCategory]int{}
	counts := map[gormModels.ScoreCategory]int{}
	total, n := 0, 0

	for _, f := range gormModels.ScoreCatalog {
		v := *f.Ref(&a.FeasibilityScores)
		if v == nil {
			continue
		}
		sums[f.Category] += *v
		counts[f.Category]++
		total += *v
		n++
	}

	avg := func(c gormModels.ScoreCategory) *float64 {
		if counts[c] == 0 {
			return nil
		}
		v := round2(float64(sums[c]) / float64(counts[c]))
		return &v
	}
	a.MarketScore = avg(gormModels.CategoryMarket)
	a.FinancialScore = avg(gormModels.CategoryFinancial)
	a.OperationalScore = avg(gormModels.CategoryOperational)
	a.TeamScore = avg(gormModels.CategoryTeam)
	a.DigitalReadinessScore = avg(gormModels.CategoryDigitalReadiness)

	if n == 0 {
		a.AverageScore = nil
		a.OverallFeasibilityPercentage = nil
		a.FeasibilityRating = ""
		return
	}

	mean := float64(total) / float64(n)
	average := round2(mean)
	pct := round2(mean / constants.MaxScore * 100)
	a.AverageScore = &average
	a.OverallFeasibilityPercentage = &pct
	a.FeasibilityRating = ratingFor(pct)
}

func ratingFor(pct float64) string {
	switch {
	case pct >= 75:
		return RatingHighlyFeasible
	case pct >= 60:
		return RatingFeasible
	case pct >= 40:
		return RatingConditional
	default:
		return RatingNotFeasible
	}
}

// assessmentProgress reports per-category completion of the form.
func assessmentProgress(a *gormModels.FeasibilityAssessment) responses.AssessmentProgress {
	byCategory := map[gormModels.ScoreCategory]*responses.CategoryProgress{}
	sums := map[gormModels.ScoreCategory]int{}
	progress := responses.AssessmentProgress{ReadyToSubmit: true}

	for _, c := range gormModels.ScoreCategories {
		byCategory[c] = &responses.CategoryProgress{Category: c, MissingRequired: []string{}}
	}

	for _, f := range gormModels.ScoreCatalog {
		cp := byCategory[f.Category]
		cp.Total++
		v := *f.Ref(&a.FeasibilityScores)
		if v != nil {
			cp.Populated++
			sums[f.Category] += *v
			progress.PopulatedTotal++
			continue
		}
		if f.Required {
			cp.MissingRequired = append(cp.MissingRequired, f.Key)
		}
	}

	for _, c := range gormModels.ScoreCategories {
		cp := byCategory[c]
		if cp.Populated > 0 {
			avg := round2(float64(sums[c]) / float64(cp.Populated))
			cp.Average = &avg
		}
		cp.Complete = len(cp.MissingRequired) == 0
		if !cp.Complete {
			progress.ReadyToSubmit = false
		}
		progress.Categories = append(progress.Categories, *cp)
	}
	return progress
}

// missingRequired lists the required sub-scores not yet populated.
func missingRequired(scores *gormModels.FeasibilityScores) []string {
	var missing []string
	for _, f := range gormModels.ScoreCatalog {
		if f.Required && *f.Ref(scores) == nil {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

func hasNarrative(p requests.NarrativePatch) bool {
	return p.RiskFactors != nil || p.Opportunities != nil || p.Recommendations != nil || p.Notes != nil
}

func applyNarrative(n *gormModels.FeasibilityNarrative, p requests.NarrativePatch) {
	if p.RiskFactors != nil {
		n.RiskFactors = *p.RiskFactors
	}
	if p.Opportunities != nil {
		n.Opportunities = *p.Opportunities
	}
	if p.Recommendations != nil {
		n.Recommendations = *p.Recommendations
	}
	if p.Notes != nil {
		n.Notes = *p.Notes
	}
}
