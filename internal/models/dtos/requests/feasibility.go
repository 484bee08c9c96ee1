package requests

import "dare/enterprisehub/internal/constants"

// ScorePatch maps sub-score keys (e.g. "marketDemand") to a 1..5 value.
// A present key with null clears the score; absent keys are untouched.
type ScorePatch map[string]*int

type NarrativePatch struct {
	RiskFactors     *string `json:"riskFactors"`
	Opportunities   *string `json:"opportunities"`
	Recommendations *string `json:"recommendations"`
	Notes           *string `json:"notes"`
}

type CreateAssessmentRequest struct {
	BusinessID     uint       `json:"businessId" validate:"required,gt=0"`
	AssessmentDate *Date      `json:"assessmentDate"`
	Scores         ScorePatch `json:"scores"`
	NarrativePatch
}

type UpdateAssessmentRequest struct {
	AssessmentDate *Date      `json:"assessmentDate"`
	Scores         ScorePatch `json:"scores"`
	NarrativePatch
	ReviewComments *string `json:"reviewComments"`
	Version        *int    `json:"version" validate:"omitempty,gt=0"`
}

type AssessmentStatusRequest struct {
	Status constants.FeasibilityStatus `json:"status" validate:"required,feasibility_status"`
}

type ReviewAssessmentRequest struct {
	ReviewComments string `json:"reviewComments" validate:"required,notblank"`
}
