package responses

import gormModels "dare/enterprisehub/internal/models/gorm"

// CategoryProgress is the per-step completion of the assessment form.
type CategoryProgress struct {
	Category        gormModels.ScoreCategory `json:"category"`
	Populated       int                      `json:"populated"`
	Total           int                      `json:"total"`
	Average         *float64                 `json:"average"`
	MissingRequired []string                 `json:"missingRequired"`
	Complete        bool                     `json:"complete"`
}

type AssessmentProgress struct {
	Categories     []CategoryProgress `json:"categories"`
	ReadyToSubmit  bool               `json:"readyToSubmit"`
	PopulatedTotal int                `json:"populatedTotal"`
}

type AssessmentView struct {
	gormModels.FeasibilityAssessment
	Progress AssessmentProgress `json:"progress"`
}
