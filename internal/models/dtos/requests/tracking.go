package requests

import (
	"dare/enterprisehub/internal/constants"
	gormModels "dare/enterprisehub/internal/models/gorm"
)

// RecordTrackingRequest may echo derived values; they are checked, never trusted.
type RecordTrackingRequest struct {
	TrackingPeriod           constants.TrackingPeriod `json:"trackingPeriod" validate:"required,tracking_period"`
	PeriodStart              *Date                    `json:"periodStart" validate:"required"`
	PeriodEnd                *Date                    `json:"periodEnd"`
	ProjectedRevenue         float64                  `json:"projectedRevenue" validate:"gte=0"`
	ActualRevenue            float64                  `json:"actualRevenue" validate:"gte=0"`
	ProjectedExpenditure     float64                  `json:"projectedExpenditure" validate:"gte=0"`
	ActualExpenditure        float64                  `json:"actualExpenditure" validate:"gte=0"`
	PermanentMaleEmployees   int                      `json:"permanentMaleEmployees" validate:"gte=0"`
	PermanentFemaleEmployees int                      `json:"permanentFemaleEmployees" validate:"gte=0"`
	TemporaryMaleEmployees   int                      `json:"temporaryMaleEmployees" validate:"gte=0"`
	TemporaryFemaleEmployees int                      `json:"temporaryFemaleEmployees" validate:"gte=0"`
	KeyDecisions             gormModels.StringList    `json:"keyDecisions"`
	LessonsLearned           gormModels.StringList    `json:"lessonsLearned"`
	NextSteps                gormModels.StringList    `json:"nextSteps"`
	Challenges               gormModels.StringList    `json:"challenges"`
	Notes                    string                   `json:"notes"`

	ProjectedProfit          *float64 `json:"projectedProfit"`
	ActualProfit             *float64 `json:"actualProfit"`
	MonthlyRevenueEquivalent *float64 `json:"monthlyRevenueEquivalent"`
	TotalEmployees           *int     `json:"totalEmployees"`
}

type UpdateTrackingRequest struct {
	PeriodEnd                *Date                  `json:"periodEnd"`
	ProjectedRevenue         *float64               `json:"projectedRevenue" validate:"omitempty,gte=0"`
	ActualRevenue            *float64               `json:"actualRevenue" validate:"omitempty,gte=0"`
	ProjectedExpenditure     *float64               `json:"projectedExpenditure" validate:"omitempty,gte=0"`
	ActualExpenditure        *float64               `json:"actualExpenditure" validate:"omitempty,gte=0"`
	PermanentMaleEmployees   *int                   `json:"permanentMaleEmployees" validate:"omitempty,gte=0"`
	PermanentFemaleEmployees *int                   `json:"permanentFemaleEmployees" validate:"omitempty,gte=0"`
	TemporaryMaleEmployees   *int                   `json:"temporaryMaleEmployees" validate:"omitempty,gte=0"`
	TemporaryFemaleEmployees *int                   `json:"temporaryFemaleEmployees" validate:"omitempty,gte=0"`
	KeyDecisions             *gormModels.StringList `json:"keyDecisions"`
	LessonsLearned           *gormModels.StringList `json:"lessonsLearned"`
	NextSteps                *gormModels.StringList `json:"nextSteps"`
	Challenges               *gormModels.StringList `json:"challenges"`
	Notes                    *string                `json:"notes"`

	ProjectedProfit          *float64 `json:"projectedProfit"`
	ActualProfit             *float64 `json:"actualProfit"`
	MonthlyRevenueEquivalent *float64 `json:"monthlyRevenueEquivalent"`
	TotalEmployees           *int     `json:"totalEmployees"`

	Version *int `json:"version" validate:"omitempty,gt=0"`
}
