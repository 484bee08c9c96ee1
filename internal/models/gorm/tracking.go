package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// BusinessTracking is a periodic performance snapshot. One row per
// (business, period, period start); verified rows are read-only.
type BusinessTracking struct {
	ID             uint                     `gorm:"column:id;primaryKey" json:"id"`
	BusinessID     uint                     `gorm:"column:business_id;not null;uniqueIndex:idx_tracking_business_period,priority:1" json:"businessId"`
	TrackingPeriod constants.TrackingPeriod `gorm:"column:tracking_period;size:20;not null;uniqueIndex:idx_tracking_business_period,priority:2" json:"trackingPeriod"`
	PeriodStart    time.Time                `gorm:"column:period_start;not null;uniqueIndex:idx_tracking_business_period,priority:3" json:"periodStart"`
	PeriodEnd      *time.Time               `gorm:"column:period_end" json:"periodEnd,omitempty"`

	TrackingMetrics `gorm:"embedded"`

	// Derived server-side
	ProjectedProfit          float64 `gorm:"column:projected_profit" json:"projectedProfit"`
	ActualProfit             float64 `gorm:"column:actual_profit" json:"actualProfit"`
	MonthlyRevenueEquivalent float64 `gorm:"column:monthly_revenue_equivalent" json:"monthlyRevenueEquivalent"`
	TotalEmployees           int     `gorm:"column:total_employees" json:"totalEmployees"`

	RecordedBy       *uint      `gorm:"column:recorded_by" json:"recordedBy,omitempty"`
	IsVerified       bool       `gorm:"column:is_verified;default:false;index" json:"isVerified"`
	VerifiedBy       *uint      `gorm:"column:verified_by" json:"verifiedBy,omitempty"`
	VerificationDate *time.Time `gorm:"column:verification_date" json:"verificationDate,omitempty"`
	Version          int        `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (BusinessTracking) TableName() string {
	return "business_trackings"
}

// TrackingMetrics are the caller-supplied measurements of one period.
type TrackingMetrics struct {
	ProjectedRevenue         float64    `gorm:"column:projected_revenue" json:"projectedRevenue"`
	ActualRevenue            float64    `gorm:"column:actual_revenue" json:"actualRevenue"`
	ProjectedExpenditure     float64    `gorm:"column:projected_expenditure" json:"projectedExpenditure"`
	ActualExpenditure        float64    `gorm:"column:actual_expenditure" json:"actualExpenditure"`
	PermanentMaleEmployees   int        `gorm:"column:permanent_male_employees" json:"permanentMaleEmployees"`
	PermanentFemaleEmployees int        `gorm:"column:permanent_female_employees" json:"permanentFemaleEmployees"`
	TemporaryMaleEmployees   int        `gorm:"column:temporary_male_employees" json:"temporaryMaleEmployees"`
	TemporaryFemaleEmployees int        `gorm:"column:temporary_female_employees" json:"temporaryFemaleEmployees"`
	KeyDecisions             StringList `gorm:"column:key_decisions" json:"keyDecisions"`
	LessonsLearned           StringList `gorm:"column:lessons_learned" json:"lessonsLearned"`
	NextSteps                StringList `gorm:"column:next_steps" json:"nextSteps"`
	Challenges               StringList `gorm:"column:challenges" json:"challenges"`
	Notes                    string     `gorm:"column:notes" json:"notes,omitempty"`
}
