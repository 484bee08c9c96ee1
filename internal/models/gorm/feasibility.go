package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// FeasibilityAssessment is a scored evaluation of a business across five categories.
type FeasibilityAssessment struct {
	ID             uint       `gorm:"column:id;primaryKey" json:"id"`
	BusinessID     uint       `gorm:"column:business_id;index;not null" json:"businessId"`
	AssessedBy     *uint      `gorm:"column:assessed_by" json:"assessedBy,omitempty"`
	AssessmentDate *time.Time `gorm:"column:assessment_date" json:"assessmentDate,omitempty"`

	FeasibilityScores `gorm:"embedded"`

	// Aggregates, always recomputed from FeasibilityScores
	MarketScore                  *float64 `gorm:"column:market_score" json:"marketScore"`
	FinancialScore               *float64 `gorm:"column:financial_score" json:"financialScore"`
	OperationalScore             *float64 `gorm:"column:operational_score" json:"operationalScore"`
	TeamScore                    *float64 `gorm:"column:team_score" json:"teamScore"`
	DigitalReadinessScore        *float64 `gorm:"column:digital_readiness_score" json:"digitalReadinessScore"`
	AverageScore                 *float64 `gorm:"column:average_score" json:"averageScore"`
	OverallFeasibilityPercentage *float64 `gorm:"column:overall_feasibility_percentage" json:"overallFeasibilityPercentage"`
	FeasibilityRating            string   `gorm:"column:feasibility_rating;size:40" json:"feasibilityRating,omitempty"`

	FeasibilityNarrative `gorm:"embedded"`

	Status         constants.FeasibilityStatus `gorm:"column:status;size:20;not null;index" json:"status"`
	SubmittedAt    *time.Time                  `gorm:"column:submitted_at" json:"submittedAt,omitempty"`
	ReviewedBy     *uint                       `gorm:"column:reviewed_by" json:"reviewedBy,omitempty"`
	ReviewDate     *time.Time                  `gorm:"column:review_date" json:"reviewDate,omitempty"`
	ReviewComments string                      `gorm:"column:review_comments" json:"reviewComments,omitempty"`
	Version        int                         `gorm:"column:version;not null;default:1" json:"version"`
	CreatedAt      time.Time                   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FeasibilityAssessment) TableName() string {
	return "feasibility_assessments"
}

// FeasibilityScores holds the 1..5 sub-scores; nil means not yet scored.
type FeasibilityScores struct {
	// Market
	MarketDemand          *int `gorm:"column:market_demand" json:"marketDemand"`
	CompetitionLevel      *int `gorm:"column:competition_level" json:"competitionLevel"`
	MarketSize            *int `gorm:"column:market_size" json:"marketSize"`
	CustomerAccessibility *int `gorm:"column:customer_accessibility" json:"customerAccessibility"`
	PricingStrategy       *int `gorm:"column:pricing_strategy" json:"pricingStrategy"`

	// Financial
	StartupCosts        *int `gorm:"column:startup_costs" json:"startupCosts"`
	RevenueProjection   *int `gorm:"column:revenue_projection" json:"revenueProjection"`
	FundingAvailability *int `gorm:"column:funding_availability" json:"fundingAvailability"`
	OperatingCosts      *int `gorm:"column:operating_costs" json:"operatingCosts"`
	BreakEvenAnalysis   *int `gorm:"column:break_even_analysis" json:"breakEvenAnalysis"`

	// Operational
	LocationSuitability    *int `gorm:"column:location_suitability" json:"locationSuitability"`
	ResourceAvailability   *int `gorm:"column:resource_availability" json:"resourceAvailability"`
	SupplyChain            *int `gorm:"column:supply_chain" json:"supplyChain"`
	TechnologyRequirements *int `gorm:"column:technology_requirements" json:"technologyRequirements"`
	RegulatoryCompliance   *int `gorm:"column:regulatory_compliance" json:"regulatoryCompliance"`

	// Team
	TeamExperience     *int `gorm:"column:team_experience" json:"teamExperience"`
	ManagementCapacity *int `gorm:"column:management_capacity" json:"managementCapacity"`
	CommitmentLevel    *int `gorm:"column:commitment_level" json:"commitmentLevel"`
	SkillsAvailability *int `gorm:"column:skills_availability" json:"skillsAvailability"`
	TrainingNeeds      *int `gorm:"column:training_needs" json:"trainingNeeds"`

	// Digital readiness
	DigitalLiteracy        *int `gorm:"column:digital_literacy" json:"digitalLiteracy"`
	DigitalPayments        *int `gorm:"column:digital_payments" json:"digitalPayments"`
	OnlinePresence         *int `gorm:"column:online_presence" json:"onlinePresence"`
	DataManagement         *int `gorm:"column:data_management" json:"dataManagement"`
	CybersecurityAwareness *int `gorm:"column:cybersecurity_awareness" json:"cybersecurityAwareness"`
}

// FeasibilityNarrative is the free-text part of an assessment.
type FeasibilityNarrative struct {
	RiskFactors     string `gorm:"column:risk_factors" json:"riskFactors,omitempty"`
	Opportunities   string `gorm:"column:opportunities" json:"opportunities,omitempty"`
	Recommendations string `gorm:"column:recommendations" json:"recommendations,omitempty"`
	Notes           string `gorm:"column:notes" json:"notes,omitempty"`
}

type ScoreCategory string

const (
	CategoryMarket           ScoreCategory = "market"
	CategoryFinancial        ScoreCategory = "financial"
	CategoryOperational      ScoreCategory = "operational"
	CategoryTeam             ScoreCategory = "team"
	CategoryDigitalReadiness ScoreCategory = "digitalReadiness"
)

var ScoreCategories = []ScoreCategory{
	CategoryMarket, CategoryFinancial, CategoryOperational, CategoryTeam, CategoryDigitalReadiness,
}

// ScoreField describes one sub-score and how to reach it on FeasibilityScores.
type ScoreField struct {
	Key      string
	Category ScoreCategory
	Required bool
	Ref      func(s *FeasibilityScores) **int
}

// ScoreCatalog lists every sub-score in form order.
var ScoreCatalog = []ScoreField{
	{"marketDemand", CategoryMarket, true, func(s *FeasibilityScores) **int { return &s.MarketDemand }},
	{"competitionLevel", CategoryMarket, true, func(s *FeasibilityScores) **int { return &s.CompetitionLevel }},
	{"marketSize", CategoryMarket, true, func(s *FeasibilityScores) **int { return &s.MarketSize }},
	{"customerAccessibility", CategoryMarket, false, func(s *FeasibilityScores) **int { return &s.CustomerAccessibility }},
	{"pricingStrategy", CategoryMarket, false, func(s *FeasibilityScores) **int { return &s.PricingStrategy }},

	{"startupCosts", CategoryFinancial, true, func(s *FeasibilityScores) **int { return &s.StartupCosts }},
	{"revenueProjection", CategoryFinancial, true, func(s *FeasibilityScores) **int { return &s.RevenueProjection }},
	{"fundingAvailability", CategoryFinancial, true, func(s *FeasibilityScores) **int { return &s.FundingAvailability }},
	{"operatingCosts", CategoryFinancial, false, func(s *FeasibilityScores) **int { return &s.OperatingCosts }},
	{"breakEvenAnalysis", CategoryFinancial, false, func(s *FeasibilityScores) **int { return &s.BreakEvenAnalysis }},

	{"locationSuitability", CategoryOperational, true, func(s *FeasibilityScores) **int { return &s.LocationSuitability }},
	{"resourceAvailability", CategoryOperational, true, func(s *FeasibilityScores) **int { return &s.ResourceAvailability }},
	{"supplyChain", CategoryOperational, true, func(s *FeasibilityScores) **int { return &s.SupplyChain }},
	{"technologyRequirements", CategoryOperational, false, func(s *FeasibilityScores) **int { return &s.TechnologyRequirements }},
	{"regulatoryCompliance", CategoryOperational, false, func(s *FeasibilityScores) **int { return &s.RegulatoryCompliance }},

	{"teamExperience", CategoryTeam, true, func(s *FeasibilityScores) **int { return &s.TeamExperience }},
	{"managementCapacity", CategoryTeam, true, func(s *FeasibilityScores) **int { return &s.ManagementCapacity }},
	{"commitmentLevel", CategoryTeam, true, func(s *FeasibilityScores) **int { return &s.CommitmentLevel }},
	{"skillsAvailability", CategoryTeam, false, func(s *FeasibilityScores) **int { return &s.SkillsAvailability }},
	{"trainingNeeds", CategoryTeam, false, func(s *FeasibilityScores) **int { return &s.TrainingNeeds }},

	{"digitalLiteracy", CategoryDigitalReadiness, true, func(s *FeasibilityScores) **int { return &s.DigitalLiteracy }},
	{"digitalPayments", CategoryDigitalReadiness, true, func(s *FeasibilityScores) **int { return &s.DigitalPayments }},
	{"onlinePresence", CategoryDigitalReadiness, true, func(s *FeasibilityScores) **int { return &s.OnlinePresence }},
	{"dataManagement", CategoryDigitalReadiness, false, func(s *FeasibilityScores) **int { return &s.DataManagement }},
	{"cybersecurityAwareness", CategoryDigitalReadiness, false, func(s *FeasibilityScores) **int { return &s.CybersecurityAwareness }},
}
