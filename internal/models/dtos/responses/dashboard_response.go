package responses

import "time"

type DashboardStats struct {
	ActiveYouth             int64            `json:"activeYouth"`
	BusinessesByDistrict    map[string]int64 `json:"businessesByDistrict"`
	TotalBusinesses         int64            `json:"totalBusinesses"`
	ActiveMentors           int64            `json:"activeMentors"`
	ActiveMentorships       int64            `json:"activeMentorships"`
	ActiveMakerspaceLinks   int64            `json:"activeMakerspaceLinks"`
	AssessmentsByStatus     map[string]int64 `json:"assessmentsByStatus"`
	AverageFeasibility      *float64         `json:"averageFeasibility"`
	VerifiedTrackingRecords int64            `json:"verifiedTrackingRecords"`
	PendingTrackingRecords  int64            `json:"pendingTrackingRecords"`
	GeneratedAt             time.Time        `json:"generatedAt"`
}

type ResourceCostSummary struct {
	ResourceID      uint    `json:"resourceId"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	HistoryTotal    float64 `json:"historyTotal"`
	TotalCost       float64 `json:"totalCost"`
	Entries         int     `json:"entries"`
}
