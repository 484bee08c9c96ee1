package responses

type TrackingSummary struct {
	BusinessID        uint    `json:"businessId"`
	Records           int64   `json:"records"`
	VerifiedRecords   int64   `json:"verifiedRecords"`
	UnverifiedRecords int64   `json:"unverifiedRecords"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalExpenditure  float64 `json:"totalExpenditure"`
	TotalProfit       float64 `json:"totalProfit"`
	LatestEmployees   int     `json:"latestEmployees"`
}
