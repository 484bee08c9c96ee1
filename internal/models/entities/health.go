package entities

import "time"

// DependencyHealth is the probe result for one backing service.
type DependencyHealth struct {
	State     string `json:"state"`
	Detail    string `json:"detail,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
}

type HealthReport struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
	UpSince      time.Time                   `json:"upSince"`
	Uptime       string                      `json:"uptime"`
}

// Healthy is true when every dependency reported "ok".
func (r HealthReport) Healthy() bool {
	for _, d := range r.Dependencies {
		if d.State != "ok" {
			return false
		}
	}
	return true
}
