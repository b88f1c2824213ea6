package handlers

import "github.com/nfrund/sevahub/internal/audit"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string         `json:"status"`
	Outcomes map[string]int `json:"outcomes"`
}

// NewHealthResponse reports the service as up along with the bootstrap
// outcome totals seen so far.
func NewHealthResponse(recorder *audit.Recorder) *HealthResponse {
	resp := &HealthResponse{Status: "ok", Outcomes: map[string]int{}}
	if recorder != nil {
		resp.Outcomes = recorder.Counts()
	}
	return resp
}
