// Package catalog provides the reference data shown next to the profile on
// each dashboard: applications, recommendations, posted opportunities and
// applicants.
package catalog

import (
	"context"

	"github.com/nfrund/sevahub/internal/domain"
)

// Source produces dashboard reference data. Implementations must be safe
// for concurrent use.
type Source interface {
	Applications(ctx context.Context) ([]domain.Application, error)
	Recommendations(ctx context.Context) ([]domain.Recommendation, error)
	PostedOpportunities(ctx context.Context) ([]domain.PostedOpportunity, error)
	Applicants(ctx context.Context) ([]domain.Applicant, error)
}

// Data is the full set of reference records, also the JSON file layout.
type Data struct {
	Applications        []domain.Application       `json:"applications"`
	Recommendations     []domain.Recommendation    `json:"recommendations"`
	PostedOpportunities []domain.PostedOpportunity `json:"postedOpportunities"`
	Applicants          []domain.Applicant         `json:"applicants"`
}

// Summary holds the NGO dashboard's headline numbers.
type Summary struct {
	Posted     int
	Applicants int
	Accepted   int
	Pending    int
}

// Summarize totals the applicant counts across posted opportunities.
func Summarize(posted []domain.PostedOpportunity) Summary {
	s := Summary{Posted: len(posted)}
	for _, p := range posted {
		s.Applicants += p.Applicants
		s.Accepted += p.Accepted
		s.Pending += p.Pending
	}
	return s
}
