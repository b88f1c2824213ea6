package catalog

import (
	"context"
	"slices"

	"github.com/nfrund/sevahub/internal/domain"
)

var bundled = Data{
	Applications: []domain.Application{
		{ID: 1, Title: "Teaching English to Underprivileged Children", NGO: "Pratham Education Foundation", Status: domain.StatusPending, AppliedOn: "2025-01-28", Category: domain.CategoryEducation},
		{ID: 2, Title: "Tree Plantation Drive", NGO: "Green Earth Initiative", Status: domain.StatusAccepted, AppliedOn: "2025-01-20", Category: domain.CategoryEnvironment},
		{ID: 3, Title: "Health Camp Assistant", NGO: "Rural Health Mission", Status: domain.StatusRejected, AppliedOn: "2025-01-15", Category: domain.CategoryHealth},
	},
	Recommendations: []domain.Recommendation{
		{ID: 4, Title: "Digital Literacy Program", NGO: "Digital India Foundation", Location: "Mumbai", Match: 95, Category: domain.CategoryEducation},
		{ID: 5, Title: "Beach Cleanup Drive", NGO: "Clean Shores Foundation", Location: "Mumbai", Match: 88, Category: domain.CategoryEnvironment},
	},
	PostedOpportunities: []domain.PostedOpportunity{
		{ID: 1, Title: "Teaching English to Underprivileged Children", Applicants: 12, Accepted: 3, Pending: 7, Rejected: 2, PostedOn: "2025-01-20"},
		{ID: 2, Title: "Weekend Tutoring Program", Applicants: 8, Accepted: 2, Pending: 5, Rejected: 1, PostedOn: "2025-01-25"},
		{ID: 3, Title: "Digital Literacy Camp", Applicants: 5, Accepted: 0, Pending: 5, Rejected: 0, PostedOn: "2025-02-01"},
	},
	Applicants: []domain.Applicant{
		{ID: 1, Name: "Rahul Verma", Opportunity: "Teaching English", Skills: []string{"Teaching", "Communication"}, Status: domain.StatusPending, AppliedOn: "2025-02-03"},
		{ID: 2, Name: "Sneha Patel", Opportunity: "Weekend Tutoring", Skills: []string{"Tutoring", "Math"}, Status: domain.StatusPending, AppliedOn: "2025-02-02"},
		{ID: 3, Name: "Amit Kumar", Opportunity: "Digital Literacy", Skills: []string{"Tech", "Training"}, Status: domain.StatusPending, AppliedOn: "2025-02-01"},
	},
}

// StaticSource serves a fixed Data set. Every call returns fresh copies so
// callers cannot mutate the shared literals.
type StaticSource struct {
	data Data
}

// Static returns a source backed by the bundled placeholder records.
func Static() *StaticSource {
	return &StaticSource{data: bundled}
}

// NewStaticSource serves d.
func NewStaticSource(d Data) *StaticSource {
	return &StaticSource{data: d}
}

func (s *StaticSource) Applications(context.Context) ([]domain.Application, error) {
	return slices.Clone(s.data.Applications), nil
}

func (s *StaticSource) Recommendations(context.Context) ([]domain.Recommendation, error) {
	return slices.Clone(s.data.Recommendations), nil
}

func (s *StaticSource) PostedOpportunities(context.Context) ([]domain.PostedOpportunity, error) {
	return slices.Clone(s.data.PostedOpportunities), nil
}

func (s *StaticSource) Applicants(context.Context) ([]domain.Applicant, error) {
	out := slices.Clone(s.data.Applicants)
	for i := range out {
		out[i].Skills = slices.Clone(out[i].Skills)
	}
	return out, nil
}
