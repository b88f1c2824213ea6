package domain

// ApplicationStatus is the review state of a volunteer's application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Category groups opportunities for display purposes.
type Category string

const (
	CategoryEducation   Category = "education"
	CategoryEnvironment Category = "environment"
	CategoryHealth      Category = "health"
	CategoryCommunity   Category = "community"
)

// Application is an opportunity the current volunteer has applied to.
type Application struct {
	ID        int               `json:"id"`
	Title     string            `json:"title"`
	NGO       string            `json:"ngo"`
	Status    ApplicationStatus `json:"status"`
	AppliedOn string            `json:"appliedOn"`
	Category  Category          `json:"category"`
}

// Recommendation is an opportunity suggested to the current volunteer.
type Recommendation struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	NGO      string   `json:"ngo"`
	Location string   `json:"location"`
	Match    int      `json:"match"`
	Category Category `json:"category"`
}

// PostedOpportunity is an opportunity published by the current NGO.
type PostedOpportunity struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Applicants int    `json:"applicants"`
	Accepted   int    `json:"accepted"`
	Pending    int    `json:"pending"`
	Rejected   int    `json:"rejected"`
	PostedOn   string `json:"postedOn"`
}

// Applicant is a volunteer who applied to one of the current NGO's opportunities.
type Applicant struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Opportunity string            `json:"opportunity"`
	Skills      []string          `json:"skills"`
	Status      ApplicationStatus `json:"status"`
	AppliedOn   string            `json:"appliedOn"`
}
