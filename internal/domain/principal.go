package domain

// Principal is the raw profile record returned by GET /api/auth/me.
// NGO accounts store the organisation name in FirstName.
type Principal struct {
	ID           string   `json:"_id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName,omitempty"`
	Email        string   `json:"email,omitempty"`
	Role         Role     `json:"role,omitempty"`
	City         string   `json:"city,omitempty"`
	Availability string   `json:"availability,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	NGOVerified  bool     `json:"ngoVerified,omitempty"`
}
