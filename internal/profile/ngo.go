package profile

import "github.com/nfrund/sevahub/internal/domain"

// NGO is the NGO dashboard's view of the signed-in organisation.
type NGO struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	City           string `json:"city"`
	RegistrationID string `json:"registrationId"`
	Verified       bool   `json:"verified"`
}

// MapNGO builds the view model from a raw principal. The organisation name
// is stored in the principal's first name.
func MapNGO(p *domain.Principal) NGO {
	return NGO{
		Name:           p.FirstName,
		Description:    p.Description,
		Category:       orDefault(p.Category, DefaultCategory),
		City:           orDefault(p.City, NotSpecified),
		RegistrationID: p.ID,
		Verified:       p.NGOVerified,
	}
}
