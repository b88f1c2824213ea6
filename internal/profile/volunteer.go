package profile

import (
	"strings"

	"github.com/nfrund/sevahub/internal/domain"
)

// Volunteer is the volunteer dashboard's view of the signed-in principal.
type Volunteer struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	City              string   `json:"city"`
	Availability      string   `json:"availability"`
	Skills            []string `json:"skills"`
	Interests         []string `json:"interests"`
	ProfileCompletion int      `json:"profileCompletion"`
}

// FirstName is the first word of the display name, used in the greeting.
func (v Volunteer) FirstName() string {
	if fields := strings.Fields(v.Name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// MapVolunteer builds the view model from a raw principal.
func MapVolunteer(p *domain.Principal) Volunteer {
	return Volunteer{
		Name:              strings.TrimSpace(p.FirstName + " " + p.LastName),
		Email:             p.Email,
		City:              orDefault(p.City, NotSpecified),
		Availability:      orDefault(p.Availability, NotSpecified),
		Skills:            nonNil(p.Skills),
		Interests:         nonNil(p.Interests),
		ProfileCompletion: completion(p),
	}
}

// completion is the share of profile facts the volunteer has filled in,
// rounded down to a whole percent.
func completion(p *domain.Principal) int {
	facts := []bool{
		strings.TrimSpace(p.FirstName+p.LastName) != "",
		p.Email != "",
		strings.TrimSpace(p.City) != "",
		strings.TrimSpace(p.Availability) != "",
		len(p.Skills) > 0,
		len(p.Interests) > 0,
	}

	filled := 0
	for _, ok := range facts {
		if ok {
			filled++
		}
	}
	return filled * 100 / len(facts)
}
