package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/nfrund/sevahub/internal/catalog"
	"github.com/nfrund/sevahub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestVolunteerDashboard(t *testing.T) {
	src := catalog.Static()
	apps, _ := src.Applications(context.Background())
	recs, _ := src.Recommendations(context.Background())

	html := render(t, VolunteerDashboard(VolunteerDashboardData{
		Profile: profile.Volunteer{
			Name: "Asha Rao", Email: "a@x.org", City: "Not specified",
			Availability: "Weekends", Skills: []string{"Teaching"}, ProfileCompletion: 66,
		},
		Applications:    apps,
		Recommendations: recs,
	}))

	assert.Contains(t, html, "Welcome back, Asha!")
	assert.Contains(t, html, "66%")
	assert.Contains(t, html, "Tree Plantation Drive")
	assert.Contains(t, html, `class="badge status-accepted"`)
	assert.Contains(t, html, ">Accepted<")
	assert.Contains(t, html, "95% match")
	assert.Contains(t, html, "City: Not specified")
	assert.Contains(t, html, "Skills: Teaching")
	assert.Contains(t, html, "Interests: none yet")
	assert.Contains(t, html, `hx-get="/volunteer/dashboard/profile"`)
}

func TestNGODashboard(t *testing.T) {
	src := catalog.Static()
	posted, _ := src.PostedOpportunities(context.Background())
	applicants, _ := src.Applicants(context.Background())

	html := render(t, NGODashboard(NGODashboardData{
		Profile:    profile.NGO{Name: "Seva Trust", Category: "NGO", City: "Not specified", RegistrationID: "abc123", Verified: true},
		Posted:     posted,
		Applicants: applicants,
		Summary:    catalog.Summarize(posted),
	}))

	assert.Contains(t, html, "NGO Dashboard")
	assert.Contains(t, html, "<strong>25</strong>")
	assert.Contains(t, html, `href="/ngo/opportunities"`)
	assert.Contains(t, html, `href="/ngo/applicants"`)
	assert.Contains(t, html, "Registration ID: abc123")
	assert.Contains(t, html, "Verified")
	assert.Contains(t, html, ">RV<")
	assert.Contains(t, html, "Applied for: Weekend Tutoring")
}

func TestNGOProfileCard_Unverified(t *testing.T) {
	html := render(t, NGOProfileCard(profile.NGO{Name: "Green Earth"}))
	assert.NotContains(t, html, "Verified")
}

func TestLoginAndHome(t *testing.T) {
	html := render(t, Login(LoginData{Email: "a@x.org"}))
	assert.Contains(t, html, `action="/login"`)
	assert.Contains(t, html, `value="a@x.org"`)

	assert.Contains(t, render(t, Home(true, "/ngo/dashboard")), `href="/ngo/dashboard"`)
	assert.Contains(t, render(t, Home(false, "/")), `href="/login"`)
}
