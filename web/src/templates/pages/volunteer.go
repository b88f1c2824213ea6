package pages

import (
	"strconv"
	"strings"

	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/profile"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// VolunteerDashboardData is everything the volunteer dashboard renders.
type VolunteerDashboardData struct {
	Profile         profile.Volunteer
	Applications    []domain.Application
	Recommendations []domain.Recommendation
}

// VolunteerDashboard renders the volunteer's landing page.
func VolunteerDashboard(data VolunteerDashboardData) cmp.Node {
	return g.Div(
		g.Section(
			g.H1(cmp.Textf("Welcome back, %s!", data.Profile.FirstName())),
			g.P(cmp.Text("Here's what's happening with your volunteering journey")),
		),
		g.Section(
			g.Class("card"),
			g.H2(cmp.Text("Profile Completion")),
			g.Span(cmp.Textf("%d%%", data.Profile.ProfileCompletion)),
			g.Div(g.Class("progress"),
				g.Div(g.Style("width: "+strconv.Itoa(data.Profile.ProfileCompletion)+"%")),
			),
		),
		g.Section(
			g.Class("card"),
			g.H2(cmp.Text("Applied Opportunities")),
			g.Ul(cmp.Map(data.Applications, applicationItem)),
		),
		g.Section(
			g.Class("card"),
			g.H2(cmp.Text("Recommended for You")),
			g.Ul(cmp.Map(data.Recommendations, recommendationItem)),
		),
		VolunteerProfileCard(data.Profile),
	)
}

// VolunteerProfileCard is the profile summary. It can be re-fetched on its
// own through htmx.
func VolunteerProfileCard(p profile.Volunteer) cmp.Node {
	return g.Section(
		g.ID("profile-card"), g.Class("card"),
		g.H2(cmp.Text(p.Name)),
		g.P(cmp.Text(p.Email)),
		g.P(cmp.Text("City: "+p.City)),
		g.P(cmp.Text("Availability: "+p.Availability)),
		tagList("Skills", p.Skills),
		tagList("Interests", p.Interests),
		g.Button(
			hx.Get("/volunteer/dashboard/profile"),
			hx.Target("#profile-card"),
			hx.Swap("outerHTML"),
			cmp.Text("Refresh"),
		),
	)
}

func applicationItem(a domain.Application) cmp.Node {
	return g.Li(
		g.H3(cmp.Text(a.Title)),
		g.P(cmp.Text(a.NGO+" · Applied "+a.AppliedOn)),
		statusBadge(a.Status),
	)
}

func recommendationItem(r domain.Recommendation) cmp.Node {
	return g.Li(
		g.H3(cmp.Text(r.Title)),
		g.P(cmp.Text(r.NGO+" · "+r.Location)),
		g.Span(g.Class("badge"), cmp.Textf("%d%% match", r.Match)),
	)
}

func statusBadge(s domain.ApplicationStatus) cmp.Node {
	return g.Span(g.Class("badge status-"+string(s)), cmp.Text(layouts.Label(string(s))))
}

func tagList(title string, tags []string) cmp.Node {
	if len(tags) == 0 {
		return g.P(cmp.Text(title + ": none yet"))
	}
	return g.P(cmp.Text(title + ": " + strings.Join(tags, ", ")))
}
