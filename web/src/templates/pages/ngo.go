package pages

import (
	"strconv"

	"github.com/nfrund/sevahub/internal/catalog"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/profile"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// NGODashboardData is everything the NGO dashboard renders.
type NGODashboardData struct {
	Profile    profile.NGO
	Posted     []domain.PostedOpportunity
	Applicants []domain.Applicant
	Summary    catalog.Summary
}

// NGODashboard renders the organisation's landing page.
func NGODashboard(data NGODashboardData) cmp.Node {
	return g.Div(
		g.Section(
			g.H1(cmp.Text("NGO Dashboard")),
			g.P(cmp.Text("Manage your opportunities and connect with volunteers")),
		),
		g.Section(
			g.Class("stats"),
			statCard("Posted Opportunities", data.Summary.Posted),
			statCard("Total Applicants", data.Summary.Applicants),
			statCard("Accepted", data.Summary.Accepted),
			statCard("Pending Review", data.Summary.Pending),
		),
		sectionCard("Your Opportunities", "/ngo/opportunities", "View all", g.Ul(cmp.Map(data.Posted, postedItem))),
		sectionCard("Recent Applicants", "/ngo/applicants", "View all", g.Ul(cmp.Map(data.Applicants, applicantItem))),
		NGOProfileCard(data.Profile),
	)
}

// NGOProfileCard is the organisation summary, refreshable through htmx.
func NGOProfileCard(p profile.NGO) cmp.Node {
	return g.Section(
		g.ID("profile-card"), g.Class("card"),
		g.H2(cmp.Text(p.Name)),
		cmp.If(p.Verified, g.Span(g.Class("badge status-accepted"), cmp.Text("Verified"))),
		g.P(cmp.Text(p.Description)),
		g.P(cmp.Text("Category: "+p.Category)),
		g.P(cmp.Text("City: "+p.City)),
		g.P(cmp.Text("Registration ID: "+p.RegistrationID)),
		g.Button(
			hx.Get("/ngo/dashboard/profile"),
			hx.Target("#profile-card"),
			hx.Swap("outerHTML"),
			cmp.Text("Refresh"),
		),
	)
}

// OpportunityList is the full list behind "View all" on posted opportunities.
func OpportunityList(posted []domain.PostedOpportunity) cmp.Node {
	return sectionCard("Your Opportunities", "/ngo/dashboard", "Back to dashboard", g.Ul(cmp.Map(posted, postedItem)))
}

// ApplicantList is the full list behind "View all" on applicants.
func ApplicantList(applicants []domain.Applicant) cmp.Node {
	return sectionCard("Applicants", "/ngo/dashboard", "Back to dashboard", g.Ul(cmp.Map(applicants, applicantItem)))
}

func statCard(label string, value int) cmp.Node {
	return g.Div(g.Class("card"),
		g.P(cmp.Text(label)),
		g.Strong(cmp.Text(strconv.Itoa(value))),
	)
}

func sectionCard(title, link, linkText string, children ...cmp.Node) cmp.Node {
	return g.Section(
		g.Class("card"),
		g.H2(cmp.Text(title)),
		g.A(g.Href(link), cmp.Text(linkText)),
		cmp.Group(children),
	)
}

func postedItem(p domain.PostedOpportunity) cmp.Node {
	return g.Li(
		g.H3(cmp.Text(p.Title)),
		g.P(cmp.Textf("Posted %s · %d applicants", p.PostedOn, p.Applicants)),
		g.Span(g.Class("badge status-accepted"), cmp.Textf("%d accepted", p.Accepted)),
		g.Span(g.Class("badge status-pending"), cmp.Textf("%d pending", p.Pending)),
		g.Span(g.Class("badge status-rejected"), cmp.Textf("%d rejected", p.Rejected)),
	)
}

func applicantItem(a domain.Applicant) cmp.Node {
	return g.Li(
		g.Span(g.Class("badge"), cmp.Text(profile.Initials(a.Name))),
		g.H3(cmp.Text(a.Name)),
		g.P(cmp.Text("Applied for: "+a.Opportunity)),
		statusBadge(a.Status),
	)
}
