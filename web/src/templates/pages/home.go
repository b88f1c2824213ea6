package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Home is the public landing page.
func Home(isAuthenticated bool, dashboardPath string) cmp.Node {
	return g.Section(
		g.Class("card"),
		g.H1(cmp.Text("Find a cause. Lend a hand.")),
		g.P(cmp.Text("Sevahub matches volunteers with NGOs that need their skills.")),
		cmp.If(isAuthenticated, g.A(g.Href(dashboardPath), cmp.Text("Go to your dashboard"))),
		cmp.If(!isAuthenticated, g.A(g.Href("/login"), cmp.Text("Log in to get started"))),
	)
}
