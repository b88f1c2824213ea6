package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// LoginData pre-fills the login form after a failed attempt.
type LoginData struct {
	Email string
}

// Login renders the sign-in form.
func Login(data LoginData) cmp.Node {
	return g.Section(
		g.Class("card"),
		g.H1(cmp.Text("Log in")),
		g.Form(
			g.Method("post"), g.Action("/login"),
			g.Label(g.For("email"), cmp.Text("Email")),
			g.Input(g.Type("email"), g.Name("email"), g.ID("email"), g.Value(data.Email), g.Required()),
			g.Label(g.For("password"), cmp.Text("Password")),
			g.Input(g.Type("password"), g.Name("password"), g.ID("password"), g.Required()),
			g.Button(g.Type("submit"), cmp.Text("Log in")),
		),
	)
}
