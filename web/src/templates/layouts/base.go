package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/sevahub/internal/view"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Nav describes the signed-in state shown in the header.
type Nav struct {
	Authenticated bool
	DashboardPath string
}

// Base wraps page content in the document shell with header, flashes and footer.
func Base(title string, flashes view.FlashData, nav Nav, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := cmp.Group([]cmp.Node{
			cmp.Raw("<!DOCTYPE html>"),
			g.HTML(
				g.Lang("en"),
				g.Head(
					g.Meta(g.Charset("utf-8")),
					g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
					g.TitleEl(cmp.Text(CalculateTitle(title))),
					g.Link(g.Rel("stylesheet"), g.Href("/static/css/app.css")),
					g.Script(g.Src(htmxSrc), g.Defer()),
				),
				g.Body(
					header(nav),
					flashBlock(flashes),
					g.Main(view.AdaptTemplToGomponent(ctx, content)),
					g.Footer(cmp.Text("Sevahub · connecting volunteers and NGOs")),
				),
			),
		})
		return doc.Render(w)
	})
}

func header(nav Nav) cmp.Node {
	return g.Header(
		g.Nav(
			g.A(g.Href("/"), g.Strong(cmp.Text("Sevahub"))),
			cmp.Text(" "),
			cmp.If(nav.Authenticated, cmp.Group([]cmp.Node{
				g.A(g.Href(nav.DashboardPath), cmp.Text("Dashboard")),
				cmp.Text(" "),
				g.A(g.Href("/logout"), cmp.Text("Log out")),
			})),
			cmp.If(!nav.Authenticated, g.A(g.Href("/login"), cmp.Text("Log in"))),
		),
	)
}

func flashBlock(flashes view.FlashData) cmp.Node {
	if flashes.Empty() {
		return nil
	}
	return g.Div(
		cmp.Map(flashes.Success, func(msg string) cmp.Node {
			return g.P(g.Class("flash-success"), cmp.Text(msg))
		}),
		cmp.Map(flashes.Error, func(msg string) cmp.Node {
			return g.P(g.Class("flash-error"), g.Role("alert"), cmp.Text(msg))
		}),
	)
}
