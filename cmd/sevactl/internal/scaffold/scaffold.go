// Package scaffold generates a new guarded module and registers it in
// internal/app/modules.go.
package scaffold

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path"
	"regexp"
	"text/template"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/go/ast/astutil"
)

// ModulePath is the import path prefix of the application.
const ModulePath = "github.com/nfrund/sevahub"

const modulesFile = "internal/app/modules.go"

var validName = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// TemplateData feeds the module templates.
type TemplateData struct {
	Name       string
	PascalName string
}

// Generate writes internal/modules/<name>/{module.go,handler.go} under root
// and adds the module to NewModules.
func Generate(fs afero.Fs, root, name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("invalid module name %q: use lowercase letters and digits", name)
	}

	dir := path.Join(root, "internal", "modules", name)
	if exists, _ := afero.DirExists(fs, dir); exists {
		return fmt.Errorf("module %s already exists", name)
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create module directory: %w", err)
	}

	data := TemplateData{Name: name, PascalName: cases.Title(language.English).String(name)}
	if err := generateFile(fs, path.Join(dir, "module.go"), moduleTemplate, data); err != nil {
		return err
	}
	if err := generateFile(fs, path.Join(dir, "handler.go"), handlerTemplate, data); err != nil {
		return err
	}
	return RegisterModule(fs, path.Join(root, modulesFile), name)
}

func generateFile(fs afero.Fs, filename, tmpl string, data TemplateData) error {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}
	return afero.WriteFile(fs, filename, src, 0o644)
}

// RegisterModule imports the module package in modulesFile and prepends
//
//	<name>.New(<name>.Dependencies{Sessions: deps.Sessions})
//
// to the slice NewModules returns.
func RegisterModule(fs afero.Fs, filename, name string) error {
	src, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	astutil.AddImport(fset, node, ModulePath+"/internal/modules/"+name)

	var found bool
	ast.Inspect(node, func(n ast.Node) bool {
		fn, ok := n.(*ast.FuncDecl)
		if !ok || fn.Name.Name != "NewModules" {
			return true
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			ret, ok := n.(*ast.ReturnStmt)
			if !ok || len(ret.Results) == 0 {
				return true
			}
			list, ok := ret.Results[0].(*ast.CompositeLit)
			if !ok {
				return false
			}
			list.Elts = append([]ast.Expr{newModuleExpr(name)}, list.Elts...)
			found = true
			return false
		})
		return false
	})
	if !found {
		return fmt.Errorf("no NewModules return slice in %s", filename)
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, node); err != nil {
		return fmt.Errorf("failed to format AST: %w", err)
	}
	return afero.WriteFile(fs, filename, buf.Bytes(), 0o644)
}

func newModuleExpr(name string) ast.Expr {
	return &ast.CallExpr{
		Fun: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("New")},
		Args: []ast.Expr{
			&ast.CompositeLit{
				Type: &ast.SelectorExpr{X: ast.NewIdent(name), Sel: ast.NewIdent("Dependencies")},
				Elts: []ast.Expr{
					&ast.KeyValueExpr{
						Key:   ast.NewIdent("Sessions"),
						Value: &ast.SelectorExpr{X: ast.NewIdent("deps"), Sel: ast.NewIdent("Sessions")},
					},
				},
			},
		},
	}
}

const moduleTemplate = `package {{.Name}}

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/internal/module"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/samber/do/v2"
)

// Dependencies holds all the services that the module requires.
type Dependencies struct {
	Sessions *session.CookieStore
}

// Module serves the {{.Name}} pages under /{{.Name}}.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates a new instance of the module.
func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

// Name returns the module's unique identifier.
func (m *Module) Name() string {
	return "{{.Name}}"
}

// Boot mounts the module's routes behind the session gate.
func (m *Module) Boot(ctx context.Context, g *echo.Group, i do.Injector) error {
	g.Use(middleware.Guard(m.deps.Sessions, domain.RoleNone))
	g.GET("", NewHandler().Get)
	return nil
}
`

const handlerTemplate = `package {{.Name}}

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Handler manages the HTTP requests for the {{.Name}} module.
type Handler struct{}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Get renders the main page for the {{.Name}} module.
func (h *Handler) Get(c echo.Context) error {
	pageContent := g.Section(g.Class("card"), g.H1(cmp.Text("{{.PascalName}}")))
	finalComponent := layouts.Base("{{.PascalName}}", view.GetFlashData(c), layouts.Nav{Authenticated: true}, view.AdaptGomponentToTempl(pageContent))
	return c.Render(http.StatusOK, "", finalComponent)
}
`
