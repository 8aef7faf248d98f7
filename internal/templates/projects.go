package templates

// Shared files every generated project starts from.

const goModFile = `module {{.ModulePath}}

go 1.23

require github.com/sitewinder-dev/sitewinder v0.1.0
`

const configFile = `name: {{.ProjectName}}
site:
  title: {{.ProjectName}}
  outlet: "#app"
`

const gitignoreFile = `dist/
.sitewinder/
`

const readmeFile = "# {{.ProjectName}}\n\n" +
	"{{.Description}}\n\n" +
	"## Development\n\n" +
	"```bash\n" +
	"go run .        # prerender public/index.html\n" +
	"sitewinder dev  # serve with hot reload\n" +
	"```\n\n" +
	"## Production\n\n" +
	"```bash\n" +
	"sitewinder build\n" +
	"sitewinder deploy\n" +
	"```\n"

const baseCSS = `body {
  font-family: system-ui, sans-serif;
  margin: 0;
  padding: 2rem;
  color: #1a1a2e;
}
`

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A single static page",
		Files: map[string]string{
			"go.mod":             goModFile,
			"sitewinder.yaml":    configFile,
			".gitignore":         gitignoreFile,
			"README.md":          readmeFile,
			"public/css/app.css": baseCSS,
			"main.go": `package main

import (
	"log"
	"os"

	"github.com/sitewinder-dev/sitewinder"
	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
)

// App is the root component.
type App struct {
	component.Core
}

func (a *App) Template() *markup.Node {
	return markup.Main(
		markup.H1(markup.Text("{{.ProjectName}}")),
		markup.P(markup.Text("{{.Description}}")),
	)
}

func main() {
	win := sitewinder.NewWindow()
	outlet := sitewinder.Outlet(win, "app")
	if _, err := sitewinder.Bootstrap(&App{}, win, outlet); err != nil {
		log.Fatal(err)
	}

	page := sitewinder.RenderPage(win, sitewinder.Page{
		Title:       "{{.ProjectName}}",
		Stylesheets: []string{"/css/app.css"},
	})
	if err := os.WriteFile("public/index.html", []byte(page), 0o644); err != nil {
		log.Fatal(err)
	}
}
`,
		},
	}
}

func counterTemplate() *Template {
	return &Template{
		Name:        "counter",
		Description: "A page with a reactive counter component",
		Files: map[string]string{
			"go.mod":          goModFile,
			"sitewinder.yaml": configFile,
			".gitignore":      gitignoreFile,
			"README.md":       readmeFile,
			"public/css/app.css": baseCSS + `
.counter button {
  font-size: 1.25rem;
  padding: 0.25rem 1rem;
}
`,
			"main.go": `package main

import (
	"log"
	"os"

	"github.com/sitewinder-dev/sitewinder"
	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/dom"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/reactive"
)

// Counter shows a count that changes when its buttons are clicked.
type Counter struct {
	component.Core
	count *reactive.Signal[int]
}

func NewCounter() *Counter {
	return &Counter{count: reactive.NewSignal(0)}
}

func (c *Counter) Template() *markup.Node {
	return markup.Div(markup.Class("counter"),
		markup.H1(markup.Text("{{.ProjectName}}")),
		markup.P(markup.Textf("Count: %d", c.count.Get())),
		c.On(markup.Button(markup.Text("+1")), "click", func(dom.Event) {
			c.count.Update(func(n int) int { return n + 1 })
		}),
		c.On(markup.Button(markup.Text("reset")), "click", func(dom.Event) {
			c.count.Set(0)
		}),
	)
}

func main() {
	win := sitewinder.NewWindow()
	outlet := sitewinder.Outlet(win, "app")
	if _, err := sitewinder.Bootstrap(NewCounter(), win, outlet); err != nil {
		log.Fatal(err)
	}

	page := sitewinder.RenderPage(win, sitewinder.Page{
		Title:       "{{.ProjectName}}",
		Stylesheets: []string{"/css/app.css"},
	})
	if err := os.WriteFile("public/index.html", []byte(page), 0o644); err != nil {
		log.Fatal(err)
	}
}
`,
		},
	}
}

func routerTemplate() *Template {
	return &Template{
		Name:        "router",
		Description: "A multi-page site driven by the hash router",
		Files: map[string]string{
			"go.mod":          goModFile,
			"sitewinder.yaml": configFile,
			".gitignore":      gitignoreFile,
			"README.md":       readmeFile,
			"public/css/app.css": baseCSS + `
nav a {
  margin-right: 1rem;
}
`,
			"main.go": `package main

import (
	"log"
	"os"

	"github.com/sitewinder-dev/sitewinder"
	"github.com/sitewinder-dev/sitewinder/pkg/component"
	"github.com/sitewinder-dev/sitewinder/pkg/markup"
	"github.com/sitewinder-dev/sitewinder/pkg/router"
)

// Page is a simple routed page.
type Page struct {
	component.Core
	title string
	body  string
}

func (p *Page) Template() *markup.Node {
	return markup.Main(
		markup.Nav(
			markup.A(markup.Href("#/"), markup.Text("Home")),
			markup.A(markup.Href("#/about"), markup.Text("About")),
		),
		markup.H1(markup.Text(p.title)),
		markup.P(markup.Text(p.body)),
	)
}

func main() {
	win := sitewinder.NewWindow()
	outlet := sitewinder.Outlet(win, "app")

	r := sitewinder.NewRouter(win, outlet, map[string]router.Factory{
		"#/": func() component.Component {
			return &Page{title: "{{.ProjectName}}", body: "{{.Description}}"}
		},
		"#/about": func() component.Component {
			return &Page{title: "About", body: "Built with sitewinder."}
		},
	})
	r.Start()

	page := sitewinder.RenderPage(win, sitewinder.Page{
		Title:       "{{.ProjectName}}",
		Stylesheets: []string{"/css/app.css"},
	})
	if err := os.WriteFile("public/index.html", []byte(page), 0o644); err != nil {
		log.Fatal(err)
	}
}
`,
		},
	}
}
