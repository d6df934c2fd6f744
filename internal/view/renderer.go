package view

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// DashboardTemplate is the entry template of the dashboard page.
const DashboardTemplate = "dashboard.html"

// Renderer executes pongo2 templates from a directory.
type Renderer struct {
	dir string
	set *pongo2.TemplateSet
}

// NewRenderer loads templates from dir.
func NewRenderer(dir string) (*Renderer, error) {
	if dir == "" {
		return nil, fmt.Errorf("template directory is required")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("template directory not found: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve template directory: %w", err)
	}
	loader, err := pongo2.NewLocalFileSystemLoader(abs)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &Renderer{dir: abs, set: pongo2.NewSet("helpdesk", loader)}, nil
}

// Render executes the named template with ctx.
func (r *Renderer) Render(name string, ctx pongo2.Context) ([]byte, error) {
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	out, err := tpl.ExecuteBytes(ctx)
	if err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return out, nil
}

// RenderDashboard renders the full dashboard page.
func (r *Renderer) RenderDashboard(page DashboardPage) ([]byte, error) {
	return r.Render(DashboardTemplate, pongo2.Context{"page": page})
}

// Validate parses every .html file under the template directory and
// returns the number parsed.
func (r *Renderer) Validate() (int, error) {
	var parsed int
	var failures []string
	err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}
		rel, err := filepath.Rel(r.dir, path)
		if err != nil {
			return err
		}
		if _, perr := r.set.FromFile(filepath.ToSlash(rel)); perr != nil {
			failures = append(failures, rel+": "+perr.Error())
			return nil
		}
		parsed++
		return nil
	})
	if err != nil {
		return parsed, fmt.Errorf("walk templates: %w", err)
	}
	if len(failures) > 0 {
		return parsed, fmt.Errorf("invalid templates: %s", strings.Join(failures, "; "))
	}
	return parsed, nil
}
