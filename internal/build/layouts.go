package build

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	homeLayout   = "home.html"
	baseLayout   = "base.html"
	singleLayout = "single.html"
	listPrefix   = "list-"
)

//go:embed layouts
var embeddedLayouts embed.FS

// DefaultLayouts returns the layouts compiled into the binary.
func DefaultLayouts() fs.FS {
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		panic(err)
	}
	return sub
}

// titleCase turns "case-studies" into "Case Studies".
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(s))
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		// navHref makes in-page anchors resolve against the home page so the
		// navigation works from every page.
		"navHref": func(href string) string {
			if strings.HasPrefix(href, "#") {
				return "/" + href
			}
			return href
		},
		"absURL": func(base, path string) (string, error) {
			b, err := url.Parse(strings.TrimSuffix(base, "/") + "/")
			if err != nil {
				return "", fmt.Errorf("invalid baseURL %q: %w", base, err)
			}
			return b.JoinPath(path).String(), nil
		},
	}
}

// layoutsFS returns the user's layouts directory when it exists, and the
// embedded defaults otherwise.
func layoutsFS(dir string, logger *zap.Logger) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			logger.Debug("Using layouts directory", zap.String("dir", dir))
			return os.DirFS(dir)
		}
	}
	logger.Debug("Layouts directory not found, using built-in layouts", zap.String("dir", dir))
	return DefaultLayouts()
}

// LoadTemplates parses partials/*.html and every top-level *.html of fsys
// into one template set. Templates are named by file name; base.html and
// home.html are required.
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	partials, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to find partials: %w", err)
	}
	pages, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to find layout files: %w", err)
	}
	if len(pages) == 0 {
		return nil, errors.New("no .html layout files found")
	}

	templates := template.New("").Funcs(templateFuncs())
	if len(partials) > 0 {
		if templates, err = templates.ParseFS(fsys, partials...); err != nil {
			return nil, fmt.Errorf("failed to parse partials: %w", err)
		}
	}
	if templates, err = templates.ParseFS(fsys, pages...); err != nil {
		return nil, fmt.Errorf("failed to parse layout files: %w", err)
	}

	for _, required := range []string{baseLayout, homeLayout} {
		if templates.Lookup(required) == nil {
			return nil, fmt.Errorf("required layout %q not found", required)
		}
	}
	return templates, nil
}

// listLayouts returns the content types that have a list-<type>.html layout.
func listLayouts(templates *template.Template) []string {
	var types []string
	for _, t := range templates.Templates() {
		name := t.Name()
		if strings.HasPrefix(name, listPrefix) && strings.HasSuffix(name, ".html") {
			types = append(types, strings.TrimSuffix(strings.TrimPrefix(name, listPrefix), ".html"))
		}
	}
	return types
}
