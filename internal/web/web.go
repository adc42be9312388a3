// Package web holds the embedded HTML templates for the search front end
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Templates parses every embedded template. Template names come from their
// {{define}} blocks.
func Templates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": func(sep string, elems []string) string {
			return strings.Join(elems, sep)
		},
		"selected": func(current, option string) bool {
			return strings.EqualFold(current, option)
		},
		"plural": func(n int, singular, plural string) string {
			if n == 1 {
				return singular
			}
			return plural
		},
	}

	tmpl := template.New("").Funcs(funcMap)

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := templatesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}
		if _, err := tmpl.Parse(string(content)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk templates: %w", err)
	}

	return tmpl, nil
}
