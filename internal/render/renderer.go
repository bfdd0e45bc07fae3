// Package render projects resolved manifests into template contexts and
// turns them into deployment artifacts and helm values.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Template errors.
var (
	// ErrTemplate indicates the renderer failed on a template.
	ErrTemplate = errors.New("template rendering failed")

	// ErrIncomplete indicates the manifest lacks fields the full
	// deployment context requires.
	ErrIncomplete = errors.New("manifest incomplete for rendering")
)

// Context is the name to value mapping handed to templates.
type Context map[string]any

// Renderer renders a named template with a context. Implementations are
// injected into Deployment rather than embedded, so the domain types
// stay engine-agnostic.
type Renderer interface {
	Render(name string, ctx Context) (string, error)
}

// RenderFunc adapts a plain function to the Renderer interface.
type RenderFunc func(name string, ctx Context) (string, error)

// Render implements Renderer.
func (f RenderFunc) Render(name string, ctx Context) (string, error) {
	return f(name, ctx)
}

// Engine is a text/template based Renderer with the sprig function map.
// Template names are file names relative to the directories given at
// construction.
type Engine struct {
	tmpl *template.Template
}

// NewEngine parses every template file found directly inside the given
// directories. Later directories win on name collisions, letting a
// service's own templates shadow the shared ones.
func NewEngine(dirs ...string) (*Engine, error) {
	root := template.New("").Funcs(sprig.TxtFuncMap())

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read template dir %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, fmt.Errorf("read template %s: %w", e.Name(), err)
			}
			if _, err := root.New(e.Name()).Parse(string(data)); err != nil {
				return nil, fmt.Errorf("%w: parse %s: %v", ErrTemplate, e.Name(), err)
			}
		}
	}

	return &Engine{tmpl: root}, nil
}

// Render executes one named template.
func (e *Engine) Render(name string, ctx Context) (string, error) {
	var sb strings.Builder
	if err := e.tmpl.ExecuteTemplate(&sb, name, map[string]any(ctx)); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	return sb.String(), nil
}
