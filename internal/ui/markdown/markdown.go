// Package markdown renders page copy with glamour, keeping one renderer per wrap width.
package markdown

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/muesli/reflow/wordwrap"
)

var errRenderer = errors.New("failed to create markdown renderer")

type Renderer struct {
	style     string
	width     int
	renderer  *glamour.TermRenderer
	rendered  map[string]string
	lastError error
}

// New returns a renderer using one of glamour's standard styles. Unknown styles fall back to dark.
func New(style string) *Renderer {
	if _, found := styles.DefaultStyles[style]; !found {
		style = styles.DarkStyle
	}

	return &Renderer{style: style, rendered: map[string]string{}}
}

// Render formats source for width columns. If glamour fails the source is word wrapped and
// returned as plain text so a page never renders empty.
func (r *Renderer) Render(source string, width int) string {
	if width <= 0 {
		return source
	}

	if err := r.ensure(width); err != nil {
		return wordwrap.String(source, width)
	}

	if out, found := r.rendered[source]; found {
		return out
	}

	out, err := r.renderer.Render(source)
	if err != nil {
		slog.Error("Failed to render markdown", slog.String("error", err.Error()))

		return wordwrap.String(source, width)
	}

	out = strings.Trim(out, "\n")
	r.rendered[source] = out

	return out
}

// SetStyle switches the style, dropping the cached renderer.
func (r *Renderer) SetStyle(style string) {
	if _, found := styles.DefaultStyles[style]; !found || style == r.style {
		return
	}

	r.style = style
	r.renderer = nil
	r.rendered = map[string]string{}
}

func (r *Renderer) ensure(width int) error {
	if r.renderer != nil && r.width == width {
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Error("Failed to create markdown renderer", slog.String("error", err.Error()))
		r.lastError = errors.Join(err, errRenderer)

		return r.lastError
	}

	r.renderer = renderer
	r.width = width
	r.rendered = map[string]string{}

	return nil
}
