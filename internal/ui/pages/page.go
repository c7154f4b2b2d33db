// Package pages holds the renderers behind each site view. The shell only ever talks to the
// active page; inactive pages receive no messages and render nothing.
package pages

import (
	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Page is a top level screen.
type Page interface {
	tea.Model
	// Mount activates the page for the given layout. Timers and focus start here.
	Mount(viewState model.ViewState) (Page, tea.Cmd)
	// Unmount releases everything Mount acquired.
	Unmount() Page
	// Configure applies a config reload. It must not produce output or side effects.
	Configure(conf config.Config) Page
	// Capturing reports whether a focused field owns keyboard input.
	Capturing() bool
}

// Registry maps each view to its page.
type Registry map[nav.View]Page

// NewRegistry builds the default page set.
func NewRegistry(conf config.Config, renderer *markdown.Renderer) Registry {
	return Registry{
		nav.Home:       NewHome(conf, renderer),
		nav.About:      NewStatic(nav.About, renderer),
		nav.Services:   NewServices(renderer),
		nav.Careers:    NewCareers(conf, renderer),
		nav.GetStarted: NewGetStarted(conf, renderer),
		nav.Contact:    NewContact(conf, renderer),
	}
}

func copyFor(view nav.View) string {
	body, err := contentPage(view)
	if err != nil {
		return "# " + view.Label()
	}

	return body
}
