package pages

import (
	"strconv"
	"strings"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/rotator"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const (
	testimonialsTitle = "What families say"
	servicesTitle     = "Our services"
)

type callToAction struct {
	label string
	view  nav.View
}

// homeActions are listed in page order. The first one holds the focus when the page mounts.
var homeActions = []callToAction{
	{label: "Get services", view: nav.GetStarted},
	{label: "Join our team", view: nav.Careers},
	{label: "Learn more about us", view: nav.About},
	{label: "See all services", view: nav.Services},
	{label: "Check your area", view: nav.Contact},
}

// Home shows the hero copy, the calls to action, the service highlights, the testimonial carousel
// and the service area. The carousel timer only runs while the page is mounted.
type Home struct {
	id           string
	renderer     *markdown.Renderer
	viewState    model.ViewState
	testimonials []content.Testimonial
	carousel     rotator.Model
	action       int
}

func NewHome(conf config.Config, renderer *markdown.Renderer) Home {
	testimonials := content.Testimonials()

	return Home{
		id:           zone.NewPrefix(),
		renderer:     renderer,
		testimonials: testimonials,
		carousel: rotator.New(len(testimonials), conf.Carousel.Period,
			rotator.WithResetOnSelect(conf.Carousel.ResetOnSelect)),
	}
}

func (m Home) Init() tea.Cmd {
	return nil
}

// Carousel exposes the rotator state.
func (m Home) Carousel() rotator.Model {
	return m.carousel
}

// Action returns the view the focused call to action leads to.
func (m Home) Action() nav.View {
	return homeActions[m.action].view
}

func (m Home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case rotator.TickMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Accept):
			return m, command.Navigate(m.Action())
		case key.Matches(msg, input.Default.NextAction):
			m.action = (m.action + 1) % len(homeActions)

			return m, nil
		case key.Matches(msg, input.Default.PrevAction):
			m.action = (m.action + len(homeActions) - 1) % len(homeActions)

			return m, nil
		case m.carousel.Len() == 0:
			return m, nil
		case key.Matches(msg, input.Default.Left):
			return m.selectTestimonial((m.carousel.Index() + m.carousel.Len() - 1) % m.carousel.Len())
		case key.Matches(msg, input.Default.Right):
			return m.selectTestimonial((m.carousel.Index() + 1) % m.carousel.Len())
		}
	case tea.MouseMsg:
		if !leftClick(msg) {
			return m, nil
		}

		for idx, action := range homeActions {
			if zone.Get(m.actionID(idx)).InBounds(msg) {
				m.action = idx

				return m, command.Navigate(action.view)
			}
		}

		for idx := range m.testimonials {
			if zone.Get(m.indicatorID(idx)).InBounds(msg) {
				return m.selectTestimonial(idx)
			}
		}
	}

	return m, nil
}

func (m Home) selectTestimonial(idx int) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Select(idx)

	return m, cmd
}

func (m Home) View() string {
	width := m.viewState.Width

	return lipgloss.JoinVertical(lipgloss.Left,
		section(width,
			m.renderer.Render(copyFor(nav.Home), width),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, m.button(0), m.button(1))),
		"",
		section(width, m.renderer.Render(sectionFor("home-welcome"), width), "", m.button(2)),
		"",
		section(width,
			model.Container(servicesTitle, width, renderCards(content.ServiceHighlights(), max(width-4, 1)), false),
			m.button(3)),
		"",
		m.renderCarousel(),
		"",
		section(width, m.renderer.Render(sectionFor("home-area"), width), "", m.button(4)),
	)
}

func (m Home) button(idx int) string {
	return actionButton(m.actionID(idx), homeActions[idx].label, idx == m.action)
}

func (m Home) actionID(idx int) string {
	return m.id + "action" + strconv.Itoa(idx)
}

func (m Home) renderCarousel() string {
	if len(m.testimonials) == 0 {
		return ""
	}

	current := m.testimonials[m.carousel.Index()]
	inner := max(m.viewState.Width-6, 10)

	indicators := make([]string, len(m.testimonials))
	for idx := range m.testimonials {
		dot := styles.IndicatorInactive.Render("○")
		if idx == m.carousel.Index() {
			dot = styles.IndicatorActive.Render("●")
		}
		indicators[idx] = zone.Mark(m.indicatorID(idx), dot)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.TestimonialText.Render(wordwrap.String("“"+current.Text+"”", inner)),
		styles.TestimonialAuthor.Width(inner).Render("— "+current.Author),
		lipgloss.PlaceHorizontal(inner, lipgloss.Center, strings.Join(indicators, " ")),
	)

	return model.Container(testimonialsTitle, m.viewState.Width, body, true)
}

func (m Home) indicatorID(idx int) string {
	return m.id + "indicator" + strconv.Itoa(idx)
}

// Mount starts the rotation timer and puts the focus back on the first call to action.
func (m Home) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState
	m.action = 0

	var cmd tea.Cmd
	m.carousel, cmd = m.carousel.Start()

	return m, cmd
}

// Unmount stops the rotation timer; a tick already in flight is discarded on arrival.
func (m Home) Unmount() Page {
	m.carousel = m.carousel.Stop()

	return m
}

func (m Home) Configure(conf config.Config) Page {
	m.carousel = m.carousel.
		SetPeriod(conf.Carousel.Period).
		SetResetOnSelect(conf.Carousel.ResetOnSelect)

	return m
}

func (m Home) Capturing() bool {
	return false
}
