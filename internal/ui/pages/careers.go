package pages

import (
	"strings"
	"time"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
)

const applySubject = "Job application"

// Careers lists the open roles and ends with the apply by email action.
type Careers struct {
	id        string
	renderer  *markdown.Renderer
	viewState model.ViewState
	postings  []content.Posting
	contact   content.Contact
	now       func() time.Time
}

func NewCareers(conf config.Config, renderer *markdown.Renderer) Careers {
	return Careers{
		id:       zone.NewPrefix(),
		renderer: renderer,
		postings: content.Postings(),
		contact:  conf.Contact.Details(),
		now:      time.Now,
	}
}

func (m Careers) Init() tea.Cmd {
	return nil
}

func (m Careers) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Apply, input.Default.Accept) {
			return m, m.apply()
		}
	case tea.MouseMsg:
		if leftClick(msg) && zone.Get(m.id+"apply").InBounds(msg) {
			return m, m.apply()
		}
	}

	return m, nil
}

func (m Careers) apply() tea.Cmd {
	return command.OpenLink(m.contact.CareersMailtoURI(applySubject), "careers email")
}

func (m Careers) View() string {
	width := m.viewState.Width
	inner := max(width-4, 10)
	now := m.now()

	rows := make([]string, 0, len(m.postings))
	for _, posting := range m.postings {
		requirements := make([]string, len(posting.Requirements))
		for idx, requirement := range posting.Requirements {
			requirements[idx] = "  • " + requirement
		}

		rows = append(rows, model.Container("Open role", width, lipgloss.JoinVertical(lipgloss.Left,
			styles.PostingTitle.Render(posting.Title),
			styles.PostingMeta.Render(strings.Join([]string{
				posting.Location,
				posting.Schedule,
				"posted " + humanize.RelTime(posting.Posted, now, "ago", "from now"),
			}, " · ")),
			wordwrap.String(posting.Description, inner),
			strings.Join(requirements, "\n"),
		), false))
	}

	hint := styles.PanelKey.Render("[" + input.Default.Apply.Help().Key + "]")
	apply := styles.InfoMessage.Width(max(width, 1)).Render(lipgloss.JoinVertical(lipgloss.Center,
		m.renderer.Render(sectionFor("careers-apply"), inner),
		zone.Mark(m.id+"apply", styles.HeroButton.Render(styles.IconMail+" "+m.contact.CareersEmail)+" "+hint)))

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(copyFor(nav.Careers), width),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		apply)
}

func (m Careers) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState

	return m, nil
}

func (m Careers) Unmount() Page {
	return m
}

func (m Careers) Configure(conf config.Config) Page {
	m.contact = conf.Contact.Details()

	return m
}

func (m Careers) Capturing() bool {
	return false
}
