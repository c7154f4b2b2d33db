package component

import (
	"strings"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Footer renders the duplicate link row, the contact line, the status message and key help.
type Footer struct {
	id          string
	version     string
	viewState   model.ViewState
	contact     content.Contact
	help        help.Model
	statusMsg   string
	statusError bool
}

func NewFooter(conf config.Config, version string) Footer {
	return Footer{
		id:      zone.NewPrefix(),
		version: version,
		contact: conf.Contact.Details(),
		help:    help.New(),
	}
}

func (m Footer) Init() tea.Cmd {
	return nil
}

// Status returns the current status line and whether it is an error.
func (m Footer) Status() (string, bool) {
	return m.statusMsg, m.statusError
}

func (m Footer) Update(msg tea.Msg) (Footer, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.help.Width = msg.Width
	case config.Config:
		m.contact = msg.Contact.Details()
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearStatusAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusMsg = ""
		m.statusError = false
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for _, view := range nav.Views() {
			if zone.Get(m.id + view.String()).InBounds(msg) {
				return m, command.Navigate(view)
			}
		}
	}

	return m, nil
}

func (m Footer) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	links := make([]string, 0, len(nav.Views()))
	for _, view := range nav.Views() {
		links = append(links, zone.Mark(m.id+view.String(), styles.FooterLink.Render(view.Label())))
	}

	linkRow := lipgloss.JoinHorizontal(lipgloss.Top, links...)
	if m.viewState.Compact {
		linkRow = ""
	}

	contactLine := styles.FooterContact.Render(strings.Join([]string{
		styles.IconPhone + " " + m.contact.Phone,
		styles.IconMail + " " + m.contact.Email,
	}, "   "))

	status := styles.StatusVersion.Render(m.version)
	if m.statusMsg != "" {
		style := styles.StatusMessage
		if m.statusError {
			style = styles.StatusError
		}
		status = lipgloss.JoinHorizontal(lipgloss.Top, status, style.Render(m.statusMsg))
	}

	rows := []string{linkRow, contactLine, status, m.help.View(input.Default)}
	if linkRow == "" {
		rows = rows[1:]
	}

	return styles.FooterContainerStyle.Width(m.viewState.Width).Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
