package pages

import (
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
	zone "github.com/lrstanley/bubblezone"
)

const intakeSubject = "New client intake"

// Contact lists the phone, email and office address. Links are handed to the operating system.
type Contact struct {
	id        string
	renderer  *markdown.Renderer
	viewState model.ViewState
	contact   content.Contact
}

func NewContact(conf config.Config, renderer *markdown.Renderer) Contact {
	return Contact{
		id:       zone.NewPrefix(),
		renderer: renderer,
		contact:  conf.Contact.Details(),
	}
}

func (m Contact) Init() tea.Cmd {
	return nil
}

func (m Contact) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Call):
			return m, m.call()
		case key.Matches(msg, input.Default.Email):
			return m, m.email()
		case key.Matches(msg, input.Default.Map):
			return m, m.openMap()
		case key.Matches(msg, input.Default.Copy):
			return m, command.CopyText(m.contact.Phone, "phone number")
		}
	case tea.MouseMsg:
		if !leftClick(msg) {
			return m, nil
		}

		switch {
		case zone.Get(m.id + "phone").InBounds(msg):
			return m, m.call()
		case zone.Get(m.id + "email").InBounds(msg):
			return m, m.email()
		case zone.Get(m.id + "map").InBounds(msg):
			return m, m.openMap()
		}
	}

	return m, nil
}

func (m Contact) call() tea.Cmd {
	return command.OpenLink(m.contact.TelURI(), "phone dialer")
}

func (m Contact) email() tea.Cmd {
	return command.OpenLink(m.contact.MailtoURI(intakeSubject), "email")
}

func (m Contact) openMap() tea.Cmd {
	return command.OpenLink(m.contact.MapURL, "map")
}

func (m Contact) View() string {
	hint := func(binding key.Binding) string {
		return styles.PanelKey.Render("[" + binding.Help().Key + "]")
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		zone.Mark(m.id+"phone", styles.DetailRow(styles.IconPhone+" Phone", m.contact.Phone+" "+hint(input.Default.Call))),
		zone.Mark(m.id+"email", styles.DetailRow(styles.IconMail+" Email", m.contact.Email+" "+hint(input.Default.Email))),
		zone.Mark(m.id+"map", styles.DetailRow(styles.IconMap+" Office", m.contact.Address+" "+hint(input.Default.Map))),
		"",
		styles.PostingMeta.Render("Press "+hint(input.Default.Copy)+" to copy the phone number."),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(copyFor(nav.Contact), m.viewState.Width),
		"",
		model.Container(content.BusinessName, m.viewState.Width, details, false))
}

func (m Contact) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState

	return m, nil
}

func (m Contact) Unmount() Page {
	return m
}

func (m Contact) Configure(conf config.Config) Page {
	m.contact = conf.Contact.Details()

	return m
}

func (m Contact) Capturing() bool {
	return false
}
