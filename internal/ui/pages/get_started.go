package pages

import (
	"strconv"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/component"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	noFocus    = -1
	stepsTitle = "3 steps to services"
)

var intakeFields = []struct {
	label       string
	placeholder string
}{
	{label: "Parent / guardian", placeholder: "Full name"},
	{label: "Email", placeholder: "you@example.com"},
	{label: "Phone", placeholder: "(555) 555-5555"},
	{label: "Child's age", placeholder: "e.g. 4"},
	{label: "Zip code", placeholder: "92054"},
}

// GetStarted is the intake form. It collects free text only: nothing is validated and nothing is
// submitted, the submit button tells the visitor how to reach the intake team instead.
type GetStarted struct {
	id        string
	renderer  *markdown.Renderer
	viewState model.ViewState
	inputs    []textinput.Model
	message   textarea.Model
	focus     int
	phone     string
	notice    string
}

func NewGetStarted(conf config.Config, renderer *markdown.Renderer) GetStarted {
	inputs := make([]textinput.Model, len(intakeFields))
	for idx, field := range intakeFields {
		inputs[idx] = component.NewTextInputModel(field.placeholder)
	}

	message := component.NewTextAreaModel("Tell us about your child and what you are hoping for", 4)

	return GetStarted{
		id:       zone.NewPrefix(),
		renderer: renderer,
		inputs:   inputs,
		message:  message,
		focus:    noFocus,
		phone:    conf.Contact.Details().Phone,
	}
}

// Values returns the text entered so far keyed by field label.
func (m GetStarted) Values() map[string]string {
	values := make(map[string]string, len(m.inputs)+1)
	for idx, field := range intakeFields {
		values[field.label] = m.inputs[idx].Value()
	}
	values["Message"] = m.message.Value()

	return values
}

// Focused returns the index of the focused element, -1 when none. The textarea follows the inputs
// and the submit button comes last.
func (m GetStarted) Focused() int {
	return m.focus
}

func (m GetStarted) Notice() string {
	return m.notice
}

func (m GetStarted) submitIndex() int {
	return len(m.inputs) + 1
}

func (m GetStarted) Init() tea.Cmd {
	return nil
}

func (m GetStarted) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m.message.SetWidth(m.fieldWidth())
	case tea.MouseMsg:
		if !leftClick(msg) {
			return m, nil
		}

		for idx := 0; idx <= m.submitIndex(); idx++ {
			if zone.Get(m.fieldID(idx)).InBounds(msg) {
				if idx == m.submitIndex() {
					return m.submit()
				}

				return m.setFocus(idx)
			}
		}
	case tea.KeyMsg:
		if m.focus == noFocus {
			if key.Matches(msg, input.Default.Accept) {
				return m.setFocus(0)
			}

			return m, nil
		}

		switch {
		case key.Matches(msg, input.Default.Back):
			return m.setFocus(noFocus)
		case key.Matches(msg, input.Default.NextItem):
			return m.move(input.Down)
		case key.Matches(msg, input.Default.PrevItem):
			return m.move(input.Up)
		case key.Matches(msg, input.Default.Accept) && m.focus == m.submitIndex():
			return m.submit()
		case key.Matches(msg, input.Default.Accept) && m.focus < len(m.inputs):
			return m.move(input.Down)
		}

		return m.updateFocused(msg)
	}

	return m, nil
}

func (m GetStarted) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case m.focus >= 0 && m.focus < len(m.inputs):
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == len(m.inputs):
		m.message, cmd = m.message.Update(msg)
	}

	return m, cmd
}

// move cycles focus through the fields and the submit button, wrapping at both ends.
func (m GetStarted) move(dir input.Direction) (tea.Model, tea.Cmd) {
	total := m.submitIndex() + 1

	return m.setFocus((m.focus + dir.Delta() + total) % total)
}

func (m GetStarted) setFocus(idx int) (tea.Model, tea.Cmd) {
	m.inputs = append([]textinput.Model(nil), m.inputs...)
	for i := range m.inputs {
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = styles.BlurredStyle
		m.inputs[i].TextStyle = styles.NoStyle
	}
	m.message.Blur()
	m.focus = idx

	switch {
	case idx >= 0 && idx < len(m.inputs):
		m.inputs[idx].PromptStyle = styles.FocusedStyle
		m.inputs[idx].TextStyle = styles.FocusedStyle

		return m, m.inputs[idx].Focus()
	case idx == len(m.inputs):
		return m, m.message.Focus()
	}

	return m, nil
}

func (m GetStarted) submit() (tea.Model, tea.Cmd) {
	m.notice = "Online intake is not connected yet. Please call " + m.phone + " and we will start your intake by phone."
	next, _ := m.setFocus(noFocus)

	return next, command.SetStatusMessage("Intake form is not submitted anywhere", false)
}

func (m GetStarted) fieldWidth() int {
	return max(m.viewState.Width-lipgloss.Width(styles.FieldLabel.Render(""))-6, 10)
}

func (m GetStarted) fieldID(idx int) string {
	return m.id + "field" + strconv.Itoa(idx)
}

func (m GetStarted) View() string {
	rows := make([]string, 0, len(m.inputs)+3)
	for idx, field := range intakeFields {
		text := m.inputs[idx]
		text.Width = m.fieldWidth()
		rows = append(rows, zone.Mark(m.fieldID(idx), lipgloss.JoinHorizontal(lipgloss.Top,
			styles.FieldLabel.Render(field.label), text.View())))
	}

	rows = append(rows, zone.Mark(m.fieldID(len(m.inputs)), lipgloss.JoinHorizontal(lipgloss.Top,
		styles.FieldLabel.Render("Message"), m.message.View())))

	button := styles.BlurredSubmitButton
	if m.focus == m.submitIndex() {
		button = styles.FocusedSubmitButton
	}
	rows = append(rows, "", zone.Mark(m.fieldID(m.submitIndex()), button))

	if m.notice != "" {
		rows = append(rows, styles.InfoMessage.Width(m.fieldWidth()).Render(m.notice))
	}

	form := model.Container("Intake request", m.viewState.Width, lipgloss.JoinVertical(lipgloss.Left, rows...), m.focus != noFocus)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Render(copyFor(nav.GetStarted), m.viewState.Width),
		"",
		model.Container(stepsTitle, m.viewState.Width, renderCards(intakeSteps(), max(m.viewState.Width-4, 1)), false),
		"",
		form)
}

// intakeSteps numbers the steps for display.
func intakeSteps() []content.Card {
	steps := content.IntakeSteps()
	for idx := range steps {
		steps[idx].Title = strconv.Itoa(idx+1) + ". " + steps[idx].Title
	}

	return steps
}

func (m GetStarted) Mount(viewState model.ViewState) (Page, tea.Cmd) {
	m.viewState = viewState
	m.message.SetWidth(m.fieldWidth())

	return m, nil
}

// Unmount drops focus so the next visit starts with global navigation keys active.
func (m GetStarted) Unmount() Page {
	next, _ := m.setFocus(noFocus)

	return next.(GetStarted)
}

func (m GetStarted) Configure(conf config.Config) Page {
	m.phone = conf.Contact.Details().Phone

	return m
}

func (m GetStarted) Capturing() bool {
	return m.focus != noFocus
}
