package pages

import (
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CloseHelpMsg asks the shell to hide the help overlay.
type CloseHelpMsg struct{}

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, logPath string) Help {
	return Help{
		configPath:   configPath,
		logPath:      logPath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// Help is the key reference and build info overlay. It is not a site view: opening it leaves the
// navigation state untouched.
type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	logPath      string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Back, input.Default.Help) {
			return m, func() tea.Msg { return CloseHelpMsg{} }
		}
	case model.ViewState:
		m.viewState = msg
		m.helpView.Width = msg.Width
	}

	return m, nil
}

func (m Help) View() string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Home,
			input.Default.About,
			input.Default.Services,
			input.Default.Careers,
			input.Default.Start,
			input.Default.Contact,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.NextView,
			input.Default.PrevView,
			input.Default.Menu,
			input.Default.FAB,
			input.Default.Up,
			input.Default.Down,
			input.Default.PageUp,
			input.Default.PageDown,
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Left,
			input.Default.Right,
			input.Default.NextAction,
			input.Default.PrevAction,
			input.Default.Accept,
			input.Default.Help,
			input.Default.Quit,
		},
	})

	links := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Call,
			input.Default.Email,
			input.Default.Map,
			input.Default.Copy,
			input.Default.Apply,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle),
		styles.HelpBox.Render(right), styles.HelpBox.Render(links))

	commit := m.buildCommit
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(max(m.viewState.Width, lipgloss.Width(content)), max(m.viewState.Content, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
