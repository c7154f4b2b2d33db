package command

import (
	"errors"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/brightsteps/site/internal/nav"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

var (
	errOpenLink = errors.New("failed to open link")
	errCopy     = errors.New("failed to copy to clipboard")
)

// NavigateMsg asks the shell to transition to View.
type NavigateMsg struct {
	View nav.View
}

func Navigate(view nav.View) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{View: view} }
}

// ScrollTopMsg asks the shell to scroll the content back to the top while staying on the same view.
type ScrollTopMsg struct{}

func ScrollToTop() tea.Msg {
	return ScrollTopMsg{}
}

type ToggleMenuMsg struct{}

func ToggleMenu() tea.Msg {
	return ToggleMenuMsg{}
}

const ClearMessageTimeout = time.Second * 6

type ClearStatusMessageMsg struct{}

func ClearStatusAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// Opener hands a URI to the operating system. It is swapped out in tests.
var Opener = browser.OpenURL

// OpenLink opens a tel:, mailto: or https: link with the system handler.
func OpenLink(uri string, label string) tea.Cmd {
	return func() tea.Msg {
		if err := Opener(uri); err != nil {
			slog.Error("Failed to open link", slog.String("uri", uri), slog.String("error", err.Error()))

			return StatusMsg{Message: errOpenLink.Error(), Err: true}
		}

		return StatusMsg{Message: "Opened " + label}
	}
}

// Copier writes text to the system clipboard. It is swapped out in tests.
var Copier = clipboard.WriteAll

func CopyText(text string, label string) tea.Cmd {
	return func() tea.Msg {
		if err := Copier(text); err != nil {
			slog.Error("Failed to copy", slog.String("error", err.Error()))

			return StatusMsg{Message: errCopy.Error(), Err: true}
		}

		return StatusMsg{Message: "Copied " + label}
	}
}
