package ui

import (
	"log/slog"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/content"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/rotator"
	"github.com/brightsteps/site/internal/scroll"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/component"
	"github.com/brightsteps/site/internal/ui/input"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/pages"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the application shell. It owns the navigation controller and the scroll observer,
// and mounts exactly one page at a time from the registry.
type rootModel struct {
	conf      config.Config
	viewState model.ViewState
	ctrl      *nav.Controller
	smooth    *scroll.Smooth
	feed      *scroll.Feed
	observer  *scroll.Observer
	viewport  viewport.Model
	renderer  *markdown.Renderer
	registry  pages.Registry
	mounted   nav.View
	isMounted bool
	header    component.Header
	footer    component.Footer
	fab       component.FAB
	help      pages.Help
	showHelp  bool
	// pending collects commands produced while the controller notifies listeners.
	pending    []tea.Cmd
	lastOffset int
	released   bool
	releaseFns []func()
}

func newRootModel(conf config.Config, registry pages.Registry, renderer *markdown.Renderer, build BuildInfo) *rootModel {
	smooth := scroll.NewSmooth(conf.FPS, conf.SmoothScroll)
	view := viewport.New(0, 0)
	view.KeyMap = viewport.KeyMap{}
	view.MouseWheelEnabled = true

	root := &rootModel{
		conf:     conf,
		ctrl:     nav.New(smooth),
		smooth:   smooth,
		feed:     scroll.NewFeed(),
		observer: scroll.NewObserver(conf.ScrollThreshold),
		viewport: view,
		renderer: renderer,
		registry: registry,
		header:   component.NewHeader(),
		footer:   component.NewFooter(conf, build.Version),
		fab:      component.NewFAB(),
		help:     pages.NewHelp(build.Version, build.Date, build.Commit, build.ConfigPath, build.LogPath),
	}

	root.releaseFns = append(root.releaseFns,
		root.ctrl.Subscribe(root.onNavigate),
		root.observer.Mount(root.feed, root.ctrl))

	return root
}

func (m *rootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(content.BusinessName), m.mount(m.ctrl.Active())}

	if start := m.conf.StartView; start != m.ctrl.Active() {
		m.ctrl.TransitionTo(start)
		cmds = append(cmds, m.sync())
	}

	return tea.Batch(cmds...)
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if !m.isInitialized() {
		switch msg := inMsg.(type) {
		case tea.KeyMsg:
			if msg.String() == "ctrl+c" {
				return m, m.quit()
			}

			return m, nil
		case tea.MouseMsg:
			return m, nil
		}
	}

	var cmd tea.Cmd

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height
		cmd = m.layout()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case command.NavigateMsg:
		m.ctrl.TransitionTo(msg.View)
	case command.ToggleMenuMsg:
		m.ctrl.ToggleMenu()
	case command.ScrollTopMsg:
		m.smooth.ScrollToTop()
	case pages.CloseHelpMsg:
		m.showHelp = false
	case config.Config:
		cmd = m.configure(msg)
	case command.StatusMsg, command.ClearStatusMessageMsg:
		m.footer, cmd = m.footer.Update(msg)
	case scroll.FrameMsg:
		if offset, next, ok := m.smooth.Step(msg); ok {
			m.viewport.SetYOffset(offset)
			cmd = next
		}
	default:
		cmd = m.updatePage(msg)
	}

	if m.released {
		return m, cmd
	}

	return m, tea.Batch(cmd, m.sync())
}

func (m *rootModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)

		return cmd
	}

	if page := m.activePage(); page != nil && page.Capturing() {
		return m.updatePage(msg)
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return m.quit()
	case key.Matches(msg, input.Default.Help):
		m.showHelp = true
	case key.Matches(msg, input.Default.Menu):
		if m.viewState.Compact {
			m.ctrl.ToggleMenu()
		}
	case key.Matches(msg, input.Default.NextView):
		m.ctrl.TransitionTo(m.ctrl.Active().Next())
	case key.Matches(msg, input.Default.PrevView):
		m.ctrl.TransitionTo(m.ctrl.Active().Prev())
	case key.Matches(msg, input.Default.Home):
		m.ctrl.TransitionTo(nav.Home)
	case key.Matches(msg, input.Default.About):
		m.ctrl.TransitionTo(nav.About)
	case key.Matches(msg, input.Default.Services):
		m.ctrl.TransitionTo(nav.Services)
	case key.Matches(msg, input.Default.Careers):
		m.ctrl.TransitionTo(nav.Careers)
	case key.Matches(msg, input.Default.Start):
		m.ctrl.TransitionTo(nav.GetStarted)
	case key.Matches(msg, input.Default.Contact):
		m.ctrl.TransitionTo(nav.Contact)
	case key.Matches(msg, input.Default.FAB):
		var cmd tea.Cmd
		m.fab, cmd = m.fab.Update(msg)

		return cmd
	case key.Matches(msg, input.Default.Up):
		m.scrollBy(input.Up, 1)
	case key.Matches(msg, input.Default.Down):
		m.scrollBy(input.Down, 1)
	case key.Matches(msg, input.Default.PageUp):
		m.scrollBy(input.Up, m.viewport.Height)
	case key.Matches(msg, input.Default.PageDown):
		m.scrollBy(input.Down, m.viewport.Height)
	case key.Matches(msg, input.Default.Top):
		m.smooth.Interrupt()
		m.viewport.GotoTop()
	case key.Matches(msg, input.Default.Bottom):
		m.smooth.Interrupt()
		m.viewport.GotoBottom()
	default:
		return m.updatePage(msg)
	}

	return nil
}

func (m *rootModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.IsWheel() {
		m.smooth.Interrupt()

		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)

		return cmd
	}

	if m.showHelp {
		return nil
	}

	cmds := make([]tea.Cmd, 4)
	m.header, cmds[0] = m.header.Update(msg)
	m.footer, cmds[1] = m.footer.Update(msg)
	m.fab, cmds[2] = m.fab.Update(msg)
	cmds[3] = m.updatePage(msg)

	return tea.Batch(cmds...)
}

// scrollBy moves the viewport manually, which cancels any scroll-to-top animation in progress.
func (m *rootModel) scrollBy(direction input.Direction, lines int) {
	m.smooth.Interrupt()

	if direction.Vertical() {
		m.viewport.SetYOffset(m.viewport.YOffset + direction.Delta()*lines)
	}
}

// onNavigate runs synchronously inside every controller mutation.
func (m *rootModel) onNavigate(state nav.State) {
	m.header, _ = m.header.Update(state)

	if !m.isMounted || state.Active != m.mounted {
		m.pending = append(m.pending, m.mount(state.Active))
	}

	m.pending = append(m.pending, m.layout())
}

// mount swaps the active page. The previous page is unmounted first so that its timers are
// stopped before the next page starts any of its own.
func (m *rootModel) mount(view nav.View) tea.Cmd {
	if m.isMounted {
		m.registry[m.mounted] = m.registry[m.mounted].Unmount()
	}

	page, found := m.registry[view]
	if !found {
		slog.Error("No page registered", slog.String("view", view.String()))

		return nil
	}

	page, cmd := page.Mount(m.viewState)
	m.registry[view] = page
	m.mounted = view
	m.isMounted = true

	slog.Debug("Mounted page", slog.String("view", view.String()))

	return cmd
}

func (m *rootModel) activePage() pages.Page {
	if !m.isMounted {
		return nil
	}

	return m.registry[m.mounted]
}

func (m *rootModel) updatePage(msg tea.Msg) tea.Cmd {
	page := m.activePage()
	if page == nil {
		return nil
	}

	updated, cmd := page.Update(msg)
	if next, ok := updated.(pages.Page); ok {
		m.registry[m.mounted] = next
	}

	return cmd
}

// sync runs after every update. It refreshes the viewport from the active page, starts any scroll
// requested by a transition, publishes the resulting offset and syncs the FAB.
func (m *rootModel) sync() tea.Cmd {
	cmds := m.pending
	m.pending = nil

	if page := m.activePage(); page != nil && m.isInitialized() {
		m.viewport.SetContent(page.View())
	}

	offset, cmd := m.smooth.Take(m.viewport.YOffset)
	m.viewport.SetYOffset(offset)
	cmds = append(cmds, cmd)

	if m.viewport.YOffset != m.lastOffset {
		m.lastOffset = m.viewport.YOffset
		m.feed.Publish(m.conf.ScrollOffsetPx(m.lastOffset))
	}

	m.fab = m.fab.SetVisible(m.observer.Visible())

	return tea.Batch(cmds...)
}

// layout splits the window between header, content and footer and hands the result to every
// component that depends on it.
func (m *rootModel) layout() tea.Cmd {
	if !m.isInitialized() {
		return nil
	}

	wasCompact := m.viewState.Compact
	m.viewState.Compact = m.viewState.Width < m.conf.MenuBreakpoint
	if wasCompact && !m.viewState.Compact {
		m.ctrl.CloseMenu()
	}

	m.header, _ = m.header.Update(m.viewState)
	m.footer, _ = m.footer.Update(m.viewState)

	headerHeight := lipgloss.Height(m.header.View())
	footerHeight := lipgloss.Height(m.footer.View())
	m.viewState.Content = max(m.viewState.Height-headerHeight-footerHeight, 1)

	m.viewport.Width = m.viewState.Width
	m.viewport.Height = m.viewState.Content
	m.help, _ = m.help.Update(m.viewState)

	return m.updatePage(m.viewState)
}

func (m *rootModel) configure(conf config.Config) tea.Cmd {
	m.conf = conf
	m.observer.SetThreshold(conf.ScrollThreshold)
	m.smooth.SetEnabled(conf.SmoothScroll)
	m.renderer.SetStyle(conf.GlamourStyle)
	m.footer, _ = m.footer.Update(conf)

	for view, page := range m.registry {
		m.registry[view] = page.Configure(conf)
	}

	// The pixel size of a line may have changed.
	m.feed.Publish(conf.ScrollOffsetPx(m.viewport.YOffset))

	slog.Info("Applied config update")

	return m.layout()
}

func (m *rootModel) quit() tea.Cmd {
	m.teardown()

	return tea.Quit
}

// teardown unmounts the active page and releases the observer and nav subscriptions. Calling it
// more than once is harmless.
func (m *rootModel) teardown() {
	if m.released {
		return
	}
	m.released = true

	if m.isMounted {
		m.registry[m.mounted] = m.registry[m.mounted].Unmount()
		m.isMounted = false
	}

	for _, release := range m.releaseFns {
		release()
	}
	m.releaseFns = nil
}

func (m *rootModel) View() string {
	if !m.isInitialized() || m.released {
		return ""
	}

	var body string
	if m.showHelp {
		body = lipgloss.NewStyle().
			Height(m.viewState.Content).
			MaxHeight(m.viewState.Content).
			Render(m.help.View())
	} else {
		body = m.fab.Overlay(m.viewport.View(), m.viewState.Width)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View()))
}

func (m *rootModel) isInitialized() bool {
	return m.viewState.Height != 0 && m.viewState.Width != 0
}

// logMsg is useful for debugging events. Tail the log file ~/.config/brightsteps/brightsteps.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case scroll.FrameMsg:
	case rotator.TickMsg:
	case tea.MouseMsg:
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
