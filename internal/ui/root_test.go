package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/brightsteps/site/internal/config"
	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/ui/command"
	"github.com/brightsteps/site/internal/ui/markdown"
	"github.com/brightsteps/site/internal/ui/model"
	"github.com/brightsteps/site/internal/ui/pages"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	zone.SetEnabled(false)

	goleak.VerifyTestMain(m, goleak.IgnoreAnyFunction("github.com/lrstanley/bubblezone.(*Manager).zoneWorker"))
}

type pageCounts struct {
	views    int
	updates  int
	mounts   int
	unmounts int
}

// fakePage records how the shell drives it. Counters live behind a pointer so that the value
// copies handed back to the registry share them.
type fakePage struct {
	view      nav.View
	counts    *pageCounts
	capturing bool
	mounted   bool
}

func (p fakePage) Init() tea.Cmd { return nil }

func (p fakePage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(model.ViewState); !ok {
		p.counts.updates++
	}

	return p, nil
}

func (p fakePage) View() string {
	p.counts.views++

	return strings.Repeat(p.view.String()+"\n", 200)
}

func (p fakePage) Mount(_ model.ViewState) (pages.Page, tea.Cmd) {
	p.counts.mounts++
	p.mounted = true

	return p, nil
}

func (p fakePage) Unmount() pages.Page {
	p.counts.unmounts++
	p.mounted = false

	return p
}

func (p fakePage) Configure(_ config.Config) pages.Page { return p }

func (p fakePage) Capturing() bool { return p.capturing }

func testConfig() config.Config {
	return config.Config{
		StartView:       nav.Home,
		FPS:             60,
		ScrollThreshold: 200,
		LineHeightPx:    20,
		MenuBreakpoint:  100,
		GlamourStyle:    "notty",
		Carousel:        config.Carousel{Period: 5 * time.Second},
	}
}

type testShell struct {
	root   *rootModel
	counts map[nav.View]*pageCounts
}

func newTestShell(t *testing.T, conf config.Config, width int) testShell {
	t.Helper()

	counts := map[nav.View]*pageCounts{}
	registry := pages.Registry{}
	for _, view := range nav.Views() {
		counts[view] = &pageCounts{}
		registry[view] = fakePage{view: view, counts: counts[view]}
	}

	root := newRootModel(conf, registry, markdown.New(conf.GlamourStyle), BuildInfo{Version: "test"})
	root.Init()
	root.Update(tea.WindowSizeMsg{Width: width, Height: 40})

	return testShell{root: root, counts: counts}
}

func (s testShell) reset() {
	for _, count := range s.counts {
		*count = pageCounts{}
	}
}

func (s testShell) send(msg tea.Msg) tea.Cmd {
	_, cmd := s.root.Update(msg)

	return cmd
}

func (s testShell) scrollLines(lines int) {
	for range lines {
		s.send(tea.KeyMsg{Type: tea.KeyDown})
	}
}

func keyPress(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestFreshSession(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	require.Equal(t, nav.State{Active: nav.Home, MenuExpanded: false}, shell.root.ctrl.State())
	require.False(t, shell.root.fab.Visible())
	require.True(t, shell.root.observer.Mounted())
	require.Equal(t, 1, shell.counts[nav.Home].mounts)

	for _, view := range nav.Views()[1:] {
		require.Zero(t, shell.counts[view].mounts, view.String())
	}
}

func TestStartView(t *testing.T) {
	conf := testConfig()
	conf.StartView = nav.Careers
	shell := newTestShell(t, conf, 120)

	require.Equal(t, nav.Careers, shell.root.ctrl.Active())
	require.Equal(t, 1, shell.counts[nav.Home].unmounts)
	require.Equal(t, 1, shell.counts[nav.Careers].mounts)
}

func TestOnlyActivePageRenders(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	for _, view := range nav.Views() {
		shell.reset()
		shell.send(command.NavigateMsg{View: view})
		output := shell.root.View()

		require.Equal(t, view, shell.root.ctrl.Active())
		require.Contains(t, output, view.String())
		require.Positive(t, shell.counts[view].views)

		for _, other := range nav.Views() {
			if other == view {
				continue
			}
			require.Zero(t, shell.counts[other].views, "%s rendered while %s active", other, view)
			require.Zero(t, shell.counts[other].updates, "%s updated while %s active", other, view)
		}
	}
}

func TestTransitionSwapsMountedPage(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(keyPress("2"))
	require.Equal(t, nav.About, shell.root.ctrl.Active())
	require.Equal(t, 1, shell.counts[nav.Home].unmounts)
	require.Equal(t, 1, shell.counts[nav.About].mounts)

	// Selecting the active view again scrolls but does not remount.
	shell.send(keyPress("2"))
	require.Equal(t, 1, shell.counts[nav.About].mounts)
	require.Zero(t, shell.counts[nav.About].unmounts)
}

func TestTabCycle(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, nav.Contact, shell.root.ctrl.Active())

	shell.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, nav.Home, shell.root.ctrl.Active())
}

func TestTransitionScrollsToTop(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.scrollLines(15)
	require.Equal(t, 15, shell.root.viewport.YOffset)

	shell.send(keyPress("3"))
	require.Zero(t, shell.root.viewport.YOffset)
	require.Zero(t, shell.root.feed.Offset())
}

func TestScrollTopKeepsView(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)
	shell.send(keyPress("3"))
	shell.reset()

	shell.scrollLines(15)
	require.True(t, shell.root.fab.Visible())

	shell.send(command.ScrollToTop())
	require.Zero(t, shell.root.viewport.YOffset)
	require.Zero(t, shell.root.feed.Offset())
	require.False(t, shell.root.fab.Visible())
	require.Equal(t, nav.Services, shell.root.ctrl.Active())
	require.Zero(t, shell.counts[nav.Services].mounts, "no transition happened")
}

func TestFABVisibility(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.scrollLines(10)
	require.Equal(t, 200, shell.root.feed.Offset())
	require.False(t, shell.root.fab.Visible(), "offset equal to the threshold keeps it hidden")
	require.NotContains(t, shell.root.View(), "Contact us")

	shell.scrollLines(1)
	require.True(t, shell.root.fab.Visible())
	require.Contains(t, shell.root.View(), "Contact us")

	shell.send(tea.KeyMsg{Type: tea.KeyUp})
	require.False(t, shell.root.fab.Visible())
}

func TestFABHiddenOnContact(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(keyPress("6"))
	shell.scrollLines(30)
	require.Equal(t, 600, shell.root.feed.Offset())
	require.False(t, shell.root.fab.Visible())
	require.NotContains(t, shell.root.View(), "Contact us")
}

func TestFABVisibleImmediatelyAfterLeavingContact(t *testing.T) {
	conf := testConfig()
	conf.SmoothScroll = true
	shell := newTestShell(t, conf, 120)

	shell.send(keyPress("6"))
	shell.scrollLines(15)
	require.False(t, shell.root.fab.Visible())

	shell.send(keyPress("1"))
	require.Equal(t, nav.Home, shell.root.ctrl.Active())
	require.True(t, shell.root.smooth.Animating())
	require.True(t, shell.root.fab.Visible())
}

func TestFABActivatesContact(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	require.Nil(t, shell.send(keyPress("f")), "hidden FAB ignores its key")
	require.Equal(t, nav.Home, shell.root.ctrl.Active())

	shell.scrollLines(12)
	cmd := shell.send(keyPress("f"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(command.NavigateMsg)
	require.True(t, ok)
	require.Equal(t, nav.Contact, msg.View)

	shell.send(msg)
	require.Equal(t, nav.Contact, shell.root.ctrl.Active())
	require.False(t, shell.root.fab.Visible())
}

func TestCompactMenu(t *testing.T) {
	shell := newTestShell(t, testConfig(), 80)
	require.True(t, shell.root.viewState.Compact)

	collapsed := shell.root.viewState.Content

	shell.send(keyPress("m"))
	require.True(t, shell.root.ctrl.State().MenuExpanded)
	require.Less(t, shell.root.viewState.Content, collapsed, "expanded menu takes space from the content")
	require.Contains(t, shell.root.View(), nav.GetStarted.Label())

	shell.send(keyPress("m"))
	require.False(t, shell.root.ctrl.State().MenuExpanded)
	require.Equal(t, nav.Home, shell.root.ctrl.Active())

	shell.send(keyPress("m"))
	shell.send(keyPress("4"))
	require.Equal(t, nav.State{Active: nav.Careers, MenuExpanded: false}, shell.root.ctrl.State())
	require.Equal(t, collapsed, shell.root.viewState.Content)
}

func TestWideLayoutIgnoresMenuKey(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)
	require.False(t, shell.root.viewState.Compact)

	shell.send(keyPress("m"))
	require.False(t, shell.root.ctrl.State().MenuExpanded)
}

func TestGrowingPastBreakpointClosesMenu(t *testing.T) {
	shell := newTestShell(t, testConfig(), 80)

	shell.send(command.ToggleMenuMsg{})
	require.True(t, shell.root.ctrl.State().MenuExpanded)

	shell.send(tea.WindowSizeMsg{Width: 140, Height: 40})
	require.False(t, shell.root.ctrl.State().MenuExpanded)
}

func TestCapturingPageReceivesNavigationKeys(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(keyPress("5"))
	page := shell.root.registry[nav.GetStarted].(fakePage)
	page.capturing = true
	shell.root.registry[nav.GetStarted] = page
	shell.reset()

	shell.send(keyPress("1"))
	shell.send(keyPress("q"))
	require.Equal(t, nav.GetStarted, shell.root.ctrl.Active())
	require.Equal(t, 2, shell.counts[nav.GetStarted].updates)
	require.False(t, shell.root.released)
}

func TestHelpOverlay(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(keyPress("?"))
	require.True(t, shell.root.showHelp)
	require.Contains(t, shell.root.View(), "Version")

	// Keys belong to the overlay while it is open.
	cmd := shell.send(keyPress("2"))
	require.Nil(t, cmd)
	require.Equal(t, nav.Home, shell.root.ctrl.Active())

	cmd = shell.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	shell.send(cmd())
	require.False(t, shell.root.showHelp)
	require.Equal(t, nav.Home, shell.root.ctrl.Active())
}

func TestConfigReload(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.scrollLines(15)
	require.True(t, shell.root.fab.Visible())

	conf := testConfig()
	conf.ScrollThreshold = 400
	shell.send(conf)
	require.False(t, shell.root.fab.Visible())

	conf.LineHeightPx = 40
	shell.send(conf)
	require.Equal(t, 600, shell.root.feed.Offset())
	require.True(t, shell.root.fab.Visible())
}

func TestQuitReleasesEverything(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	cmd := shell.send(keyPress("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	require.False(t, shell.root.observer.Mounted())
	require.Zero(t, shell.root.ctrl.Listeners())
	require.Zero(t, shell.root.feed.Len())
	require.Equal(t, 1, shell.counts[nav.Home].unmounts)

	shell.root.teardown()
	require.Equal(t, 1, shell.counts[nav.Home].unmounts)
	require.Empty(t, shell.root.View())
}

func TestStatusMessage(t *testing.T) {
	shell := newTestShell(t, testConfig(), 120)

	shell.send(command.StatusMsg{Message: "Copied phone number"})
	require.Contains(t, shell.root.View(), "Copied phone number")

	shell.send(command.ClearStatusMessageMsg{})
	require.NotContains(t, shell.root.View(), "Copied phone number")
}
