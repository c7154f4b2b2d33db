package nav_test

import (
	"testing"

	"github.com/brightsteps/site/internal/nav"
	"github.com/stretchr/testify/require"
)

type countingScroller struct {
	calls int
}

func (s *countingScroller) ScrollToTop() { s.calls++ }

func TestInitialState(t *testing.T) {
	ctrl := nav.New(nil)
	require.Equal(t, nav.State{Active: nav.Home, MenuExpanded: false}, ctrl.State())

	var zero nav.View
	require.Equal(t, nav.Home, zero)
}

func TestTransitionTo(t *testing.T) {
	scroller := &countingScroller{}
	ctrl := nav.New(scroller)

	for idx, view := range nav.Views() {
		ctrl.TransitionTo(view)
		require.Equal(t, view, ctrl.Active())
		require.Equal(t, idx+1, scroller.calls)
	}
}

func TestTransitionSameViewStillScrolls(t *testing.T) {
	scroller := &countingScroller{}
	ctrl := nav.New(scroller)

	ctrl.TransitionTo(nav.Home)
	ctrl.TransitionTo(nav.Home)

	require.Equal(t, nav.Home, ctrl.Active())
	require.Equal(t, 2, scroller.calls)
}

func TestTransitionClosesMenu(t *testing.T) {
	ctrl := nav.New(nil)
	ctrl.ToggleMenu()
	require.True(t, ctrl.State().MenuExpanded)

	ctrl.TransitionTo(nav.Services)
	require.False(t, ctrl.State().MenuExpanded)
	require.Equal(t, nav.Services, ctrl.Active())
}

func TestToggleMenuInvolution(t *testing.T) {
	ctrl := nav.New(nil)
	ctrl.TransitionTo(nav.Careers)
	before := ctrl.State()

	ctrl.ToggleMenu()
	require.NotEqual(t, before.MenuExpanded, ctrl.State().MenuExpanded)
	require.Equal(t, nav.Careers, ctrl.Active())

	ctrl.ToggleMenu()
	require.Equal(t, before, ctrl.State())
}

func TestListenersSeeStateBeforeScroll(t *testing.T) {
	var order []string
	ctrl := nav.New(nav.ScrollerFunc(func() { order = append(order, "scroll") }))
	cancel := ctrl.Subscribe(func(state nav.State) {
		order = append(order, "notify:"+state.Active.String())
	})

	ctrl.TransitionTo(nav.Contact)
	require.Equal(t, []string{"notify:contact", "scroll"}, order)

	cancel()
	cancel()
	require.Zero(t, ctrl.Listeners())

	ctrl.TransitionTo(nav.Home)
	require.Equal(t, []string{"notify:contact", "scroll", "scroll"}, order)
}

func TestDeclaredViewsMatchMenuOrder(t *testing.T) {
	declared := []nav.View{nav.Home, nav.About, nav.Services, nav.Careers, nav.GetStarted, nav.Contact}
	slugs := []string{"home", "about", "services", "careers", "get-started", "contact"}

	require.Equal(t, declared, nav.Views())
	for idx, view := range declared {
		require.Equal(t, idx, view.Index())
		require.Equal(t, slugs[idx], view.String())
	}
}

func TestParseView(t *testing.T) {
	for _, view := range nav.Views() {
		parsed, err := nav.ParseView(view.String())
		require.NoError(t, err)
		require.Equal(t, view, parsed)
	}

	parsed, errLabel := nav.ParseView("Get Started")
	require.NoError(t, errLabel)
	require.Equal(t, nav.GetStarted, parsed)

	_, err := nav.ParseView("blog")
	require.ErrorIs(t, err, nav.ErrUnknownView)
}

func TestUnmarshalText(t *testing.T) {
	var view nav.View
	require.NoError(t, view.UnmarshalText([]byte("contact")))
	require.Equal(t, nav.Contact, view)
	require.Error(t, view.UnmarshalText([]byte("nope")))
	require.Equal(t, nav.Contact, view)
}

func TestNextPrevWrap(t *testing.T) {
	require.Equal(t, nav.Home, nav.Contact.Next())
	require.Equal(t, nav.Contact, nav.Home.Prev())
	require.Equal(t, nav.About, nav.Home.Next())

	view := nav.Home
	for range nav.Views() {
		view = view.Next()
	}
	require.Equal(t, nav.Home, view)
}
