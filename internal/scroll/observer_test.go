package scroll_test

import (
	"testing"

	"github.com/brightsteps/site/internal/nav"
	"github.com/brightsteps/site/internal/scroll"
	"github.com/stretchr/testify/require"
)

func TestVisibility(t *testing.T) {
	require.False(t, scroll.Visibility(0, scroll.DefaultThreshold, nav.Home))
	require.False(t, scroll.Visibility(200, scroll.DefaultThreshold, nav.Home))
	require.True(t, scroll.Visibility(201, scroll.DefaultThreshold, nav.Home))

	for _, view := range nav.Views() {
		require.Equal(t, view != nav.Contact, scroll.Visibility(10_000, scroll.DefaultThreshold, view))
	}
}

func TestObserverFreshSession(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)

	release := observer.Mount(feed, ctrl)
	defer release()

	require.False(t, observer.Visible())
	require.True(t, observer.Mounted())
}

func TestObserverInitialValueFromFeed(t *testing.T) {
	feed := scroll.NewFeed()
	feed.Publish(500)
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)

	release := observer.Mount(feed, ctrl)
	defer release()

	require.True(t, observer.Visible())
}

func TestObserverScrollEvents(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)
	release := observer.Mount(feed, ctrl)
	defer release()

	feed.Publish(250)
	require.True(t, observer.Visible())

	feed.Publish(100)
	require.False(t, observer.Visible())
}

func TestObserverContactSuppresses(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)
	release := observer.Mount(feed, ctrl)
	defer release()

	feed.Publish(900)
	require.True(t, observer.Visible())

	ctrl.TransitionTo(nav.Contact)
	require.False(t, observer.Visible())

	feed.Publish(1200)
	require.False(t, observer.Visible())
}

func TestObserverLeavingContactRecomputes(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)
	release := observer.Mount(feed, ctrl)
	defer release()

	ctrl.TransitionTo(nav.Contact)
	feed.Publish(400)
	require.False(t, observer.Visible())

	// No scroll event in between, the transition alone must flip it.
	ctrl.TransitionTo(nav.Home)
	require.True(t, observer.Visible())
}

func TestObserverRelease(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)

	release := observer.Mount(feed, ctrl)
	require.Equal(t, 1, feed.Len())
	require.Equal(t, 1, ctrl.Listeners())

	release()
	release()
	require.Zero(t, feed.Len())
	require.Zero(t, ctrl.Listeners())
	require.False(t, observer.Mounted())

	feed.Publish(1000)
	require.False(t, observer.Visible())
}

func TestObserverRemountDoesNotLeak(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)

	for range 5 {
		observer.Mount(feed, ctrl)
	}

	require.Equal(t, 1, feed.Len())
	require.Equal(t, 1, ctrl.Listeners())
}

func TestSetThreshold(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(scroll.DefaultThreshold)
	release := observer.Mount(feed, ctrl)
	defer release()

	feed.Publish(150)
	require.False(t, observer.Visible())

	observer.SetThreshold(100)
	require.True(t, observer.Visible())
}

func TestSetThresholdNegativeFallsBack(t *testing.T) {
	feed := scroll.NewFeed()
	ctrl := nav.New(nil)
	observer := scroll.NewObserver(-1)
	release := observer.Mount(feed, ctrl)
	defer release()

	require.False(t, observer.Visible(), "fresh session stays hidden")

	observer.SetThreshold(-1)
	require.False(t, observer.Visible(), "reloaded negative threshold still hides at offset 0")

	feed.Publish(scroll.DefaultThreshold)
	require.False(t, observer.Visible())

	feed.Publish(scroll.DefaultThreshold + 1)
	require.True(t, observer.Visible())
}
