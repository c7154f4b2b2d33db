package nav

import "slices"

// Scroller performs the scroll-to-top side effect of a transition.
type Scroller interface {
	ScrollToTop()
}

// ScrollerFunc adapts a plain function to the Scroller interface.
type ScrollerFunc func()

func (f ScrollerFunc) ScrollToTop() { f() }

// State is the navigation state of a running session. It is never persisted.
type State struct {
	Active       View
	MenuExpanded bool
}

// Controller owns the navigation State. All mutation goes through TransitionTo, ToggleMenu
// and CloseMenu. It is not safe for concurrent use; the ui update loop is its only caller.
type Controller struct {
	state     State
	scroller  Scroller
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(State)
}

// New returns a controller on the home view with the menu collapsed.
func New(scroller Scroller) *Controller {
	if scroller == nil {
		scroller = ScrollerFunc(func() {})
	}

	return &Controller{
		state:    State{Active: Home, MenuExpanded: false},
		scroller: scroller,
	}
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Active() View {
	return c.state.Active
}

// TransitionTo activates view, collapses the menu and scrolls to the top. Listeners are notified
// before the scroll starts so they observe the new view with the offset that was on screen.
// Transitioning to the already active view still scrolls.
func (c *Controller) TransitionTo(view View) {
	c.state.Active = view
	c.state.MenuExpanded = false
	c.notify()
	c.scroller.ScrollToTop()
}

// ToggleMenu flips the collapsed mobile menu. The active view is untouched.
func (c *Controller) ToggleMenu() {
	c.state.MenuExpanded = !c.state.MenuExpanded
	c.notify()
}

func (c *Controller) CloseMenu() {
	if !c.state.MenuExpanded {
		return
	}

	c.state.MenuExpanded = false
	c.notify()
}

// Subscribe registers fn to receive every state change. The returned cancel func removes it and
// may be called more than once.
func (c *Controller) Subscribe(fn func(State)) func() {
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})

	return func() {
		c.listeners = slices.DeleteFunc(c.listeners, func(l listener) bool { return l.id == id })
	}
}

// Listeners reports the number of live subscriptions.
func (c *Controller) Listeners() int {
	return len(c.listeners)
}

func (c *Controller) notify() {
	for _, l := range slices.Clone(c.listeners) {
		l.fn(c.state)
	}
}
