// Package nav holds the closed set of site views and the controller that decides which one is on screen.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownView = errors.New("unknown view")

// View identifies one of the top level pages. The slot is unexported so the only values that exist
// outside this package are the ones declared below. The zero value is Home.
type View struct {
	slot uint8
}

// The six views. Do not reassign them: Views, ParseView, Next and Prev build their results from
// the slot table, not from these variables.
var (
	Home       = View{slot: 0}
	About      = View{slot: 1}
	Services   = View{slot: 2}
	Careers    = View{slot: 3}
	GetStarted = View{slot: 4}
	Contact    = View{slot: 5}
)

type viewInfo struct {
	name  string
	label string
}

var registry = [...]viewInfo{
	{name: "home", label: "Home"},
	{name: "about", label: "About Us"},
	{name: "services", label: "Services"},
	{name: "careers", label: "Careers"},
	{name: "get-started", label: "Get Started"},
	{name: "contact", label: "Contact"},
}

// Views returns every view in menu order.
func Views() []View {
	views := make([]View, len(registry))
	for idx := range registry {
		views[idx] = View{slot: uint8(idx)} //nolint:gosec
	}

	return views
}

// String returns the slug used in config files and flags.
func (v View) String() string {
	return registry[v.slot].name
}

// Label is the human readable menu title.
func (v View) Label() string {
	return registry[v.slot].label
}

// Index is the position of the view in menu order, starting at 0.
func (v View) Index() int {
	return int(v.slot)
}

// Next returns the following view in menu order, wrapping to the first.
func (v View) Next() View {
	return View{slot: uint8((int(v.slot) + 1) % len(registry))} //nolint:gosec
}

// Prev returns the preceding view in menu order, wrapping to the last.
func (v View) Prev() View {
	return View{slot: uint8((int(v.slot) + len(registry) - 1) % len(registry))} //nolint:gosec
}

// ParseView resolves a slug or label, case-insensitively, into a View.
func ParseView(value string) (View, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for idx, info := range registry {
		if needle == info.name || needle == strings.ToLower(info.label) {
			return View{slot: uint8(idx)}, nil //nolint:gosec
		}
	}

	return Home, fmt.Errorf("%w: %q", ErrUnknownView, value)
}

func (v View) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *View) UnmarshalText(text []byte) error {
	parsed, err := ParseView(string(text))
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}
