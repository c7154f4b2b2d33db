package model

// ViewState tracks the layout shared between the shell and the active page.
type ViewState struct {
	// ---------  h
	// | header |  e
	// |--------|  i
	// | content|  g
	// |--------|  h
	// | footer |  t
	// W i d t h
	Width  int
	Height int
	// Content is the number of lines available to the scrolling content area.
	Content int
	// Compact is set when the width is below the menu breakpoint and the nav bar collapses.
	Compact bool
}
