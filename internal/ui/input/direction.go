package input

// Direction is a keyboard movement. The shell scrolls with it and forms cycle focus with it.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Left
	Right
)

// Delta is the step along the direction's axis, -1 towards the start and 1 towards the end.
func (d Direction) Delta() int {
	if d == Up || d == Left {
		return -1
	}

	return 1
}

// Vertical reports whether the direction moves between lines.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}
