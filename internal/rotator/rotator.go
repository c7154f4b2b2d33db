// Package rotator advances a bounded index on a fixed period. It follows the bubbles timer
// pattern: every tick carries the rotator's ID and a generation tag, and stopping bumps the tag so
// ticks already in flight are dropped.
package rotator

import (
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultPeriod is the automatic advance interval.
const DefaultPeriod = 5 * time.Second

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg advances the rotator whose ID matches.
type TickMsg struct {
	ID   int
	Time time.Time
	tag  int
}

type Option func(*Model)

// WithResetOnSelect restarts the period whenever Select is called. The default keeps the running
// timer untouched.
func WithResetOnSelect(reset bool) Option {
	return func(m *Model) {
		m.resetOnSelect = reset
	}
}

// Model is the rotator state. It is a value type like the other bubbletea models.
type Model struct {
	id            int
	tag           int
	index         int
	count         int
	period        time.Duration
	running       bool
	resetOnSelect bool
}

// New returns a stopped rotator over count items starting at index 0.
func New(count int, period time.Duration, opts ...Option) Model {
	if period <= 0 {
		period = DefaultPeriod
	}

	model := Model{
		id:     nextID(),
		count:  count,
		period: period,
	}

	for _, opt := range opts {
		opt(&model)
	}

	return model
}

func (m Model) ID() int {
	return m.id
}

func (m Model) Index() int {
	return m.index
}

func (m Model) Len() int {
	return m.count
}

func (m Model) Period() time.Duration {
	return m.period
}

func (m Model) Running() bool {
	return m.running
}

// Advance moves to the next index, wrapping to 0.
func (m Model) Advance() Model {
	if m.count == 0 {
		return m
	}

	m.index = (m.index + 1) % m.count

	return m
}

// Select jumps straight to idx. Indicators are built from the same items, so an out of range idx
// is a bug in the caller and panics.
func (m Model) Select(idx int) (Model, tea.Cmd) {
	if idx < 0 || idx >= m.count {
		panic(fmt.Sprintf("rotator: select index %d out of range [0,%d)", idx, m.count))
	}

	m.index = idx
	if m.resetOnSelect && m.running {
		m.tag++

		return m, m.tick()
	}

	return m, nil
}

// SetPeriod takes effect on the next scheduled tick.
func (m Model) SetPeriod(period time.Duration) Model {
	if period > 0 {
		m.period = period
	}

	return m
}

// SetResetOnSelect switches the manual selection policy.
func (m Model) SetResetOnSelect(reset bool) Model {
	m.resetOnSelect = reset

	return m
}

// Start arms the timer. Any tick scheduled by an earlier Start is invalidated, so repeated mounts
// never stack timers.
func (m Model) Start() (Model, tea.Cmd) {
	m.tag++
	m.running = true

	if m.count < 2 {
		return m, nil
	}

	return m, m.tick()
}

// Stop disarms the timer. A tick that is already scheduled is ignored when it arrives.
func (m Model) Stop() Model {
	m.tag++
	m.running = false

	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.ID != m.id || msg.tag != m.tag || !m.running {
			return m, nil
		}

		m = m.Advance()

		return m, m.tick()
	}

	return m, nil
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag

	return tea.Tick(m.period, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t, tag: tag}
	})
}
