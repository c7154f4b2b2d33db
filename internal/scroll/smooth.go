package scroll

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 7.0
	springDamping   = 1.0
	defaultFPS      = 60
)

var lastID atomic.Int64

// FrameMsg advances a running scroll-to-top animation.
type FrameMsg struct {
	ID  int
	tag int
}

// Smooth implements nav.Scroller by animating the viewport offset back to 0 with a critically
// damped spring. When disabled the offset jumps straight to 0.
type Smooth struct {
	id        int
	tag       int
	enabled   bool
	pending   bool
	animating bool
	fps       int
	spring    harmonica.Spring
	pos       float64
	vel       float64
}

func NewSmooth(fps int, enabled bool) *Smooth {
	if fps <= 0 {
		fps = defaultFPS
	}

	return &Smooth{
		id:      int(lastID.Add(1)),
		enabled: enabled,
		fps:     fps,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

// ScrollToTop records the request. The owner collects it with Take once its update is done.
func (s *Smooth) ScrollToTop() {
	s.pending = true
}

// SetEnabled switches between animating and jumping. A running animation finishes as it started.
func (s *Smooth) SetEnabled(enabled bool) {
	s.enabled = enabled
}

func (s *Smooth) Animating() bool {
	return s.animating
}

// Take starts a requested scroll from offset. It returns the offset the viewport should show now
// and the command driving the next frame. Without a pending request it returns offset unchanged.
func (s *Smooth) Take(offset int) (int, tea.Cmd) {
	if !s.pending {
		return offset, nil
	}

	s.pending = false
	s.tag++

	if !s.enabled || offset <= 0 {
		s.animating = false

		return 0, nil
	}

	s.pos = float64(offset)
	s.vel = 0
	s.animating = true

	return offset, s.frame()
}

// Interrupt cancels a running animation, typically because the user scrolled manually.
func (s *Smooth) Interrupt() {
	if !s.animating {
		return
	}

	s.tag++
	s.animating = false
}

// Step applies a frame. ok is false for frames that belong to another Smooth or to an animation
// that was interrupted or replaced.
func (s *Smooth) Step(msg FrameMsg) (int, tea.Cmd, bool) {
	if msg.ID != s.id || msg.tag != s.tag || !s.animating {
		return 0, nil, false
	}

	s.pos, s.vel = s.spring.Update(s.pos, s.vel, 0)
	if s.pos < 0.5 {
		s.pos = 0
		s.vel = 0
		s.animating = false

		return 0, nil, true
	}

	return int(math.Round(s.pos)), s.frame(), true
}

func (s *Smooth) frame() tea.Cmd {
	id, tag := s.id, s.tag

	return tea.Tick(time.Second/time.Duration(s.fps), func(_ time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}
