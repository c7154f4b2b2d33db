package scroll

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmoothReachesTop(t *testing.T) {
	smooth := NewSmooth(60, true)
	smooth.ScrollToTop()

	offset, cmd := smooth.Take(40)
	require.Equal(t, 40, offset)
	require.NotNil(t, cmd)
	require.True(t, smooth.Animating())

	prev := offset
	for range 600 {
		next, nextCmd, ok := smooth.Step(FrameMsg{ID: smooth.id, tag: smooth.tag})
		require.True(t, ok)
		require.LessOrEqual(t, next, prev)
		prev = next
		if nextCmd == nil {
			break
		}
	}

	require.Zero(t, prev)
	require.False(t, smooth.Animating())
}

func TestSmoothDisabledJumps(t *testing.T) {
	smooth := NewSmooth(60, false)
	smooth.ScrollToTop()

	offset, cmd := smooth.Take(40)
	require.Zero(t, offset)
	require.Nil(t, cmd)
}

func TestSmoothNothingPending(t *testing.T) {
	smooth := NewSmooth(60, true)

	offset, cmd := smooth.Take(12)
	require.Equal(t, 12, offset)
	require.Nil(t, cmd)
}

func TestSmoothStaleFrames(t *testing.T) {
	smooth := NewSmooth(60, true)
	smooth.ScrollToTop()
	_, _ = smooth.Take(30)
	stale := FrameMsg{ID: smooth.id, tag: smooth.tag}

	smooth.Interrupt()
	_, _, ok := smooth.Step(stale)
	require.False(t, ok)

	other := NewSmooth(60, true)
	other.ScrollToTop()
	_, _ = other.Take(30)
	_, _, ok = smooth.Step(FrameMsg{ID: other.id, tag: other.tag})
	require.False(t, ok)
}
