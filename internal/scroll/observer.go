package scroll

import (
	"sync"

	"github.com/brightsteps/site/internal/nav"
)

// DefaultThreshold is the offset, in pixels, past which the floating action control appears.
const DefaultThreshold = 200

// Visibility is the floating action control predicate. The contact view always suppresses it.
func Visibility(offset int, threshold int, view nav.View) bool {
	return offset > threshold && view != nav.Contact
}

// Observer tracks Visibility for as long as it is mounted on a Feed and a nav.Controller.
type Observer struct {
	threshold int
	offset    int
	view      nav.View
	visible   bool
	release   func()
}

func NewObserver(threshold int) *Observer {
	return &Observer{threshold: sanitizeThreshold(threshold)}
}

// sanitizeThreshold maps negative thresholds, which would show the control at offset 0, to the default.
func sanitizeThreshold(threshold int) int {
	if threshold < 0 {
		return DefaultThreshold
	}

	return threshold
}

// Mount subscribes to offsets and navigation changes and computes the initial value from the
// feed's last offset and the active view. Mounting again releases the previous subscriptions first.
// The returned release func unsubscribes both exactly once.
func (o *Observer) Mount(feed *Feed, ctrl *nav.Controller) func() {
	if o.release != nil {
		o.release()
	}

	o.offset = feed.Offset()
	o.view = ctrl.Active()
	o.recompute()

	cancelFeed := feed.Subscribe(func(offset int) {
		o.offset = offset
		o.recompute()
	})
	cancelNav := ctrl.Subscribe(func(state nav.State) {
		o.view = state.Active
		o.recompute()
	})

	var once sync.Once
	release := func() {
		once.Do(func() {
			cancelFeed()
			cancelNav()
			o.release = nil
		})
	}
	o.release = release

	return release
}

// Mounted reports whether the observer currently holds subscriptions.
func (o *Observer) Mounted() bool {
	return o.release != nil
}

func (o *Observer) Visible() bool {
	return o.visible
}

// SetThreshold changes the threshold and recomputes with the last known inputs. Negative values
// fall back to DefaultThreshold, as in NewObserver.
func (o *Observer) SetThreshold(threshold int) {
	o.threshold = sanitizeThreshold(threshold)
	o.recompute()
}

func (o *Observer) recompute() {
	o.visible = Visibility(o.offset, o.threshold, o.view)
}
