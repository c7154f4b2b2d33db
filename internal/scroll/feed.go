// Package scroll derives the floating action control visibility from the viewport offset and
// animates scroll-to-top transitions.
package scroll

import "slices"

// Feed fans out viewport offsets to subscribers and remembers the last published value.
type Feed struct {
	offset int
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(offset int)
}

func NewFeed() *Feed {
	return &Feed{}
}

// Subscribe registers fn for future offsets. The cancel func is safe to call repeatedly.
func (f *Feed) Subscribe(fn func(offset int)) func() {
	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, subscriber{id: id, fn: fn})

	return func() {
		f.subs = slices.DeleteFunc(f.subs, func(s subscriber) bool { return s.id == id })
	}
}

// Publish records offset and delivers it to every subscriber.
func (f *Feed) Publish(offset int) {
	f.offset = offset
	for _, sub := range slices.Clone(f.subs) {
		sub.fn(offset)
	}
}

// Offset is the most recently published value.
func (f *Feed) Offset() int {
	return f.offset
}

func (f *Feed) Len() int {
	return len(f.subs)
}
