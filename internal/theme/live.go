package theme

import (
	"image/color"
	"sync"
	"sync/atomic"
)

// Live holds the active theme and lets it be replaced while readers resolve
// against it. Each lookup sees one complete snapshot.
type Live struct {
	current atomic.Pointer[Theme]

	mu   sync.Mutex
	subs map[chan *Theme]struct{}
}

// NewLive creates a live theme starting at t.
func NewLive(t *Theme) *Live {
	l := &Live{subs: make(map[chan *Theme]struct{})}
	l.current.Store(t)
	return l
}

// Load returns the current snapshot.
func (l *Live) Load() *Theme {
	return l.current.Load()
}

// Store swaps in a new snapshot and notifies subscribers.
func (l *Live) Store(t *Theme) {
	l.current.Store(t)

	l.mu.Lock()
	defer l.mu.Unlock()
	for ch := range l.subs {
		select {
		case ch <- t:
		default:
			// Replace the undelivered snapshot with the newer one.
			select {
			case <-ch:
			default:
			}
			ch <- t
		}
	}
}

// Subscribe returns a channel that receives every stored snapshot. A slow
// reader only sees the latest one. cancel stops delivery and closes the
// channel.
func (l *Live) Subscribe() (updates <-chan *Theme, cancel func()) {
	ch := make(chan *Theme, 1)
	l.mu.Lock()
	l.subs[ch] = struct{}{}
	l.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.subs, ch)
			l.mu.Unlock()
			close(ch)
		})
	}
}

// Lookup implements core.ThemeLookup against the current snapshot.
func (l *Live) Lookup(name string) (color.Color, bool) {
	return l.current.Load().Lookup(name)
}
