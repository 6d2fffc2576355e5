// Package pulse is a minimal in-process change broadcaster. Stores publish
// after every successful mutation; dependents subscribe and decide for
// themselves whether anything relevant changed.
package pulse

import "sync"

// Broadcaster fans out change notifications to registered listeners.
// Notifications carry no payload: listeners re-read whatever state they
// depend on. Delivery is synchronous in Publish order.
type Broadcaster struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func()
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{listeners: map[int]func(){}}
}

// Subscribe registers fn and returns an unsubscribe function.
func (b *Broadcaster) Subscribe(fn func()) (cancel func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// Publish invokes every listener. Listeners run on the publishing goroutine;
// they must not block.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
