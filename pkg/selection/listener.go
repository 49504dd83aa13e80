package selection

import "sync"

// KeyHandler receives key events and reports whether it consumed them.
type KeyHandler func(KeyEvent) bool

// KeySource delivers key events to subscribers until they unsubscribe.
type KeySource interface {
	Subscribe(h KeyHandler) (unsubscribe func())
}

// Listen subscribes the controller to src for as long as its view is active.
// Calling Listen again while subscribed returns the same release func without
// subscribing twice. Release is safe to call more than once.
func (c *Controller) Listen(src KeySource) (release func()) {
	if c.release != nil {
		return c.release
	}
	unsubscribe := src.Subscribe(c.HandleKey)
	var once sync.Once
	c.release = func() {
		once.Do(func() {
			unsubscribe()
			c.release = nil
		})
	}
	return c.release
}

// Listening reports whether the controller currently holds a subscription.
func (c *Controller) Listening() bool {
	return c.release != nil
}

// Bus is an in-process KeySource. Handlers run in subscription order and
// dispatch stops at the first handler that consumes the event.
type Bus struct {
	nextID   int
	handlers []busEntry
}

type busEntry struct {
	id int
	h  KeyHandler
}

// Subscribe adds a handler and returns its unsubscribe func.
func (b *Bus) Subscribe(h KeyHandler) func() {
	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, busEntry{id: id, h: h})
	return func() {
		for i, e := range b.handlers {
			if e.id == id {
				b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers ev and reports whether any handler consumed it.
func (b *Bus) Dispatch(ev KeyEvent) bool {
	for _, e := range append([]busEntry(nil), b.handlers...) {
		if e.h(ev) {
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	return len(b.handlers)
}
