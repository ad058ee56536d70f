package host

import "sync"

// Dispatcher fans events out to attached handlers in attach order. Hosts
// embed one to implement Listen. The zero value is ready to use.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[int]EventHandler
	next     int
}

// Listen attaches fn and returns a function that detaches it. Detaching
// twice is harmless.
func (d *Dispatcher) Listen(fn EventHandler) (detach func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handlers == nil {
		d.handlers = make(map[int]EventHandler)
	}
	d.next++
	id := d.next
	d.handlers[id] = fn
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.handlers, id)
	}
}

// Listeners returns the number of attached handlers.
func (d *Dispatcher) Listeners() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers)
}

// Emit delivers ev to every attached handler on the calling goroutine.
// Handlers may detach themselves while it runs.
func (d *Dispatcher) Emit(ev Event) {
	d.mu.Lock()
	handlers := make([]EventHandler, 0, len(d.handlers))
	for id := 1; id <= d.next; id++ {
		if fn, ok := d.handlers[id]; ok {
			handlers = append(handlers, fn)
		}
	}
	d.mu.Unlock()

	for _, fn := range handlers {
		fn(ev)
	}
}
