package input

// Listener receives pointer events.
type Listener func(Event)

// Hub fans pointer events out to subscribed listeners.
// Hosts publish every raw event they receive; microgames subscribe on Attach and
// unsubscribe on Detach so a discarded round never sees input again.
type Hub struct {
	listeners map[int]Listener
	order     []int
	nextID    int
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// Subscribe registers l and returns a function that removes it.
// The returned function is safe to call more than once.
func (h *Hub) Subscribe(l Listener) (unsubscribe func()) {
	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	h.order = append(h.order, id)

	return func() {
		if _, ok := h.listeners[id]; !ok {
			return
		}
		delete(h.listeners, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers e to every listener in subscription order.
func (h *Hub) Publish(e Event) {
	// Copy so a listener may unsubscribe while being called
	ids := append([]int(nil), h.order...)
	for _, id := range ids {
		if l, ok := h.listeners[id]; ok {
			l(e)
		}
	}
}

// Len returns the number of active listeners.
func (h *Hub) Len() int {
	return len(h.listeners)
}
