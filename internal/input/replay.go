package input

// Replay remembers where the pointer was last seen. A new round builds a fresh game
// whose pointer sits at a default position, and a pointer that is held still sends
// no further events; Sync hands such a round the remembered position.
type Replay struct {
	last  Event
	known bool
	round string
}

// Observe records the position carried by e.
func (r *Replay) Observe(e Event) {
	r.last = Event{Kind: EventMove, ClientX: e.ClientX, ClientY: e.ClientY}
	r.known = true
}

// Sync publishes the remembered position as a move, once per round key.
// It reports whether an event was published.
func (r *Replay) Sync(round string, hub *Hub) bool {
	if round == "" || round == r.round {
		return false
	}
	r.round = round
	if !r.known || hub == nil {
		return false
	}
	hub.Publish(r.last)
	return true
}
