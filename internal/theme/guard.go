package theme

// Guard is the in-flight flag that keeps propagation from re-entering.
// It is confined to the engine's loop and is not safe for concurrent use.
type Guard struct {
	held bool
}

// TryAcquire takes the guard and reports whether it was free.
func (g *Guard) TryAcquire() bool {
	if g.held {
		return false
	}
	g.held = true
	return true
}

// Release frees the guard.
func (g *Guard) Release() {
	g.held = false
}

// Held reports whether a propagation is in flight.
func (g *Guard) Held() bool {
	return g.held
}
