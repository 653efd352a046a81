package core

// SpawnTimer is a countdown accumulator that paces entity creation.
// The timer starts expired so the first positive step of a round spawns immediately.
type SpawnTimer struct {
	remaining float64 // Milliseconds until the next spawn; may go negative
	interval  float64 // Milliseconds between spawns at the current speed
}

// NewSpawnTimer creates a timer firing every baseInterval/speedMultiplier milliseconds.
func NewSpawnTimer(baseIntervalMS, speedMultiplier float64) SpawnTimer {
	return SpawnTimer{
		interval: baseIntervalMS / NormalizeSpeed(speedMultiplier),
	}
}

// Interval returns the effective spawn interval in milliseconds.
func (t SpawnTimer) Interval() float64 {
	return t.interval
}

// Remaining returns the milliseconds left before the next spawn.
func (t SpawnTimer) Remaining() float64 {
	return t.remaining
}

// Tick advances the timer by dt milliseconds and reports whether one entity should spawn.
// The overshoot below zero is carried into the next interval. At most one spawn is
// reported per call; a remaining deficit fires again on the next call.
func (t *SpawnTimer) Tick(dt float64) bool {
	if !ValidStep(dt) {
		return false
	}
	t.remaining -= dt
	if t.remaining > 0 {
		return false
	}
	t.remaining += t.interval
	return true
}
