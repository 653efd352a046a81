package core

import "testing"

func TestSpawnTimerFirstStepSpawns(t *testing.T) {
	st := NewSpawnTimer(200, 1)

	if st.Tick(0) {
		t.Error("Tick(0) should never spawn")
	}
	if !st.Tick(16) {
		t.Error("first positive Tick should spawn")
	}
	if st.Remaining() != 184 {
		t.Errorf("Remaining() = %v, expected 184 (overshoot carried)", st.Remaining())
	}
}

func TestSpawnTimerIntervalScalesWithSpeed(t *testing.T) {
	st := NewSpawnTimer(500, 2)
	if st.Interval() != 250 {
		t.Errorf("Interval() = %v, expected 250", st.Interval())
	}

	slow := NewSpawnTimer(500, 0)
	if slow.Interval() != 500/MinSpeedMultiplier {
		t.Errorf("Interval() with zero speed = %v, expected clamped multiplier", slow.Interval())
	}
}

func TestSpawnTimerCarriesOvershoot(t *testing.T) {
	st := NewSpawnTimer(100, 1)
	st.Tick(1) // initial spawn, remaining = 99

	spawns := 0
	for i := 0; i < 30; i++ {
		if st.Tick(10) {
			spawns++
		}
	}
	// 300ms elapsed after the first spawn at 100ms intervals
	if spawns != 3 {
		t.Errorf("spawns over 300ms = %d, expected 3", spawns)
	}
}

func TestSpawnTimerOneSpawnPerTick(t *testing.T) {
	st := NewSpawnTimer(100, 1)

	if !st.Tick(350) {
		t.Fatal("large step should spawn")
	}
	// Deficit carried: -350 + 100 = -250
	if st.Remaining() != -250 {
		t.Errorf("Remaining() = %v, expected -250", st.Remaining())
	}
	if !st.Tick(1) {
		t.Error("carried deficit should spawn on the next tick")
	}
}
