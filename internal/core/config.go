package core

// RuntimeConfig contains configuration passed to hosts and games at startup.
type RuntimeConfig struct {
	SurfaceW float64 // Logical surface width the games simulate on
	SurfaceH float64 // Logical surface height
	ScreenW  int     // Terminal width in characters (terminal host only)
	ScreenH  int     // Terminal height in characters (terminal host only)
	TickRate int     // Frames per second requested from the host (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: 800,
		SurfaceH: 600,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
