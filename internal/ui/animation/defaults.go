package animation

import "time"

// DefaultConfig returns a two second pulse dipping to half opacity.
func DefaultConfig() Config {
	return Config{
		Period:     2 * time.Second,
		Frames:     20,
		MinOpacity: 0.5,
	}
}
