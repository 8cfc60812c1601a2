package playback

import (
	"math/rand/v2"
	"time"

	"github.com/llehouerou/wavetube/internal/queue"
)

const (
	DefaultAPIPollInterval  = 500 * time.Millisecond
	DefaultProgressInterval = time.Second
	DefaultSkipDelay        = 3 * time.Second
	DefaultVolume           = 70
)

// Config tunes a Session. Zero durations take the defaults; Volume is used
// as given, clamped to [0,100], so 0 starts muted. DefaultConfig sets it to
// DefaultVolume.
type Config struct {
	APIPollInterval  time.Duration
	ProgressInterval time.Duration
	SkipDelay        time.Duration
	Volume           int

	// Origin is passed to the player as scheme://host.
	Origin string
	// Params override player.DefaultParams.
	Params map[string]string

	Shuffle bool
	Repeat  queue.RepeatMode

	// Picker chooses shuffle targets; rand.IntN when nil.
	Picker queue.Picker
}

// DefaultConfig returns the stock timings and volume.
func DefaultConfig() Config {
	return Config{
		APIPollInterval:  DefaultAPIPollInterval,
		ProgressInterval: DefaultProgressInterval,
		SkipDelay:        DefaultSkipDelay,
		Volume:           DefaultVolume,
	}
}

func (c Config) withDefaults() Config {
	if c.APIPollInterval <= 0 {
		c.APIPollInterval = DefaultAPIPollInterval
	}
	if c.ProgressInterval <= 0 {
		c.ProgressInterval = DefaultProgressInterval
	}
	if c.SkipDelay <= 0 {
		c.SkipDelay = DefaultSkipDelay
	}
	c.Volume = clampVolume(c.Volume)
	if c.Picker == nil {
		c.Picker = rand.IntN
	}
	return c
}

func clampVolume(v int) int {
	return max(0, min(100, v))
}
