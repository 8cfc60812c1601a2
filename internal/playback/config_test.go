package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := Config{Volume: 0}.withDefaults()

	assert.Equal(t, DefaultAPIPollInterval, c.APIPollInterval)
	assert.Equal(t, DefaultProgressInterval, c.ProgressInterval)
	assert.Equal(t, DefaultSkipDelay, c.SkipDelay)
	assert.Zero(t, c.Volume, "an explicit 0 volume starts muted")
	assert.NotNil(t, c.Picker)

	assert.Equal(t, 100, Config{Volume: 140}.withDefaults().Volume)
	assert.Equal(t, DefaultVolume, DefaultConfig().withDefaults().Volume)
}
