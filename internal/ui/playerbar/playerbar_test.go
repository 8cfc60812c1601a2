package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/icons"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/queue"
)

func TestRender_NoTrack(t *testing.T) {
	out := ansi.Strip(Render(playback.State{Volume: 70}, 80))

	assert.Contains(t, out, "Nothing playing")
	assert.Contains(t, out, "vol 70%")
	assert.Equal(t, Height, lipgloss.Height(out))
}

func TestRender_Playing(t *testing.T) {
	st := playback.State{
		Track:            &catalog.Track{ID: "a", Title: "Song Title", Artist: "The Band"},
		Playing:          true,
		Progress:         0.5,
		CurrentTimeLabel: "1:00",
		DurationLabel:    "2:00",
		Position:         time.Minute,
		Duration:         2 * time.Minute,
		Volume:           40,
		Shuffle:          true,
		Repeat:           queue.RepeatAll,
	}

	out := ansi.Strip(Render(st, 100))

	assert.Contains(t, out, icons.Play()+" Song Title")
	assert.Contains(t, out, "The Band")
	assert.Contains(t, out, "1:00")
	assert.Contains(t, out, "2:00")
	assert.Contains(t, out, "repeat:all")
	assert.Contains(t, out, "━")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 100)
	}
}

func TestRender_PausedUsesPauseSymbol(t *testing.T) {
	st := playback.State{Track: &catalog.Track{ID: "a", Title: "T"}}

	out := ansi.Strip(Render(st, 60))

	assert.Contains(t, out, icons.Pause())
	assert.Contains(t, out, "0:00")
}

func TestRender_LongTitleTruncated(t *testing.T) {
	st := playback.State{Track: &catalog.Track{ID: "a", Title: strings.Repeat("x", 300)}}

	out := ansi.Strip(Render(st, 50))

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50)
	}
}

func TestBanner(t *testing.T) {
	assert.Empty(t, Banner("", 80))
	assert.Equal(t, " Video not found. Skipping...", ansi.Strip(Banner("Video not found", 80)))
}
