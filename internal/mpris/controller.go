package mpris

import (
	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/queue"
)

// Controller is the part of *playback.Session the adapter drives.
type Controller interface {
	Play() error
	Pause() error
	TogglePlay() error
	Next() error
	Previous() error
	SeekFraction(fraction float64) error
	SetVolume(percent int) error
	SetShuffle(enabled bool) error
	SetRepeatMode(mode queue.RepeatMode) error
	Catalog() []catalog.Track
	Snapshot() playback.State
}

var _ Controller = (*playback.Session)(nil)
