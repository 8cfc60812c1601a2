package playback

import (
	"time"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/queue"
)

// Status is the coarse playback status shown to remote controls.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusStopped:
		return "Stopped"
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusPaused
}

// Intent is the playback target set by user actions.
type Intent struct {
	Track   *catalog.Track
	Playing bool
}

// State is a snapshot of the session, safe to read from any goroutine.
type State struct {
	Ready            bool
	Playing          bool
	Progress         float64 // [0,1]
	CurrentTimeLabel string
	DurationLabel    string
	Position         time.Duration
	Duration         time.Duration
	Volume           int // [0,100]
	ErrorMessage     string
	Track            *catalog.Track
	DesiredPlaying   bool
	Shuffle          bool
	Repeat           queue.RepeatMode
}

// Status derives the coarse status from the snapshot.
func (s State) Status() Status {
	switch {
	case s.Track == nil:
		return StatusStopped
	case s.Playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

// FormatTime renders d as m:ss. Minutes are not wrapped into hours.
func FormatTime(d time.Duration) string {
	return catalog.DurationLabel(d)
}
