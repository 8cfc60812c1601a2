package app

import (
	"context"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/lyrics"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/queue"
)

// Session is the part of playback.Session the interface drives.
type Session interface {
	Select(track catalog.Track) error
	TogglePlay() error
	Next() error
	Previous() error
	SetCatalog(tracks []catalog.Track) error
	ToggleShuffle() bool
	CycleRepeatMode() queue.RepeatMode
	SeekFraction(fraction float64) error
	SetVolume(percent int) error
	Snapshot() playback.State
}

// LyricsFetcher loads lyrics for a track. It never fails; see lyrics.Source.
type LyricsFetcher interface {
	Fetch(ctx context.Context, title, artist string) lyrics.Result
}

// Announcer is told about each new current track.
type Announcer interface {
	Track(t catalog.Track)
}

var (
	_ Session       = (*playback.Session)(nil)
	_ LyricsFetcher = (*lyrics.Source)(nil)
)
