package app

import (
	"time"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/lyrics"
	"github.com/llehouerou/wavetube/internal/playback"
)

// CatalogLoadedMsg carries a catalog fetch. Seq identifies the request so
// results of superseded fetches can be dropped.
type CatalogLoadedMsg struct {
	Seq    int
	Result catalog.Result
	At     time.Time
}

// LyricsLoadedMsg carries the lyrics of one track.
type LyricsLoadedMsg struct {
	TrackID string
	Result  lyrics.Result
}

// StateMsg is a session snapshot.
type StateMsg playback.State

// TrackChangedMsg reports a new current track.
type TrackChangedMsg playback.TrackChange

// PlaybackErrorMsg reports a player error. The session skips on its own.
type PlaybackErrorMsg playback.ErrorEvent

// SessionClosedMsg is sent once the session has been torn down.
type SessionClosedMsg struct{}

// StderrMsg is a line captured from the process's stderr.
type StderrMsg string

// StatusTickMsg refreshes relative times in the status line.
type StatusTickMsg time.Time
