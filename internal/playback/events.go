package playback

import (
	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/player"
)

// TrackChange is emitted when the intent moves to a different track, or to
// the same track with a forced reload.
//
// Emitted by SetIntent, Select, Next, Previous, end-of-track advancement and
// error auto-skip. A cue from SetCatalog emits it too.
//
// NOT emitted by play/pause toggles on the current track.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
	Reload   bool
}

// ErrorEvent is emitted when the player reports a playback error.
// The session skips to the next track after the configured delay.
type ErrorEvent struct {
	Kind    ErrorKind
	Code    player.ErrorCode
	TrackID string
	Message string
}
