package playback

import (
	"errors"

	"github.com/llehouerou/wavetube/internal/player"
)

var (
	// ErrClosed is returned by calls made after Teardown.
	ErrClosed = errors.New("playback session closed")
	// ErrNotReady is returned when a command needs a ready player.
	ErrNotReady = errors.New("player not ready")
)

// ErrorKind is the user-facing classification of a player error.
type ErrorKind int

const (
	ErrorNone ErrorKind = iota
	EmbedRestricted
	NotFound
	PlaybackFailed
)

// Classify maps a player error code onto an ErrorKind.
func Classify(code player.ErrorCode) ErrorKind {
	switch code {
	case player.CodeEmbedNotAllowed, player.CodeEmbedNotAllowedAlso:
		return EmbedRestricted
	case player.CodeNotFound:
		return NotFound
	default:
		return PlaybackFailed
	}
}

// Label returns the message shown while the error is pending.
func (k ErrorKind) Label() string {
	switch k {
	case ErrorNone:
		return ""
	case EmbedRestricted:
		return "Playback restricted by YouTube"
	case NotFound:
		return "Video not found"
	default:
		return "Playback error"
	}
}

// String returns the kind name for logs.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "None"
	case EmbedRestricted:
		return "EmbedRestricted"
	case NotFound:
		return "NotFound"
	case PlaybackFailed:
		return "PlaybackFailed"
	default:
		return "Unknown"
	}
}
