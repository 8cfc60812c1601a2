// Package player defines the capability the playback session needs from an
// externally controlled media player, plus a Mock for tests.
package player

import "time"

// API is the entry point of an external player backend.
// Available reports false until the backend accepts NewHandle.
type API interface {
	Available() bool
	NewHandle(opts Options) (Handle, error)
}

// Handle is a live player instance. Commands may fail while the player is in
// a transitional state; callers are expected to log and move on.
type Handle interface {
	Load(id string) error
	Play() error
	Pause() error
	SeekTo(pos time.Duration) error
	SetVolume(percent int) error
	CurrentTime() (time.Duration, error)
	Duration() (time.Duration, error)

	// Events delivers Ready once, then state changes and errors in order.
	Events() <-chan Event
	Close() error
}
