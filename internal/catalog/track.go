// Package catalog defines the track descriptors the player navigates and the
// providers that produce them.
package catalog

import (
	"fmt"
	"time"
)

// Track describes a playable media item.
// Tracks are produced by a Provider and never mutated afterwards.
type Track struct {
	ID            string // opaque external media id (YouTube video id)
	Title         string
	Artist        string
	Album         string
	ThumbnailURL  string
	DurationLabel string // e.g. "3:58", empty when unknown
}

// IsZero returns true if the track has no id.
func (t Track) IsZero() bool {
	return t.ID == ""
}

// String returns "Artist - Title", or just the title when the artist is unknown.
func (t Track) String() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// DurationLabel renders d as m:ss. Minutes are not wrapped into hours.
func DurationLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ThumbnailFor returns the standard YouTube thumbnail of a video id.
func ThumbnailFor(id string) string {
	if id == "" {
		return ""
	}
	return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
}
