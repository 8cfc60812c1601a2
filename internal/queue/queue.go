// Package queue resolves which catalog track plays next or previous.
//
// Everything here is a pure function of its arguments: no player access and no
// state. The playback session owns the catalog, current track and modes and
// calls in here whenever it needs a navigation decision.
package queue

import "github.com/llehouerou/wavetube/internal/catalog"

// NotFound is returned by IndexOf when the track is not in the catalog.
const NotFound = -1

// Picker returns a uniformly random index in [0, n). n is always > 0.
type Picker func(n int) int

// Resolution is the outcome of a forward navigation.
type Resolution struct {
	Track *catalog.Track // nil when there is nothing to play

	// Reload is set when Track is the current track and must be loaded again.
	// A plain same-id comparison would otherwise treat it as a no-op.
	Reload bool
}

// IndexOf returns the position of the track with the given id, or NotFound.
func IndexOf(tracks []catalog.Track, id string) int {
	if id == "" {
		return NotFound
	}
	for i := range tracks {
		if tracks[i].ID == id {
			return i
		}
	}
	return NotFound
}

// ResolveNext picks the track that follows current.
//
//   - RepeatOne replays current, whatever the catalog holds.
//   - Shuffle picks any catalog track, current included.
//   - Otherwise the next catalog entry, wrapping to the first one. RepeatNone
//     wraps too; only forward order differs between the modes.
//
// A current track that is no longer in the catalog resolves to the first entry.
func ResolveNext(tracks []catalog.Track, current *catalog.Track, shuffle bool, mode RepeatMode, pick Picker) Resolution {
	if mode == RepeatOne && current != nil {
		t := *current
		return Resolution{Track: &t, Reload: true}
	}
	if len(tracks) == 0 {
		return Resolution{}
	}

	if shuffle && pick != nil {
		i := pick(len(tracks))
		if i < 0 || i >= len(tracks) {
			i = 0
		}
		return resolution(tracks, i, current)
	}

	idx := NotFound
	if current != nil {
		idx = IndexOf(tracks, current.ID)
	}
	if idx == NotFound {
		return resolution(tracks, 0, current)
	}
	return resolution(tracks, (idx+1)%len(tracks), current)
}

// ResolvePrev picks the track before current, wrapping to the last entry.
// Shuffle and repeat never apply to backward navigation.
// A current track that is no longer in the catalog resolves to the last entry.
func ResolvePrev(tracks []catalog.Track, current *catalog.Track) *catalog.Track {
	n := len(tracks)
	if n == 0 {
		return nil
	}
	idx := NotFound
	if current != nil {
		idx = IndexOf(tracks, current.ID)
	}
	if idx == NotFound {
		t := tracks[n-1]
		return &t
	}
	t := tracks[(idx-1+n)%n]
	return &t
}

// resolution copies tracks[i] and flags a reload when it is current again,
// which happens on a single-track wrap or a shuffle landing on current.
func resolution(tracks []catalog.Track, i int, current *catalog.Track) Resolution {
	t := tracks[i]
	return Resolution{
		Track:  &t,
		Reload: current != nil && current.ID == t.ID,
	}
}
