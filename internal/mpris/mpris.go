//go:build linux

package mpris

import (
	"strings"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/queue"
)

const busName = "wavetube"

// Adapter exposes a playback session as an MPRIS media player over D-Bus.
type Adapter struct {
	server *server.Server
	log    zerolog.Logger
	once   sync.Once
}

// New creates the adapter and starts serving on the session bus.
func New(session Controller, log zerolog.Logger) (*Adapter, error) {
	a := &Adapter{
		log: log.With().Str("component", "mpris").Logger(),
	}
	a.server = server.NewServer(busName, &rootAdapter{}, &playerAdapter{session: session})

	go func() {
		if err := a.server.Listen(); err != nil {
			a.log.Warn().Err(err).Msg("mpris server stopped")
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	var err error
	a.once.Do(func() { err = a.server.Stop() })
	return err
}

type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "WaveTube", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// optional loop status and shuffle interfaces.
type playerAdapter struct {
	session Controller
}

func (p *playerAdapter) Next() error { return p.session.Next() }

func (p *playerAdapter) Previous() error { return p.session.Previous() }

func (p *playerAdapter) Pause() error { return p.session.Pause() }

func (p *playerAdapter) Play() error { return p.session.Play() }

// Stop pauses: the session has no stopped state once a track is set.
func (p *playerAdapter) Stop() error { return p.session.Pause() }

func (p *playerAdapter) PlayPause() error {
	return p.session.TogglePlay()
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	st := p.session.Snapshot()
	return p.seekTo(st, st.Position+time.Duration(offset)*time.Microsecond)
}

func (p *playerAdapter) SetPosition(id string, position types.Microseconds) error {
	st := p.session.Snapshot()
	if id != "" && id != string(metadataID(st.Track)) {
		return nil
	}
	return p.seekTo(st, time.Duration(position)*time.Microsecond)
}

func (p *playerAdapter) seekTo(st playback.State, pos time.Duration) error {
	if st.Duration <= 0 {
		return nil
	}
	return p.session.SeekFraction(float64(pos) / float64(st.Duration))
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.session.Snapshot().Status()), nil
}

func playbackStatus(s playback.Status) types.PlaybackStatus {
	switch s {
	case playback.StatusPlaying:
		return types.PlaybackStatusPlaying
	case playback.StatusPaused:
		return types.PlaybackStatusPaused
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	st := p.session.Snapshot()
	if st.Track == nil {
		return types.Metadata{}, nil
	}
	meta := types.Metadata{
		TrackId: metadataID(st.Track),
		Length:  types.Microseconds(st.Duration.Microseconds()),
		Title:   st.Track.Title,
		Album:   st.Track.Album,
		ArtUrl:  st.Track.ThumbnailURL,
	}
	if st.Track.Artist != "" {
		meta.Artist = []string{st.Track.Artist}
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return float64(p.session.Snapshot().Volume) / 100, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	return p.session.SetVolume(int(v*100 + 0.5))
}

func (p *playerAdapter) Position() (int64, error) {
	return p.session.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) CanGoNext() (bool, error) { return p.hasTracks(), nil }

func (p *playerAdapter) CanGoPrevious() (bool, error) { return p.hasTracks(), nil }

func (p *playerAdapter) CanPlay() (bool, error) { return p.hasTracks(), nil }

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) {
	st := p.session.Snapshot()
	return st.Ready && st.Duration > 0, nil
}

func (p *playerAdapter) hasTracks() bool {
	return len(p.session.Catalog()) > 0
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.session.Snapshot().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.session.SetRepeatMode(repeatMode(status))
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.session.Snapshot().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	return p.session.SetShuffle(shuffle)
}

func loopStatus(m queue.RepeatMode) types.LoopStatus {
	switch m {
	case queue.RepeatOne:
		return types.LoopStatusTrack
	case queue.RepeatAll:
		return types.LoopStatusPlaylist
	}
	return types.LoopStatusNone
}

func repeatMode(s types.LoopStatus) queue.RepeatMode {
	switch s {
	case types.LoopStatusTrack:
		return queue.RepeatOne
	case types.LoopStatusPlaylist:
		return queue.RepeatAll
	}
	return queue.RepeatNone
}

// metadataID maps a video id to a D-Bus object path. Ids may contain '-',
// which object paths do not allow.
func metadataID(t *catalog.Track) dbus.ObjectPath {
	if t == nil {
		return "/org/mpris/MediaPlayer2/TrackList/NoTrack"
	}
	id := strings.NewReplacer("-", "_2d", ".", "_2e").Replace(t.ID)
	return dbus.ObjectPath("/org/wavetube/track/" + id)
}
