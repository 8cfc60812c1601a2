// Package playback reconciles playback intent with an external player.
//
// A Session owns the single player handle. Every public call and every
// handle event is processed on one goroutine, in order; callers only read
// published snapshots.
package playback

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/player"
	"github.com/llehouerou/wavetube/internal/queue"
)

// Session is the playback session. Create it with New and release it with
// Teardown.
type Session struct {
	api player.API
	cfg Config
	log zerolog.Logger
	id  string

	mailbox chan func()
	done    chan struct{}
	readyCh chan struct{}

	snapMu sync.RWMutex
	snap   State

	subsMu     sync.Mutex
	subs       []*Subscription
	subsClosed bool

	// Owned by the loop goroutine.
	alive       bool
	initialized bool
	handle      player.Handle
	ready       bool
	intent      Intent
	loadedID    string
	playing     bool
	volume      int
	errMsg      string
	position    time.Duration
	duration    time.Duration
	tracks      []catalog.Track
	shuffle     bool
	repeat      queue.RepeatMode
	apiPoll     *time.Ticker
	progress    *time.Ticker
	skip        *time.Timer
}

// New creates a session and starts its loop. The player API is not touched
// until Initialize.
func New(api player.API, cfg Config, log zerolog.Logger) *Session {
	cfg = cfg.withDefaults()
	id := uuid.NewString()
	s := &Session{
		api:     api,
		cfg:     cfg,
		log:     log.With().Str("session", id).Logger(),
		id:      id,
		mailbox: make(chan func()),
		done:    make(chan struct{}),
		readyCh: make(chan struct{}),
		alive:   true,
		volume:  cfg.Volume,
		shuffle: cfg.Shuffle,
		repeat:  cfg.Repeat,
	}
	s.snap = s.buildState()
	go s.run()
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

func (s *Session) run() {
	defer close(s.done)
	for s.alive {
		select {
		case fn := <-s.mailbox:
			fn()
		case <-tickerC(s.apiPoll):
			s.checkAPI()
		case ev := <-s.eventsC():
			s.handleEvent(ev)
		case <-tickerC(s.progress):
			s.pollProgress()
		case <-timerC(s.skip):
			s.autoSkip()
		}
	}
}

func tickerC(t *time.Ticker) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

func (s *Session) eventsC() <-chan player.Event {
	if s.handle == nil {
		return nil
	}
	return s.handle.Events()
}

// call runs fn on the loop and waits for it.
func (s *Session) call(fn func()) error {
	ack := make(chan struct{})
	select {
	case s.mailbox <- func() { fn(); close(ack) }:
	case <-s.done:
		return ErrClosed
	}
	<-ack
	return nil
}

// Initialize starts polling the player API for availability. Once available,
// exactly one handle is created. Calling it again is a no-op.
func (s *Session) Initialize() error {
	return s.call(func() {
		if s.initialized {
			return
		}
		s.initialized = true
		s.log.Debug().Dur("interval", s.cfg.APIPollInterval).Msg("waiting for player api")
		s.apiPoll = time.NewTicker(s.cfg.APIPollInterval)
		s.checkAPI()
	})
}

// WaitReady blocks until the player reports ready.
func (s *Session) WaitReady(ctx context.Context) error {
	select {
	case <-s.readyCh:
		return nil
	default:
	}
	select {
	case <-s.readyCh:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready returns a channel closed on the ready transition.
func (s *Session) Ready() <-chan struct{} { return s.readyCh }

// Teardown stops polling, cancels a pending auto-skip, closes the handle
// and ends all subscriptions. Later calls return ErrClosed.
func (s *Session) Teardown() error {
	err := s.call(func() {
		s.alive = false
		stopTicker(s.apiPoll)
		stopTicker(s.progress)
		s.apiPoll, s.progress = nil, nil
		s.cancelSkip()
		if s.handle != nil {
			if err := s.handle.Close(); err != nil {
				s.log.Warn().Err(err).Msg("close player handle")
			}
		}
		s.log.Debug().Msg("session torn down")
	})
	if errors.Is(err, ErrClosed) {
		return nil
	}
	<-s.done

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsClosed = true
	s.subsMu.Unlock()
	return nil
}

func stopTicker(t *time.Ticker) {
	if t != nil {
		t.Stop()
	}
}

// SetIntent sets the target track and play state. A nil track changes the
// play state only.
func (s *Session) SetIntent(track *catalog.Track, playing bool) error {
	return s.call(func() { s.applyIntent(track, playing, false) })
}

// Select plays track.
func (s *Session) Select(track catalog.Track) error {
	return s.SetIntent(&track, true)
}

// TogglePlay flips the play state. With no current track it starts the
// first catalog track.
func (s *Session) TogglePlay() error {
	return s.call(func() {
		if s.intent.Track == nil {
			if len(s.tracks) > 0 {
				s.applyIntent(&s.tracks[0], true, false)
			}
			return
		}
		s.setPlaying(!s.intent.Playing)
		s.publish()
	})
}

// Play resumes the current track.
func (s *Session) Play() error {
	return s.call(func() {
		s.setPlaying(true)
		s.publish()
	})
}

// Pause pauses the current track.
func (s *Session) Pause() error {
	return s.call(func() {
		s.setPlaying(false)
		s.publish()
	})
}

// Next moves forward according to shuffle and repeat.
func (s *Session) Next() error {
	return s.call(s.advance)
}

// Previous moves back one catalog entry.
func (s *Session) Previous() error {
	return s.call(func() {
		if prev := queue.ResolvePrev(s.tracks, s.intent.Track); prev != nil {
			s.applyIntent(prev, true, false)
		}
	})
}

// SetCatalog replaces the navigation catalog. The current track keeps
// playing even when it is no longer listed. With no current track the first
// entry is cued without autoplay.
func (s *Session) SetCatalog(tracks []catalog.Track) error {
	cp := append([]catalog.Track(nil), tracks...)
	return s.call(func() {
		s.tracks = cp
		if s.intent.Track == nil && len(cp) > 0 {
			s.cue(cp[0])
		}
		s.publish()
	})
}

// Catalog returns a copy of the navigation catalog.
func (s *Session) Catalog() []catalog.Track {
	var out []catalog.Track
	if err := s.call(func() { out = append([]catalog.Track(nil), s.tracks...) }); err != nil {
		return nil
	}
	return out
}

// ToggleShuffle flips shuffle and returns the new value.
func (s *Session) ToggleShuffle() bool {
	var v bool
	_ = s.call(func() {
		s.shuffle = !s.shuffle
		v = s.shuffle
		s.publish()
	})
	return v
}

// SetShuffle sets shuffle.
func (s *Session) SetShuffle(enabled bool) error {
	return s.call(func() {
		s.shuffle = enabled
		s.publish()
	})
}

// CycleRepeatMode advances None -> All -> One -> None and returns the new mode.
func (s *Session) CycleRepeatMode() queue.RepeatMode {
	var m queue.RepeatMode
	_ = s.call(func() {
		s.repeat = s.repeat.Next()
		m = s.repeat
		s.publish()
	})
	return m
}

// SetRepeatMode sets the repeat mode.
func (s *Session) SetRepeatMode(mode queue.RepeatMode) error {
	return s.call(func() {
		s.repeat = mode
		s.publish()
	})
}

// SeekFraction seeks to fraction of the track, clamped to [0,1].
// It returns ErrNotReady before the ready transition or while the
// duration is unknown.
func (s *Session) SeekFraction(fraction float64) error {
	var err error
	if cerr := s.call(func() { err = s.seek(fraction) }); cerr != nil {
		return cerr
	}
	return err
}

// SetVolume clamps percent to [0,100]. Before ready the value is stored and
// applied once on the ready transition.
func (s *Session) SetVolume(percent int) error {
	return s.call(func() {
		s.volume = clampVolume(percent)
		if s.ready {
			s.command("set volume", s.handle.SetVolume(s.volume))
		}
		s.publish()
	})
}

// Snapshot returns the last published state.
func (s *Session) Snapshot() State {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snap
}

// Subscribe creates a new event subscription. After Teardown the returned
// subscription is already done.
func (s *Session) Subscribe() *Subscription {
	sub := newSubscription()
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.subsClosed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// --- loop-side ---

func (s *Session) checkAPI() {
	if s.handle != nil || !s.api.Available() {
		return
	}
	opts := player.NewOptions(s.cfg.Origin, s.cfg.Params)
	h, err := s.api.NewHandle(opts)
	if err != nil {
		s.log.Error().Err(err).Msg("create player handle")
		return
	}
	stopTicker(s.apiPoll)
	s.apiPoll = nil
	s.handle = h
	s.log.Info().Str("mount", opts.MountID).Str("origin", opts.Origin).Msg("player handle created")
}

func (s *Session) handleEvent(ev player.Event) {
	switch ev.Kind {
	case player.EventReady:
		s.onReady()
	case player.EventStateChange:
		s.onStateChange(ev.State)
	case player.EventError:
		s.onError(ev.Code)
	}
}

func (s *Session) onReady() {
	if s.ready {
		return
	}
	s.ready = true
	close(s.readyCh)
	s.log.Info().Msg("player ready")

	s.command("set volume", s.handle.SetVolume(s.volume))
	if t := s.intent.Track; t != nil && t.ID != s.loadedID {
		playing := s.intent.Playing
		s.load(t.ID)
		if !playing {
			s.intent.Playing = false
			s.command("pause", s.handle.Pause())
		}
	} else if s.intent.Playing && s.intent.Track != nil {
		s.command("play", s.handle.Play())
	}
	s.progress = time.NewTicker(s.cfg.ProgressInterval)
	s.publish()
}

func (s *Session) onStateChange(st player.PlayState) {
	s.log.Debug().Stringer("state", st).Msg("player state")
	switch st {
	case player.Playing:
		s.playing = true
		s.intent.Playing = true
		s.errMsg = ""
		s.cancelSkip()
	case player.Paused:
		s.playing = false
		s.intent.Playing = false
	case player.Ended:
		s.playing = false
		s.publish()
		s.advance()
		return
	default:
		return
	}
	s.publish()
}

func (s *Session) onError(code player.ErrorCode) {
	kind := Classify(code)
	s.errMsg = kind.Label()
	trackID := ""
	if s.intent.Track != nil {
		trackID = s.intent.Track.ID
	}
	s.log.Warn().Int("code", int(code)).Stringer("kind", kind).Str("track", trackID).Msg("playback error, skipping")

	// The failed media is gone: selecting the same track again reloads it.
	s.loadedID = ""
	s.cancelSkip()
	s.skip = time.NewTimer(s.cfg.SkipDelay)

	ev := ErrorEvent{Kind: kind, Code: code, TrackID: trackID, Message: s.errMsg}
	s.broadcast(func(sub *Subscription) { sub.sendError(ev) })
	s.publish()
}

func (s *Session) autoSkip() {
	s.skip = nil
	s.advance()
	s.errMsg = ""
	s.publish()
}

func (s *Session) cancelSkip() {
	if s.skip != nil {
		s.skip.Stop()
		s.skip = nil
	}
}

func (s *Session) advance() {
	res := queue.ResolveNext(s.tracks, s.intent.Track, s.shuffle, s.repeat, s.cfg.Picker)
	if res.Track == nil {
		return
	}
	s.applyIntent(res.Track, true, res.Reload)
}

// applyIntent loads a new (or force-reloaded) track, or toggles play state
// for the loaded one. Before ready the load is deferred to onReady.
func (s *Session) applyIntent(track *catalog.Track, playing, force bool) {
	if track == nil || track.IsZero() {
		s.setPlaying(playing)
		s.publish()
		return
	}

	s.cancelSkip()
	prev := s.intent.Track
	t := *track
	s.intent.Track = &t
	changed := force || prev == nil || prev.ID != t.ID

	switch {
	case !s.ready:
		s.intent.Playing = playing
	case force || t.ID != s.loadedID:
		s.load(t.ID)
	default:
		s.setPlaying(playing)
	}

	if changed {
		tc := TrackChange{Previous: prev, Current: &t, Reload: force}
		s.broadcast(func(sub *Subscription) { sub.sendTrack(tc) })
	}
	s.publish()
}

// cue makes t current without autoplay.
func (s *Session) cue(t catalog.Track) {
	s.intent = Intent{Track: &t}
	if s.ready {
		s.load(t.ID)
		s.intent.Playing = false
		s.command("pause", s.handle.Pause())
	}
	tc := TrackChange{Current: &t}
	s.broadcast(func(sub *Subscription) { sub.sendTrack(tc) })
}

func (s *Session) load(id string) {
	s.cancelSkip()
	s.errMsg = ""
	s.position, s.duration = 0, 0
	s.log.Debug().Str("track", id).Msg("load")
	s.command("load", s.handle.Load(id))
	s.loadedID = id
	s.intent.Playing = true
}

func (s *Session) setPlaying(playing bool) {
	s.intent.Playing = playing
	if !s.ready || s.intent.Track == nil {
		return
	}
	if playing {
		s.command("play", s.handle.Play())
	} else {
		s.command("pause", s.handle.Pause())
	}
}

func (s *Session) seek(fraction float64) error {
	if !s.ready {
		return ErrNotReady
	}
	d, err := s.handle.Duration()
	if err != nil || d <= 0 {
		return ErrNotReady
	}
	fraction = max(0, min(1, fraction))
	pos := time.Duration(fraction * float64(d))
	s.command("seek", s.handle.SeekTo(pos))
	s.position, s.duration = pos, d
	s.publish()
	return nil
}

func (s *Session) pollProgress() {
	if !s.ready {
		return
	}
	cur, err := s.handle.CurrentTime()
	if err != nil {
		return
	}
	dur, err := s.handle.Duration()
	if err != nil || dur <= 0 {
		return
	}
	s.position, s.duration = cur, dur
	s.publish()
}

// command logs a failed handle command. Failures are expected while the
// player is between tracks.
func (s *Session) command(op string, err error) {
	if err != nil {
		s.log.Debug().Err(err).Str("op", op).Msg("player command failed")
	}
}

func (s *Session) buildState() State {
	st := State{
		Ready:            s.ready,
		Playing:          s.playing,
		CurrentTimeLabel: FormatTime(s.position),
		DurationLabel:    FormatTime(s.duration),
		Position:         s.position,
		Duration:         s.duration,
		Volume:           s.volume,
		ErrorMessage:     s.errMsg,
		DesiredPlaying:   s.intent.Playing,
		Shuffle:          s.shuffle,
		Repeat:           s.repeat,
	}
	if s.duration > 0 {
		st.Progress = max(0, min(1, float64(s.position)/float64(s.duration)))
	}
	if s.intent.Track != nil {
		t := *s.intent.Track
		st.Track = &t
	}
	return st
}

func (s *Session) publish() {
	st := s.buildState()
	s.snapMu.Lock()
	s.snap = st
	s.snapMu.Unlock()
	s.broadcast(func(sub *Subscription) { sub.sendChanged(st) })
}

func (s *Session) broadcast(send func(*Subscription)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		send(sub)
	}
}
