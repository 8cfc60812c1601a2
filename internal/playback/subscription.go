package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
// Sends never block; events are dropped when a buffer is full.
type Subscription struct {
	Changed      <-chan State
	TrackChanged <-chan TrackChange
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	// Internal write channels
	changedCh chan State
	trackCh   chan TrackChange
	errorCh   chan ErrorEvent
	doneCh    chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		changedCh: make(chan State, eventBufferSize),
		trackCh:   make(chan TrackChange, eventBufferSize),
		errorCh:   make(chan ErrorEvent, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changedCh
	s.TrackChanged = s.trackCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendChanged sends a state snapshot (non-blocking).
func (s *Subscription) sendChanged(st State) {
	select {
	case s.changedCh <- st:
	default:
		// Drop if buffer full
	}
}

// sendTrack sends a track change event (non-blocking).
func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
