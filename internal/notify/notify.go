// Package notify sends desktop notifications over D-Bus.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Discard accepts every notification and shows nothing.
type Discard struct{}

func (Discard) Notify(Notification) (uint32, error) { return 0, nil }

func (Discard) Close(uint32) error { return nil }

const (
	trackIcon    = "audio-x-generic"
	trackTimeout = 5000
)

// NowPlaying shows a notification for each new track. Each one replaces
// the previous, so at most one is on screen.
type NowPlaying struct {
	n    Notifier
	log  zerolog.Logger
	last uint32
}

// NewNowPlaying wraps n.
func NewNowPlaying(n Notifier, log zerolog.Logger) *NowPlaying {
	return &NowPlaying{n: n, log: log}
}

// Track announces t. Failures are logged and otherwise ignored.
func (p *NowPlaying) Track(t catalog.Track) {
	id, err := p.n.Notify(TrackNotification(t, p.last))
	if err != nil {
		p.log.Debug().Err(err).Str("track", t.ID).Msg("notification failed")
		return
	}
	p.last = id
}

// Close removes the notification on screen, if any.
func (p *NowPlaying) Close() {
	if p.last == 0 {
		return
	}
	if err := p.n.Close(p.last); err != nil {
		p.log.Debug().Err(err).Msg("close notification")
	}
	p.last = 0
}

// TrackNotification builds the notification announcing t.
func TrackNotification(t catalog.Track, replaces uint32) Notification {
	body := t.Artist
	if t.Album != "" {
		if body != "" {
			body += " - "
		}
		body += t.Album
	}
	return Notification{
		Title:      t.Title,
		Body:       body,
		Icon:       trackIcon,
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}
