package notify

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavetube/internal/catalog"
)

type fakeNotifier struct {
	sent   []Notification
	closed []uint32
	nextID uint32
	err    error
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sent = append(f.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	f.nextID++
	return f.nextID, nil
}

func (f *fakeNotifier) Close(id uint32) error {
	f.closed = append(f.closed, id)
	return nil
}

func TestUrgencyValues(t *testing.T) {
	assert.Equal(t, Urgency(0), UrgencyLow)
	assert.Equal(t, Urgency(1), UrgencyNormal)
	assert.Equal(t, Urgency(2), UrgencyCritical)
}

func TestTrackNotification(t *testing.T) {
	tests := []struct {
		name  string
		track catalog.Track
		body  string
	}{
		{"artist only", catalog.Track{Title: "Song", Artist: "Band"}, "Band"},
		{"artist and album", catalog.Track{Title: "Song", Artist: "Band", Album: "LP"}, "Band - LP"},
		{"album only", catalog.Track{Title: "Song", Album: "LP"}, "LP"},
		{"neither", catalog.Track{Title: "Song"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := TrackNotification(tt.track, 7)

			assert.Equal(t, "Song", n.Title)
			assert.Equal(t, tt.body, n.Body)
			assert.Equal(t, uint32(7), n.ReplacesID)
			assert.Equal(t, UrgencyLow, n.Urgency)
		})
	}
}

func TestNowPlaying_ReplacesPrevious(t *testing.T) {
	f := &fakeNotifier{}
	p := NewNowPlaying(f, zerolog.Nop())

	p.Track(catalog.Track{ID: "a", Title: "A"})
	p.Track(catalog.Track{ID: "b", Title: "B"})
	p.Close()
	p.Close()

	assert.Len(t, f.sent, 2)
	assert.Equal(t, uint32(0), f.sent[0].ReplacesID)
	assert.Equal(t, uint32(1), f.sent[1].ReplacesID)
	assert.Equal(t, []uint32{1}, f.closed)
}

func TestNowPlaying_ErrorKeepsLastID(t *testing.T) {
	f := &fakeNotifier{}
	p := NewNowPlaying(f, zerolog.Nop())
	p.Track(catalog.Track{ID: "a", Title: "A"})

	f.err = errors.New("bus gone")
	p.Track(catalog.Track{ID: "b", Title: "B"})

	assert.Equal(t, uint32(1), p.last)
}

func TestDiscard(t *testing.T) {
	var n Notifier = Discard{}
	id, err := n.Notify(Notification{Title: "x"})
	assert.NoError(t, err)
	assert.Zero(t, id)
	assert.NoError(t, n.Close(1))
}
