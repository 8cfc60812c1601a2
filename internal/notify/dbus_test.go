//go:build linux

package notify

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavetube/internal/catalog"
)

func sessionBus(t *testing.T) Notifier {
	t.Helper()
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no session bus")
	}
	n, err := New()
	require.NoError(t, err)
	return n
}

func TestBus_TrackNotificationReplaces(t *testing.T) {
	n := sessionBus(t)
	track := catalog.Track{ID: "x", Title: "Test Song", Artist: "WaveTube"}

	first, err := n.Notify(TrackNotification(track, 0))
	require.NoError(t, err)
	assert.NotZero(t, first)

	second, err := n.Notify(TrackNotification(track, first))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.NoError(t, n.Close(second))
}
