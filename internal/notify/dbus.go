//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	appName   = "WaveTube"
	entryName = "wavetube"
)

// Bus talks to the freedesktop notification daemon on the session bus.
type Bus struct {
	obj dbus.BusObject
}

// New connects to the session bus.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connect session bus: %w", err)
	}
	return &Bus{obj: conn.Object(busName, busPath)}, nil
}

func (b *Bus) call(method string, args ...any) *dbus.Call {
	return b.obj.Call(busName+"."+method, 0, args...)
}

// Notify shows n and returns the id the daemon assigned to it.
func (b *Bus) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(entryName),
	}
	var id uint32
	err := b.call("Notify",
		appName, n.ReplacesID, n.Icon, n.Title, n.Body,
		[]string{}, hints, n.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

// Close dismisses the notification with the given id.
func (b *Bus) Close(id uint32) error {
	return b.call("CloseNotification", id).Err
}
