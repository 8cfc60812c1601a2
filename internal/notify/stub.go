//go:build !linux

package notify

// New returns Discard: there is no notification daemon to reach.
func New() (Notifier, error) {
	return Discard{}, nil
}
