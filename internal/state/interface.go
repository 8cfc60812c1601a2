package state

import "context"

// Interface is the preferences store as seen by the application.
type Interface interface {
	Preferences(ctx context.Context) (Preferences, bool, error)
	SavePreferences(p Preferences)
	Close() error
}

var _ Interface = (*Manager)(nil)
