// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpCatalogTrending Op = "load trending tracks"
	OpCatalogSearch   Op = "search tracks"
	OpCatalogLoad     Op = "update track list"

	// Player operations
	OpPlayerStart   Op = "start player"
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpVolumeSet     Op = "set volume"
	OpPlayPause     Op = "toggle playback"
	OpSkip          Op = "change track"

	// Lyrics operations
	OpLyricsLoad Op = "load lyrics"

	// Preferences
	OpPreferencesLoad Op = "load preferences"

	// Remote control
	OpMPRISStart Op = "start media controls"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
