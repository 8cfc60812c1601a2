// Package icons selects the glyphs used for playback status and modes.
package icons

import "github.com/llehouerou/wavetube/internal/queue"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the glyphs of one style.
type Icons struct {
	Play       string
	Pause      string
	Current    string // marks the playing track in lists
	Shuffle    string
	RepeatNone string
	RepeatAll  string
	RepeatOne  string
}

var (
	nerdIcons = Icons{
		Play:       "\uf04b",     // nf-fa-play
		Pause:      "\uf04c",     // nf-fa-pause
		Current:    "\uf001",     // nf-fa-music
		Shuffle:    "\U000f049f", // nf-md-shuffle
		RepeatNone: "\U000f0457", // nf-md-repeat_off
		RepeatAll:  "\U000f0456", // nf-md-repeat
		RepeatOne:  "\U000f0458", // nf-md-repeat_once
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Current:    "♪",
		Shuffle:    "🔀",
		RepeatNone: "🔁",
		RepeatAll:  "🔁",
		RepeatOne:  "🔂",
	}

	noneIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Current:    "♪",
		Shuffle:    "shuffle",
		RepeatNone: "repeat:none",
		RepeatAll:  "repeat:all",
		RepeatOne:  "repeat:one",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon style. Unknown styles fall back to none.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// Play returns the playing status glyph.
func Play() string { return current.Play }

// Pause returns the paused status glyph.
func Pause() string { return current.Pause }

// Current returns the playing-track marker.
func Current() string { return current.Current }

// Shuffle returns the shuffle glyph.
func Shuffle() string { return current.Shuffle }

// Repeat returns the glyph for mode.
func Repeat(mode queue.RepeatMode) string {
	switch mode {
	case queue.RepeatAll:
		return current.RepeatAll
	case queue.RepeatOne:
		return current.RepeatOne
	default:
		return current.RepeatNone
	}
}
