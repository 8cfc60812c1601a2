// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding maps keys to an action, with a description for help output.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "list"
}

// All contains every key binding.
var All = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionSearch, []string{"/"}, "Search", "global"},
	{ActionToggleLyrics, []string{"l"}, "Show/hide lyrics", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionBack, []string{"esc"}, "Back to trending", "global"},
	{ActionRefresh, []string{"ctrl+r"}, "Reload list", "global"},

	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionNextTrack, []string{"n"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"p"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right"}, "Seek forward", "playback"},
	{ActionSeekBack, []string{"left"}, "Seek back", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},

	{ActionMoveUp, []string{"k", "up"}, "Move up", "list"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "list"},
	{ActionJumpStart, []string{"g", "home"}, "First track", "list"},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", "list"},
	{ActionPageUp, []string{"pgup", "ctrl+u"}, "Page up", "list"},
	{ActionPageDown, []string{"pgdown", "ctrl+d"}, "Page down", "list"},
	{ActionSelect, []string{"enter"}, "Play track", "list"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Contexts lists binding contexts in help order.
func Contexts() []string {
	return []string{"global", "playback", "list"}
}
