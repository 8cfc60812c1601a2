package player

// PlayState mirrors the state codes of the embedded player.
//
//	Unstarted ──load──▶ Buffering ──▶ Playing ◀──▶ Paused
//	                                     │
//	                                     ▼
//	                                   Ended
//
// Cued is reported when media is loaded without autoplay.
type PlayState int

const (
	Unstarted PlayState = -1
	Ended     PlayState = 0
	Playing   PlayState = 1
	Paused    PlayState = 2
	Buffering PlayState = 3
	Cued      PlayState = 5
)

// String returns the state name for debugging.
func (s PlayState) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Ended:
		return "Ended"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Buffering:
		return "Buffering"
	case Cued:
		return "Cued"
	default:
		return "Unknown"
	}
}

// ErrorCode mirrors the error codes of the embedded player.
type ErrorCode int

const (
	CodeInvalidParam        ErrorCode = 2
	CodeHTML5               ErrorCode = 5
	CodeNotFound            ErrorCode = 100
	CodeEmbedNotAllowed     ErrorCode = 101
	CodeEmbedNotAllowedAlso ErrorCode = 150
)

// String returns the code name for logs.
func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidParam:
		return "InvalidParam"
	case CodeHTML5:
		return "HTML5"
	case CodeNotFound:
		return "NotFound"
	case CodeEmbedNotAllowed, CodeEmbedNotAllowedAlso:
		return "EmbedNotAllowed"
	default:
		return "Unknown"
	}
}

// EventKind tells which fields of an Event are meaningful.
type EventKind int

const (
	EventReady EventKind = iota
	EventStateChange
	EventError
)

// Event is emitted by a Handle.
type Event struct {
	Kind  EventKind
	State PlayState // EventStateChange
	Code  ErrorCode // EventError
}

// IsActive returns true if media is loaded and not finished.
func (s PlayState) IsActive() bool {
	return s == Playing || s == Paused || s == Buffering
}
