// Package cursor tracks the selected row and scroll offset of a list.
package cursor

import "github.com/llehouerou/wavetube/internal/keymap"

// Cursor holds a position and scroll offset. List length and viewport
// height are passed in because both change with the catalog and the
// terminal size.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New creates a cursor that keeps margin rows visible around it.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump places the cursor at pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.scroll(listLen, height)
}

// Apply performs a navigation action and reports whether it was one.
func (c *Cursor) Apply(a keymap.Action, listLen, height int) bool {
	page := max(height/2, 1)
	switch a {
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Jump(0, listLen, height)
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(page, listLen, height)
	case keymap.ActionPageUp:
		c.Move(-page, listLen, height)
	default:
		return false
	}
	return true
}

// Reset returns to the top of the list.
func (c *Cursor) Reset() {
	c.pos, c.offset = 0, 0
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// scroll adjusts the offset so the cursor stays margin rows away from the
// viewport edges where possible.
func (c *Cursor) scroll(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, hi int) int {
	return max(0, min(v, hi))
}
