package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavetube/internal/keymap"
)

func TestCursor_MoveClamps(t *testing.T) {
	c := New(0)

	c.Move(-1, 5, 10)
	assert.Equal(t, 0, c.Pos())

	c.Move(10, 5, 10)
	assert.Equal(t, 4, c.Pos())
}

func TestCursor_EmptyList(t *testing.T) {
	c := New(2)
	c.Jump(3, 10, 5)

	c.Move(1, 0, 5)

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
	start, end := c.VisibleRange(0, 5)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestCursor_ScrollsWithMargin(t *testing.T) {
	c := New(1)
	const n, h = 20, 5

	for range 4 {
		c.Move(1, n, h)
	}
	assert.Equal(t, 4, c.Pos())
	assert.Equal(t, 1, c.Offset(), "one row kept below the cursor")

	c.Jump(n-1, n, h)
	assert.Equal(t, n-h, c.Offset(), "offset never passes the last page")

	c.Move(-3, n, h)
	assert.Equal(t, 16, c.Pos())
	assert.Equal(t, 15, c.Offset())
}

func TestCursor_VisibleRange(t *testing.T) {
	c := New(0)
	c.Jump(7, 10, 4)

	start, end := c.VisibleRange(10, 4)

	assert.Equal(t, 4, start)
	assert.Equal(t, 8, end)
}

func TestCursor_Apply(t *testing.T) {
	const n, h = 30, 10
	tests := []struct {
		action keymap.Action
		from   int
		want   int
	}{
		{keymap.ActionMoveDown, 0, 1},
		{keymap.ActionMoveUp, 5, 4},
		{keymap.ActionJumpStart, 12, 0},
		{keymap.ActionJumpEnd, 0, 29},
		{keymap.ActionPageDown, 0, 5},
		{keymap.ActionPageUp, 7, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			c := New(2)
			c.Jump(tt.from, n, h)

			ok := c.Apply(tt.action, n, h)

			assert.True(t, ok)
			assert.Equal(t, tt.want, c.Pos())
		})
	}
}

func TestCursor_ApplyIgnoresOtherActions(t *testing.T) {
	c := New(0)
	c.Jump(3, 10, 5)

	assert.False(t, c.Apply(keymap.ActionPlayPause, 10, 5))
	assert.Equal(t, 3, c.Pos())
}

func TestCursor_Reset(t *testing.T) {
	c := New(0)
	c.Jump(9, 10, 3)

	c.Reset()

	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Offset())
}
