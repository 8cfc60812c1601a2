package ui

// Base is embedded by panel models for their size and focus.
type Base struct {
	width, height int
	focused       bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }

func (b Base) IsFocused() bool { return b.focused }

// SetSize records the outer size, border included.
func (b *Base) SetSize(width, height int) { b.width, b.height = width, height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }
