package headerbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := Render("Search: daft punk", 50)

	plain := ansi.Strip(out)
	assert.Contains(t, plain, "WaveTube")
	assert.Contains(t, plain, "Search: daft punk")
	assert.Equal(t, 50, lipgloss.Width(out))
}

func TestRender_LongLabelTruncated(t *testing.T) {
	out := Render("Search: a very long query that does not fit anywhere", 30)

	assert.LessOrEqual(t, lipgloss.Width(out), 30)
	assert.Contains(t, ansi.Strip(out), "…")
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render("Trending", 5))
}
