// Package helpbindings renders the key binding reference overlay.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavetube/internal/keymap"
	"github.com/llehouerou/wavetube/internal/ui"
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

var contextLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
	"list":     "Track list",
}

// Model is the scrollable help overlay.
type Model struct {
	ui.Base
	lines  []string
	offset int
}

// New builds the help content from the bindings of every context.
func New() Model {
	return Model{lines: buildLines()}
}

func buildLines() []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range keymap.All {
		keyWidth = max(keyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	for _, ctx := range keymap.Contexts() {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		label := contextLabels[ctx]
		if label == "" {
			label = ctx
		}
		lines = append(lines,
			s.Playing.Render(label),
			s.Subtle.Render(strings.Repeat("─", keyWidth+16)))
		for _, b := range keymap.ByContext(ctx) {
			lines = append(lines,
				s.Title.Render(render.Pad(keyLabel(b), keyWidth))+"  "+s.Base.Render(b.Description))
		}
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k == " " {
			continue
		}
		keys = append(keys, k)
	}
	return strings.Join(keys, ", ")
}

// Apply scrolls the content.
func (m *Model) Apply(a keymap.Action) bool {
	switch a {
	case keymap.ActionMoveDown:
		m.offset = min(m.offset+1, m.maxOffset())
	case keymap.ActionMoveUp:
		m.offset = max(m.offset-1, 0)
	case keymap.ActionJumpStart:
		m.offset = 0
	case keymap.ActionJumpEnd:
		m.offset = m.maxOffset()
	default:
		return false
	}
	return true
}

// Offset returns the first visible content line.
func (m Model) Offset() int { return m.offset }

func (m Model) visibleHeight() int {
	// title, blank, blank, footer and the border
	return max(m.Height()-6, 3)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

// View renders the overlay box, sized to its content within the model's
// bounds.
func (m Model) View() string {
	s := styles.T().S()
	end := min(m.offset+m.visibleHeight(), len(m.lines))
	visible := m.lines[m.offset:end]

	footer := "?/esc close"
	if m.maxOffset() > 0 {
		footer = "j/k scroll · " + footer
	}

	body := s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Muted.Render(footer)

	return styles.Panel(true).Padding(0, 1).Render(body)
}

// Overlay centers the help box on a background of the given size.
func (m Model) Overlay(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, m.View())
}
