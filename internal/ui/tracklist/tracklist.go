// Package tracklist renders the catalog as a scrollable list.
package tracklist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/icons"
	"github.com/llehouerou/wavetube/internal/keymap"
	"github.com/llehouerou/wavetube/internal/queue"
	"github.com/llehouerou/wavetube/internal/ui"
	"github.com/llehouerou/wavetube/internal/ui/cursor"
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

// Model is the track list. The parent sets its size and routes
// navigation actions to it.
type Model struct {
	ui.Base
	title     string
	tracks    []catalog.Track
	cursor    cursor.Cursor
	currentID string
	loading   bool
}

// New creates an empty list.
func New() Model {
	return Model{cursor: cursor.New(ui.ScrollMargin)}
}

// SetTracks replaces the list and moves the cursor to the top.
func (m *Model) SetTracks(title string, tracks []catalog.Track) {
	m.title = title
	m.tracks = tracks
	m.loading = false
	m.cursor.Reset()
	if i := queue.IndexOf(tracks, m.currentID); i != queue.NotFound {
		m.cursor.Jump(i, len(tracks), m.listHeight())
	}
}

// SetLoading shows a loading line instead of the tracks.
func (m *Model) SetLoading(title string) {
	m.title = title
	m.loading = true
}

// Tracks returns the listed tracks.
func (m Model) Tracks() []catalog.Track { return m.tracks }

// SetCurrent marks the playing track.
func (m *Model) SetCurrent(id string) { m.currentID = id }

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	if len(m.tracks) == 0 {
		return catalog.Track{}, false
	}
	return m.tracks[m.cursor.Pos()], true
}

// Cursor returns the cursor index.
func (m Model) Cursor() int { return m.cursor.Pos() }

// Apply handles a navigation action.
func (m *Model) Apply(a keymap.Action) bool {
	return m.cursor.Apply(a, len(m.tracks), m.listHeight())
}

// FollowCurrent moves the cursor onto the playing track.
func (m *Model) FollowCurrent() {
	if i := queue.IndexOf(m.tracks, m.currentID); i != queue.NotFound {
		m.cursor.Jump(i, len(m.tracks), m.listHeight())
	}
}

func (m Model) listHeight() int {
	return max(m.Height()-ui.PanelOverhead, 1)
}

// View renders the list inside a panel of the model's size.
func (m Model) View() string {
	width := m.Width()
	inner := max(width-2, 10)
	s := styles.T().S()

	header := render.Row(s.Title.Render(render.Truncate(m.title, inner-12)),
		s.Muted.Render(fmt.Sprintf("%d tracks", len(m.tracks))), inner)
	lines := []string{header, s.Subtle.Render(strings.Repeat("─", inner))}

	height := m.listHeight()
	switch {
	case m.loading:
		lines = append(lines, s.Muted.Render("Loading..."))
	case len(m.tracks) == 0:
		lines = append(lines, s.Muted.Render("No tracks."))
	default:
		start, end := m.cursor.VisibleRange(len(m.tracks), height)
		for i := start; i < end; i++ {
			lines = append(lines, m.row(i, inner))
		}
	}
	for len(lines) < height+2 {
		lines = append(lines, "")
	}

	return styles.Panel(m.IsFocused()).
		Width(inner).
		Render(strings.Join(lines, "\n"))
}

func (m Model) row(i, width int) string {
	s := styles.T().S()
	t := m.tracks[i]

	marker := "  "
	if t.ID == m.currentID {
		marker = icons.Current() + " "
	}
	dur := t.DurationLabel
	durWidth := lipgloss.Width(dur)
	artistWidth := min(24, max(width/4, 0))
	titleWidth := max(width-lipgloss.Width(marker)-artistWidth-durWidth-2, 1)

	line := marker +
		render.Fit(t.Title, titleWidth) + " " +
		render.Fit(t.Artist, artistWidth) + " " +
		dur

	switch {
	case i == m.cursor.Pos():
		return s.Cursor.Render(render.Fit(line, width))
	case t.ID == m.currentID:
		return s.Playing.Render(line)
	}
	return s.Base.Render(line)
}
