// Package lyricsview shows the lyrics of the current track, following the
// playback position when the lyrics are synced.
package lyricsview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/keymap"
	"github.com/llehouerou/wavetube/internal/lyrics"
	"github.com/llehouerou/wavetube/internal/ui"
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

// Model holds the lyrics panel state.
type Model struct {
	ui.Base
	track   *catalog.Track
	loading bool
	source  string
	lyrics  *lyrics.Lyrics
	lines   []string
	current int
	offset  int
	follow  bool
}

// New creates an empty lyrics panel.
func New() Model {
	return Model{current: -1, follow: true}
}

// SetTrack clears the panel and shows a loading line for t.
func (m *Model) SetTrack(t catalog.Track) {
	m.track = &t
	m.loading = true
	m.source = ""
	m.lyrics = nil
	m.lines = nil
	m.current = -1
	m.offset = 0
	m.follow = true
}

// TrackID returns the id of the track the panel is showing, or "".
func (m Model) TrackID() string {
	if m.track == nil {
		return ""
	}
	return m.track.ID
}

// Loading reports whether a fetch is pending.
func (m Model) Loading() bool { return m.loading }

// SetResult shows a fetch result. Results for another track are dropped.
func (m *Model) SetResult(trackID string, r lyrics.Result) {
	if trackID != m.TrackID() {
		return
	}
	m.loading = false
	m.source = r.Source
	m.lyrics = r.Lyrics
	if r.Lyrics != nil {
		m.lines = make([]string, len(r.Lyrics.Lines))
		for i, line := range r.Lyrics.Lines {
			m.lines[i] = line.Text
		}
	} else {
		m.lines = strings.Split(r.Text, "\n")
	}
	m.offset = 0
	m.current = -1
}

// SetPosition highlights the line at pos and scrolls to it unless the user
// scrolled away.
func (m *Model) SetPosition(pos time.Duration) {
	if m.lyrics == nil {
		return
	}
	line := m.lyrics.LineAt(pos)
	if line == m.current {
		return
	}
	m.current = line
	if m.follow {
		m.center()
	}
}

// Current returns the highlighted line, or -1.
func (m Model) Current() int { return m.current }

// Offset returns the first visible line.
func (m Model) Offset() int { return m.offset }

// Apply scrolls the panel. Manual scrolling stops the panel from following
// the track; JumpStart re-enables it on synced lyrics.
func (m *Model) Apply(a keymap.Action) bool {
	page := m.visibleHeight()
	switch a {
	case keymap.ActionMoveUp:
		m.scrollTo(m.offset - 1)
	case keymap.ActionMoveDown:
		m.scrollTo(m.offset + 1)
	case keymap.ActionPageUp:
		m.scrollTo(m.offset - page)
	case keymap.ActionPageDown:
		m.scrollTo(m.offset + page)
	case keymap.ActionJumpEnd:
		m.scrollTo(m.maxOffset())
	case keymap.ActionJumpStart:
		if m.current >= 0 {
			m.follow = true
			m.center()
			return true
		}
		m.scrollTo(0)
	default:
		return false
	}
	m.follow = false
	return true
}

func (m *Model) scrollTo(offset int) {
	m.offset = max(0, min(offset, m.maxOffset()))
}

func (m *Model) center() {
	if m.current < 0 {
		return
	}
	m.scrollTo(m.current - m.visibleHeight()/2)
}

func (m Model) visibleHeight() int {
	return max(m.Height()-ui.PanelOverhead, 1)
}

func (m Model) maxOffset() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}

// View renders the panel at the model's size.
func (m Model) View() string {
	inner := max(m.Width()-2, 10)
	height := m.visibleHeight()
	s := styles.T().S()

	var title, meta string
	if m.track != nil {
		title = m.track.Title
		if m.track.Artist != "" {
			title += " · " + m.track.Artist
		}
		meta = m.source
	}
	out := []string{
		render.Row(s.Title.Render(render.Truncate(title, inner-14)),
			s.Muted.Render(meta), inner),
		s.Subtle.Render(strings.Repeat("─", inner)),
	}

	switch {
	case m.track == nil:
		out = append(out, s.Muted.Render("Select a song to see lyrics."))
	case m.loading:
		out = append(out, s.Muted.Render("Loading lyrics..."))
	default:
		end := min(m.offset+height, len(m.lines))
		for i := m.offset; i < end; i++ {
			out = append(out, m.line(i, inner))
		}
	}
	for len(out) < height+2 {
		out = append(out, "")
	}

	return styles.Panel(m.IsFocused()).
		Width(inner).
		Render(strings.Join(out, "\n"))
}

func (m Model) line(i, width int) string {
	s := styles.T().S()
	text := render.Truncate(render.Sanitize(m.lines[i]), width)
	pad := max((width-lipgloss.Width(text))/2, 0)
	text = strings.Repeat(" ", pad) + text
	switch {
	case i == m.current:
		return s.Playing.Render(text)
	case m.current >= 0 && i < m.current:
		return s.Muted.Render(text)
	}
	return s.Base.Render(text)
}
