package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/wavetube/internal/ui/headerbar"
	"github.com/llehouerou/wavetube/internal/ui/playerbar"
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.help.Overlay(m.width, m.height)
	}

	label := listTitle(m.query)
	if m.showLyrics {
		label = "Lyrics"
	}

	body := m.list.View()
	if m.showLyrics {
		body = m.lyricsView.View()
	}

	parts := []string{
		headerbar.Render(label, m.width),
		body,
		playerbar.Render(m.state, m.width),
	}
	if banner := playerbar.Banner(m.state.ErrorMessage, m.width); banner != "" {
		parts = append(parts, banner)
	}
	if m.searching {
		parts = append(parts, m.search.View())
	} else {
		parts = append(parts, m.statusLine())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// statusLine shows the fetch outcome on the left and the help hint on the
// right, e.g. "25 tracks from ytmusic, 3 seconds ago".
func (m Model) statusLine() string {
	s := styles.T().S()
	hint := s.Subtle.Render("? help")

	room := max(m.width-lipgloss.Width(hint)-1, 1)
	var left string
	switch {
	case m.notice != "":
		left = s.Warning.Render(render.Truncate(m.notice, room))
	case m.listErr != "":
		left = s.Error.Render(render.Truncate(m.listErr, room))
	case !m.fetched.IsZero():
		left = s.Muted.Render(render.Truncate(m.fetchSummary(), room))
	}
	return render.Row(left, hint, m.width)
}

func (m Model) fetchSummary() string {
	n := len(m.list.Tracks())
	noun := "tracks"
	if n == 1 {
		noun = "track"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s", n, noun)
	if m.source != "" {
		fmt.Fprintf(&b, " from %s", m.source)
	}
	b.WriteString(", ")
	b.WriteString(humanize.RelTime(m.fetched, m.now(), "ago", "from now"))
	return b.String()
}
