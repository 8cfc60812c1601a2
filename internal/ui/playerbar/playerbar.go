// Package playerbar renders the now-playing bar.
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/wavetube/internal/icons"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/queue"
	"github.com/llehouerou/wavetube/internal/ui/render"
	"github.com/llehouerou/wavetube/internal/ui/styles"
)

// Height is the rendered height: border, title row, progress row, border.
const Height = 4

const minBar = 5

// Render draws the bar for st at width. With no track it shows a hint.
func Render(st playback.State, width int) string {
	inner := max(width-4, 10)
	s := styles.T().S()

	var top, bottom string
	if st.Track == nil {
		top = s.Muted.Render("Nothing playing. Press enter on a track.")
		bottom = flags(st)
	} else {
		status := icons.Pause()
		if st.Playing {
			status = icons.Play()
		}
		title := s.Title.Render(render.Truncate(st.Track.Title, inner*2/3))
		artist := ""
		if st.Track.Artist != "" {
			room := max(inner-lipgloss.Width(title)-5, 0)
			artist = s.Muted.Render(render.Truncate(st.Track.Artist, room))
		}
		top = status + " " + title
		if artist != "" {
			top += s.Subtle.Render(" · ") + artist
		}
		bottom = progressRow(st, inner)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		render.Row(top, "", inner),
		bottom,
	)
	return styles.Panel(st.Playing).
		Padding(0, 1).
		Width(width - 2).
		Render(content)
}

// progressRow renders "1:23 ━━━───── 3:58  vol 70%  shuffle  repeat:all".
func progressRow(st playback.State, width int) string {
	s := styles.T().S()
	cur, dur := st.CurrentTimeLabel, st.DurationLabel
	if cur == "" {
		cur = playback.FormatTime(st.Position)
	}
	if dur == "" {
		dur = playback.FormatTime(st.Duration)
	}
	tail := flags(st)
	fixed := lipgloss.Width(cur) + lipgloss.Width(dur) + lipgloss.Width(tail) + 4
	barWidth := max(width-fixed, minBar)

	filled := min(int(float64(barWidth)*clamp01(st.Progress)), barWidth)
	bar := s.Playing.Render(strings.Repeat("━", filled)) +
		s.Subtle.Render(strings.Repeat("─", barWidth-filled))

	return s.Muted.Render(cur) + " " + bar + " " + s.Muted.Render(dur) + "  " + tail
}

// flags renders the volume, shuffle and repeat indicators.
func flags(st playback.State) string {
	s := styles.T().S()
	parts := []string{s.Muted.Render(fmt.Sprintf("vol %d%%", st.Volume))}
	if st.Shuffle {
		parts = append(parts, s.Playing.Render(icons.Shuffle()))
	} else {
		parts = append(parts, s.Subtle.Render(icons.Shuffle()))
	}
	repeat := icons.Repeat(st.Repeat)
	if st.Repeat == queue.RepeatNone {
		parts = append(parts, s.Subtle.Render(repeat))
	} else {
		parts = append(parts, s.Playing.Render(repeat))
	}
	return strings.Join(parts, "  ")
}

// Banner renders the pending playback error, or "" when there is none.
func Banner(message string, width int) string {
	if message == "" {
		return ""
	}
	text := render.Truncate(message+". Skipping...", max(width-2, 1))
	return styles.T().S().Error.Render(" " + text)
}

func clamp01(f float64) float64 {
	return max(0, min(f, 1))
}
