package lyricsview

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/keymap"
	"github.com/llehouerou/wavetube/internal/lyrics"
)

var track = catalog.Track{ID: "abc", Title: "Song", Artist: "Band"}

func synced(n int) lyrics.Result {
	l := &lyrics.Lyrics{}
	for i := range n {
		l.Lines = append(l.Lines, lyrics.Line{
			Time: time.Duration(i+1) * time.Second,
			Text: fmt.Sprintf("line %d", i),
		})
	}
	return lyrics.Result{Text: l.Text(), Lyrics: l, Source: lyrics.SourceLrclib}
}

func loaded(t *testing.T, n int) Model {
	t.Helper()
	m := New()
	m.SetSize(60, 14)
	m.SetTrack(track)
	m.SetResult(track.ID, synced(n))
	return m
}

func TestModel_EmptyAndLoading(t *testing.T) {
	m := New()
	m.SetSize(60, 10)
	assert.Contains(t, ansi.Strip(m.View()), "Select a song")

	m.SetTrack(track)

	assert.True(t, m.Loading())
	assert.Contains(t, ansi.Strip(m.View()), "Loading lyrics...")
	assert.Contains(t, ansi.Strip(m.View()), "Song · Band")
}

func TestModel_StaleResultDropped(t *testing.T) {
	m := New()
	m.SetTrack(track)

	m.SetResult("other", synced(3))

	assert.True(t, m.Loading())
}

func TestModel_PlainText(t *testing.T) {
	m := New()
	m.SetSize(60, 10)
	m.SetTrack(track)

	m.SetResult(track.ID, lyrics.Result{Text: lyrics.NotFoundText, Source: lyrics.SourceNotFound})
	m.SetPosition(10 * time.Second)

	assert.Contains(t, ansi.Strip(m.View()), lyrics.NotFoundText)
	assert.Equal(t, -1, m.Current())
}

func TestModel_FollowsPosition(t *testing.T) {
	m := loaded(t, 50)

	m.SetPosition(30500 * time.Millisecond)

	assert.Equal(t, 29, m.Current())
	assert.Equal(t, 29-m.visibleHeight()/2, m.Offset())
}

func TestModel_ManualScrollStopsFollowing(t *testing.T) {
	m := loaded(t, 50)
	m.SetPosition(5 * time.Second)
	before := m.Offset()

	assert.True(t, m.Apply(keymap.ActionPageDown))
	scrolled := m.Offset()
	m.SetPosition(40 * time.Second)

	assert.Greater(t, scrolled, before)
	assert.Equal(t, scrolled, m.Offset())

	assert.True(t, m.Apply(keymap.ActionJumpStart))
	assert.Equal(t, 39-m.visibleHeight()/2, m.Offset())
}

func TestModel_ScrollClamped(t *testing.T) {
	m := loaded(t, 12)

	m.Apply(keymap.ActionJumpEnd)
	assert.Equal(t, 2, m.Offset())

	m.Apply(keymap.ActionMoveDown)
	assert.Equal(t, 2, m.Offset())

	m.Apply(keymap.ActionPageUp)
	assert.Equal(t, 0, m.Offset())

	assert.False(t, m.Apply(keymap.ActionSelect))
}

func TestModel_ViewSize(t *testing.T) {
	m := loaded(t, 50)
	m.SetPosition(3 * time.Second)

	out := m.View()

	assert.Equal(t, 14, lipgloss.Height(out))
	for _, line := range strings.Split(ansi.Strip(out), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
	assert.Contains(t, ansi.Strip(out), "line 2")
	assert.Contains(t, ansi.Strip(out), lyrics.SourceLrclib)
}
