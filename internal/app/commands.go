package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavetube/internal/catalog"
)

const (
	statusTickInterval = 10 * time.Second
	lyricsTimeout      = 30 * time.Second
)

// fetchCatalog loads trending tracks for an empty query, search results
// otherwise.
func (m Model) fetchCatalog(seq int, query string) tea.Cmd {
	provider, timeout, now := m.catalog, m.timeout, m.now
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		res := catalog.Fetch(ctx, provider, query)
		return CatalogLoadedMsg{Seq: seq, Result: res, At: now()}
	}
}

func (m Model) fetchLyrics(t catalog.Track) tea.Cmd {
	if m.lyrics == nil {
		return nil
	}
	src := m.lyrics
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lyricsTimeout)
		defer cancel()
		return LyricsLoadedMsg{TrackID: t.ID, Result: src.Fetch(ctx, t.Title, t.Artist)}
	}
}

// watchSession waits for the next session event. It is re-issued after
// every event it returns.
func (m Model) watchSession() tea.Cmd {
	sub := m.events
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case st := <-sub.Changed:
			return StateMsg(st)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return SessionClosedMsg{}
		}
	}
}

func (m Model) watchStderr() tea.Cmd {
	ch := m.stderr
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return StderrMsg(line)
	}
}

func statusTick() tea.Cmd {
	return tea.Tick(statusTickInterval, func(t time.Time) tea.Msg {
		return StatusTickMsg(t)
	})
}
