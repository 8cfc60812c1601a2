package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavetube/internal/errmsg"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/ui/headerbar"
	"github.com/llehouerou/wavetube/internal/ui/playerbar"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case CatalogLoadedMsg:
		return m.handleCatalog(msg), nil

	case LyricsLoadedMsg:
		m.lyricsView.SetResult(msg.TrackID, msg.Result)
		m.lyricsView.SetPosition(m.state.Position)
		return m, nil

	case StateMsg:
		return m.handleState(playback.State(msg)), m.watchSession()

	case TrackChangedMsg:
		return m.handleTrackChanged(playback.TrackChange(msg))

	case PlaybackErrorMsg:
		m.log.Warn().
			Str("track", msg.TrackID).
			Int("code", int(msg.Code)).
			Str("kind", msg.Kind.String()).
			Msg("playback error")
		return m, m.watchSession()

	case SessionClosedMsg:
		m.events = nil
		return m, nil

	case StderrMsg:
		m.log.Warn().Str("line", string(msg)).Msg("stderr")
		m.notice = string(msg)
		return m, m.watchStderr()

	case StatusTickMsg:
		return m, statusTick()
	}

	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleCatalog(msg CatalogLoadedMsg) Model {
	if msg.Seq != m.seq {
		return m
	}
	res := msg.Result
	m.list.SetTracks(listTitle(res.Query), res.Tracks)
	m.source = res.Source
	m.fetched = msg.At
	m.listErr = ""
	if res.Err != nil {
		op := errmsg.OpCatalogTrending
		if res.Query != "" {
			op = errmsg.OpCatalogSearch
		}
		m.listErr = errmsg.FormatWith(op, res.Query, res.Err)
		m.log.Error().Err(res.Err).Str("query", res.Query).Msg("catalog fetch failed")
	} else {
		m.log.Info().
			Str("query", res.Query).
			Str("source", res.Source).
			Int("tracks", len(res.Tracks)).
			Msg("catalog loaded")
	}
	m.report(errmsg.OpCatalogLoad, m.session.SetCatalog(res.Tracks))
	return m
}

func (m Model) handleState(st playback.State) Model {
	banner := m.state.ErrorMessage != ""
	m.state = st
	if banner != (st.ErrorMessage != "") {
		m.layout()
	}
	if st.Track != nil {
		m.list.SetCurrent(st.Track.ID)
	} else {
		m.list.SetCurrent("")
	}
	m.lyricsView.SetPosition(st.Position)
	return m
}

func (m Model) handleTrackChanged(e playback.TrackChange) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.watchSession()}
	if e.Current == nil {
		return m, tea.Batch(cmds...)
	}
	t := *e.Current
	m.log.Debug().Str("track", t.ID).Bool("reload", e.Reload).Msg("track changed")
	m.list.SetCurrent(t.ID)
	m.list.FollowCurrent()
	if m.announcer != nil && (e.Previous == nil || e.Previous.ID != t.ID) {
		m.announcer.Track(t)
	}
	if m.showLyrics && m.lyricsView.TrackID() != t.ID {
		m.lyricsView.SetTrack(t)
		cmds = append(cmds, m.fetchLyrics(t))
	}
	return m, tea.Batch(cmds...)
}

// report logs a failed session command. Not-ready errors are expected
// while the player starts and are only logged at debug level.
func (m *Model) report(op errmsg.Op, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, playback.ErrNotReady) {
		m.log.Debug().Err(err).Str("op", string(op)).Msg("session not ready")
		return
	}
	m.log.Error().Err(err).Str("op", string(op)).Msg("session command failed")
	m.notice = errmsg.Format(op, err)
}

// layout distributes the window between the components.
func (m *Model) layout() {
	body := m.bodyHeight()
	m.list.SetSize(m.width, body)
	m.lyricsView.SetSize(m.width, body)
	m.help.SetSize(m.width, m.height)
	m.search.Width = max(m.width-4, 10)
	m.list.SetFocused(!m.showLyrics)
	m.lyricsView.SetFocused(m.showLyrics)
}

func (m Model) bodyHeight() int {
	used := headerbar.Height + playerbar.Height + 1 // status or search line
	if m.state.ErrorMessage != "" {
		used++
	}
	return max(m.height-used, 3)
}
