package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/wavetube/internal/errmsg"
	"github.com/llehouerou/wavetube/internal/keymap"
)

const (
	volumeStep = 5
	seekStep   = 0.05
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}
	m.notice = ""
	action := m.keys.Resolve(msg.String())
	if m.showHelp {
		switch action {
		case keymap.ActionHelp, keymap.ActionBack, keymap.ActionQuit:
			m.showHelp = false
		default:
			m.help.Apply(action)
		}
		return m, nil
	}
	return m.handleAction(action)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		query := strings.TrimSpace(m.search.Value())
		m.saved.LastQuery = query
		m.savePreferences()
		return m, m.load(query)
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// load starts a catalog fetch, superseding any fetch in flight.
func (m *Model) load(query string) tea.Cmd {
	m.seq++
	m.query = query
	m.list.SetLoading(listTitle(query))
	return m.fetchCatalog(m.seq, query)
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit

	case keymap.ActionSearch:
		m.searching = true
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		focus := m.search.Focus()
		return m, tea.Batch(focus, textinput.Blink)

	case keymap.ActionHelp:
		m.showHelp = true

	case keymap.ActionToggleLyrics:
		return m.toggleLyrics()

	case keymap.ActionBack:
		if m.showLyrics {
			m.showLyrics = false
			m.layout()
			return m, nil
		}
		if m.query != "" {
			m.saved.LastQuery = ""
			m.savePreferences()
			return m, m.load("")
		}

	case keymap.ActionRefresh:
		return m, m.load(m.query)

	case keymap.ActionPlayPause:
		m.report(errmsg.OpPlayPause, m.session.TogglePlay())

	case keymap.ActionNextTrack:
		m.report(errmsg.OpSkip, m.session.Next())

	case keymap.ActionPrevTrack:
		m.report(errmsg.OpSkip, m.session.Previous())

	case keymap.ActionSeekForward:
		m.report(errmsg.OpPlaybackSeek, m.session.SeekFraction(m.state.Progress+seekStep))

	case keymap.ActionSeekBack:
		m.report(errmsg.OpPlaybackSeek, m.session.SeekFraction(m.state.Progress-seekStep))

	case keymap.ActionVolumeUp, keymap.ActionVolumeDown:
		step := volumeStep
		if action == keymap.ActionVolumeDown {
			step = -step
		}
		volume := max(0, min(100, m.state.Volume+step))
		m.state.Volume = volume
		m.report(errmsg.OpVolumeSet, m.session.SetVolume(volume))
		m.saved.Volume = volume
		m.savePreferences()

	case keymap.ActionToggleShuffle:
		m.saved.Shuffle = m.session.ToggleShuffle()
		m.state.Shuffle = m.saved.Shuffle
		m.savePreferences()

	case keymap.ActionCycleRepeat:
		m.saved.Repeat = m.session.CycleRepeatMode()
		m.state.Repeat = m.saved.Repeat
		m.savePreferences()

	case keymap.ActionSelect:
		if m.showLyrics {
			return m, nil
		}
		if t, ok := m.list.Selected(); ok {
			m.report(errmsg.OpPlaybackStart, m.session.Select(t))
		}

	case keymap.ActionMoveUp, keymap.ActionMoveDown,
		keymap.ActionJumpStart, keymap.ActionJumpEnd,
		keymap.ActionPageUp, keymap.ActionPageDown:
		if m.showLyrics {
			m.lyricsView.Apply(action)
		} else {
			m.list.Apply(action)
		}
	}
	return m, nil
}

func (m Model) toggleLyrics() (tea.Model, tea.Cmd) {
	m.showLyrics = !m.showLyrics
	m.layout()
	if !m.showLyrics || m.state.Track == nil {
		return m, nil
	}
	t := *m.state.Track
	if m.lyricsView.TrackID() == t.ID {
		return m, nil
	}
	m.lyricsView.SetTrack(t)
	return m, m.fetchLyrics(t)
}

func (m Model) savePreferences() {
	if m.prefs == nil {
		return
	}
	m.prefs.SavePreferences(m.saved)
}
