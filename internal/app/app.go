// Package app is the terminal interface: a bubbletea model over the
// playback session, the catalog and the lyrics source.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/keymap"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/state"
	"github.com/llehouerou/wavetube/internal/ui/helpbindings"
	"github.com/llehouerou/wavetube/internal/ui/lyricsview"
	"github.com/llehouerou/wavetube/internal/ui/tracklist"
)

const defaultFetchTimeout = 15 * time.Second

// Options wires the model. Session and Catalog are required.
type Options struct {
	Session Session
	Catalog catalog.Provider
	Lyrics  LyricsFetcher

	// Events feeds session state into the view; nil disables updates.
	Events *playback.Subscription

	// Prefs receives preference changes; Preferences are the restored values.
	Prefs       state.Interface
	Preferences state.Preferences

	Announcer Announcer
	Stderr    <-chan string
	Timeout   time.Duration
	Log       zerolog.Logger
}

// Model is the root application model.
type Model struct {
	session   Session
	events    *playback.Subscription
	catalog   catalog.Provider
	lyrics    LyricsFetcher
	prefs     state.Interface
	announcer Announcer
	stderr    <-chan string
	timeout   time.Duration
	log       zerolog.Logger
	now       func() time.Time

	keys       *keymap.Resolver
	list       tracklist.Model
	lyricsView lyricsview.Model
	help       helpbindings.Model
	search     textinput.Model

	saved   state.Preferences
	state   playback.State
	query   string
	seq     int
	source  string
	fetched time.Time
	listErr string
	notice  string

	searching  bool
	showLyrics bool
	showHelp   bool
	width      int
	height     int
}

// New creates the model. The first catalog fetch runs from Init, for the
// restored query when there is one.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search YouTube music..."
	ti.CharLimit = 256

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	list := tracklist.New()
	list.SetFocused(true)

	m := Model{
		session:    opts.Session,
		events:     opts.Events,
		catalog:    opts.Catalog,
		lyrics:     opts.Lyrics,
		prefs:      opts.Prefs,
		announcer:  opts.Announcer,
		stderr:     opts.Stderr,
		timeout:    timeout,
		log:        opts.Log.With().Str("component", "app").Logger(),
		now:        time.Now,
		keys:       keymap.NewResolver(keymap.All),
		list:       list,
		lyricsView: lyricsview.New(),
		help:       helpbindings.New(),
		search:     ti,
		saved:      opts.Preferences,
		query:      opts.Preferences.LastQuery,
	}
	if opts.Session != nil {
		m.state = opts.Session.Snapshot()
	}
	m.list.SetLoading(listTitle(m.query))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchCatalog(m.seq, m.query),
		m.watchSession(),
		m.watchStderr(),
		statusTick(),
	)
}

func listTitle(query string) string {
	if query == "" {
		return "Trending"
	}
	return "Search: " + query
}
