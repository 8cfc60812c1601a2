// Package state persists user preferences between runs.
package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	dbutil "github.com/llehouerou/wavetube/internal/db"
)

const (
	appName      = "wavetube"
	dbFileName   = "wavetube.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager reads and writes preferences. Saves are debounced and flushed
// on Close.
type Manager struct {
	db        *sql.DB
	log       zerolog.Logger
	debounce  time.Duration
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Preferences
}

// Open opens the database at the default xdg data location.
func Open(log zerolog.Logger) (*Manager, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(path, log)
}

// OpenPath opens the database at path. dbutil.Memory gives a throwaway store.
func OpenPath(path string, log zerolog.Logger) (*Manager, error) {
	conn, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return &Manager{
		db:       conn,
		log:      log.With().Str("component", "state").Logger(),
		debounce: saveDebounce,
	}, nil
}

// DefaultPath returns the database path under the xdg data home.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	if pending != nil {
		if err := savePreferences(context.Background(), m.db, *pending); err != nil {
			m.log.Warn().Err(err).Msg("flush preferences")
		}
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// Preferences returns the saved preferences, or ok=false on first run.
func (m *Manager) Preferences(ctx context.Context) (p Preferences, ok bool, err error) {
	m.saveMu.Lock()
	pending := m.pending
	m.saveMu.Unlock()
	if pending != nil {
		return *pending, true, nil
	}
	return getPreferences(ctx, m.db)
}

// SavePreferences schedules p to be written after a short quiet period.
// Later calls replace earlier unsaved ones.
func (m *Manager) SavePreferences(p Preferences) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &p

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.debounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := savePreferences(context.Background(), m.db, *pending); err != nil {
				m.log.Warn().Err(err).Msg("save preferences")
			}
		}
	})
}
