package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbutil "github.com/llehouerou/wavetube/internal/db"
	"github.com/llehouerou/wavetube/internal/queue"
)

func openTest(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(dbutil.Memory, zerolog.Nop())
	require.NoError(t, err)
	return m
}

func TestPreferences_Empty(t *testing.T) {
	m := openTest(t)
	defer m.Close()

	_, ok, err := m.Preferences(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveAndGetPreferences(t *testing.T) {
	m := openTest(t)
	defer m.Close()
	want := Preferences{Volume: 42, Shuffle: true, Repeat: queue.RepeatOne, LastQuery: "daft punk"}

	require.NoError(t, savePreferences(context.Background(), m.db, want))
	got, ok, err := getPreferences(context.Background(), m.db)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSavePreferences_Overwrites(t *testing.T) {
	m := openTest(t)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, savePreferences(ctx, m.db, Preferences{Volume: 10, Repeat: queue.RepeatAll}))
	require.NoError(t, savePreferences(ctx, m.db, Preferences{Volume: 90}))

	got, _, err := getPreferences(ctx, m.db)
	require.NoError(t, err)
	assert.Equal(t, 90, got.Volume)
	assert.Equal(t, queue.RepeatNone, got.Repeat)

	var rows int
	require.NoError(t, m.db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestGetPreferences_UnknownRepeat(t *testing.T) {
	m := openTest(t)
	defer m.Close()
	_, err := m.db.Exec(`INSERT INTO preferences (id, volume, shuffle, repeat_mode, updated_at)
		VALUES (1, 5, 0, 'sometimes', 0)`)
	require.NoError(t, err)

	got, ok, err := m.Preferences(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, queue.RepeatNone, got.Repeat)
}

func TestSavePreferences_Debounced(t *testing.T) {
	m := openTest(t)
	defer m.Close()
	m.debounce = 20 * time.Millisecond
	ctx := context.Background()

	m.SavePreferences(Preferences{Volume: 1})
	m.SavePreferences(Preferences{Volume: 2})

	// Pending values are visible before they hit the database.
	got, ok, err := m.Preferences(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, got.Volume)

	assert.Eventually(t, func() bool {
		p, stored, err := getPreferences(ctx, m.db)
		return err == nil && stored && p.Volume == 2
	}, time.Second, 5*time.Millisecond)
}

func TestClose_FlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	m, err := OpenPath(path, zerolog.Nop())
	require.NoError(t, err)

	m.SavePreferences(Preferences{Volume: 33, Shuffle: true})
	require.NoError(t, m.Close())

	m, err = OpenPath(path, zerolog.Nop())
	require.NoError(t, err)
	defer m.Close()

	got, ok, err := m.Preferences(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 33, got.Volume)
	assert.True(t, got.Shuffle)
}

func TestSchemaVersion(t *testing.T) {
	m := openTest(t)
	defer m.Close()

	require.NoError(t, initSchema(m.db), "schema init is idempotent")

	var v int
	require.NoError(t, m.db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&v))
	assert.Equal(t, currentSchemaVersion, v)
}

func TestMock(t *testing.T) {
	m := NewMock()

	_, ok, _ := m.Preferences(context.Background())
	assert.False(t, ok)

	m.SavePreferences(Preferences{Volume: 5})
	got, ok, _ := m.Preferences(context.Background())
	assert.True(t, ok)
	assert.Equal(t, 5, got.Volume)
	assert.Len(t, m.Saves(), 1)

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
