package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/config"
	"github.com/llehouerou/wavetube/internal/lyrics"
	"github.com/llehouerou/wavetube/internal/queue"
	"github.com/llehouerou/wavetube/internal/state"
)

var sampleTracks = []catalog.Track{
	{ID: "abc", Title: "First Song", Artist: "Band", DurationLabel: "3:05"},
	{ID: "def", Title: "Second", Artist: "Solo"},
}

func withJSON(t *testing.T, on bool) {
	t.Helper()
	prev := jsonOut
	jsonOut = on
	t.Cleanup(func() { jsonOut = prev })
}

func TestBuildCatalog_Order(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "defaults without key skip youtube",
			want: "ytmusic,ytdlp,websearch",
		},
		{
			name: "defaults with key",
			cfg:  config.Config{Catalog: config.CatalogConfig{APIKey: "k"}},
			want: "youtube,ytmusic,ytdlp,websearch",
		},
		{
			name: "configured order and unknown names",
			cfg:  config.Config{Catalog: config.CatalogConfig{Providers: []string{"websearch", "bogus", "ytmusic"}}},
			want: "websearch,ytmusic",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := buildCatalog(&tt.cfg, zerolog.Nop())
			assert.Equal(t, tt.want, chain.Name())
		})
	}
}

func TestBuildLyrics_CacheOpened(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.db")
	c := &config.Config{Lyrics: config.LyricsConfig{CachePath: path}}

	src, closer := buildLyrics(c, zerolog.Nop())
	require.NotNil(t, src)
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}

func TestPrintTracks_Table(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printTracks(&buf, sampleTracks, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Contains(t, lines[1], "First Song")
	assert.Contains(t, lines[1], "3:05")
	assert.True(t, strings.HasPrefix(lines[2], "2 "))
}

func TestPrintTracks_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, printTracks(&buf, sampleTracks, true))

	var got []trackJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", got[0].URL)
	assert.Empty(t, got[1].Duration)
}

type stubProvider struct {
	tracks []catalog.Track
	err    error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Trending(context.Context) ([]catalog.Track, error) {
	return s.tracks, s.err
}

func (s stubProvider) Search(context.Context, string) ([]catalog.Track, error) {
	return s.tracks, s.err
}

func TestPrintCatalog(t *testing.T) {
	withJSON(t, false)
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, printCatalog(context.Background(), cmd, stubProvider{tracks: sampleTracks}, ""))
	assert.Contains(t, buf.String(), "Second")

	err := printCatalog(context.Background(), cmd, stubProvider{err: errors.New("boom")}, "q")
	require.Error(t, err)
	assert.Equal(t, "Failed to search tracks 'q': boom", err.Error())
}

type stubLyrics struct{ res lyrics.Result }

func (s stubLyrics) Fetch(context.Context, string, string) lyrics.Result { return s.res }

func TestPrintLyrics(t *testing.T) {
	synced := lyrics.ParseLRC("[00:01.00]one\n[00:02.50]two")
	res := lyrics.Result{Text: synced.Text(), Lyrics: synced, Source: lyrics.SourceLrclib}

	t.Run("plain text", func(t *testing.T) {
		withJSON(t, false)
		var buf bytes.Buffer
		require.NoError(t, printLyrics(context.Background(), &buf, stubLyrics{res}, "Song", "Band"))
		assert.Equal(t, "one\ntwo\n", buf.String())
	})

	t.Run("synced stamps", func(t *testing.T) {
		withJSON(t, false)
		lyricsSynced = true
		t.Cleanup(func() { lyricsSynced = false })
		var buf bytes.Buffer
		require.NoError(t, printLyrics(context.Background(), &buf, stubLyrics{res}, "Song", "Band"))
		assert.Equal(t, "[00:01.00] one\n[00:02.50] two\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		withJSON(t, true)
		var buf bytes.Buffer
		require.NoError(t, printLyrics(context.Background(), &buf, stubLyrics{res}, "Song", ""))
		var got lyricsJSON
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.True(t, got.Synced)
		assert.Equal(t, lyrics.SourceLrclib, got.Source)
	})

	t.Run("fallback is an error", func(t *testing.T) {
		withJSON(t, false)
		fallback := lyrics.Result{Text: lyrics.FallbackText, Source: lyrics.SourceFallback, Err: errors.New("offline")}
		err := printLyrics(context.Background(), &bytes.Buffer{}, stubLyrics{fallback}, "Song", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "offline")
	})
}

func TestSessionConfig(t *testing.T) {
	vol := 30
	c := &config.Config{Session: config.SessionConfig{Volume: &vol, Repeat: "one", SkipDelayMs: 1000}}

	fresh := sessionConfig(c, state.Preferences{}, false)
	assert.Equal(t, 30, fresh.Volume)
	assert.Equal(t, queue.RepeatOne, fresh.Repeat)
	assert.Equal(t, time.Second, fresh.SkipDelay)
	assert.Equal(t, "https://www.youtube.com", fresh.Origin)

	restored := sessionConfig(c, state.Preferences{Volume: 55, Shuffle: true, Repeat: queue.RepeatAll}, true)
	assert.Equal(t, 55, restored.Volume)
	assert.True(t, restored.Shuffle)
	assert.Equal(t, queue.RepeatAll, restored.Repeat)
}
