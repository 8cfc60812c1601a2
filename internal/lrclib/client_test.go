package lrclib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"id":1,"trackName":"Song","artistName":"Band",
			"plainLyrics":"la la","syncedLyrics":"[00:01.00]la la"}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL+"/").Get(context.Background(), "Band", "Song", 200*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "/api/get", got.URL.Path)
	assert.Equal(t, "Band", got.URL.Query().Get("artist_name"))
	assert.Equal(t, "Song", got.URL.Query().Get("track_name"))
	assert.Equal(t, "200", got.URL.Query().Get("duration"))
	assert.Contains(t, got.Header.Get("User-Agent"), "wavetube")
	assert.True(t, res.HasSyncedLyrics())
	assert.True(t, res.HasPlainLyrics())
	assert.Equal(t, "la la", res.PlainLyrics)
}

func TestClient_GetWithoutDuration(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), "a", "b", 0)
	require.NoError(t, err)

	assert.False(t, got.URL.Query().Has("duration"))
}

func TestClient_GetNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), "a", "b", 0)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Search(context.Background(), "x")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "band song", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`[{"id":1,"plainLyrics":"a"},{"id":2,"instrumental":true}]`))
	}))
	defer srv.Close()

	res, err := New(srv.URL).Search(context.Background(), "band song")
	require.NoError(t, err)

	require.Len(t, res, 2)
	assert.Equal(t, 1, res[0].ID)
	assert.True(t, res[1].Instrumental)
	assert.False(t, res[1].HasPlainLyrics())
}
