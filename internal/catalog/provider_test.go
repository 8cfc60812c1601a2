package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name     string
	trending []Track
	search   []Track
	err      error
	queries  []string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Trending(_ context.Context) ([]Track, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.trending, nil
}

func (s *stubProvider) Search(_ context.Context, query string) ([]Track, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	return s.search, nil
}

func TestFetch_BlankQueryLoadsTrending(t *testing.T) {
	p := &stubProvider{
		name:     "stub",
		trending: []Track{{ID: "a"}, {ID: "b"}},
	}

	res := Fetch(context.Background(), p, "   ")

	require.NoError(t, res.Err)
	assert.Equal(t, []Track{{ID: "a"}, {ID: "b"}}, res.Tracks)
	assert.Equal(t, "stub", res.Source)
	assert.Empty(t, res.Query)
	assert.Empty(t, p.queries)
}

func TestFetch_SearchTrimsQuery(t *testing.T) {
	p := &stubProvider{name: "stub", search: []Track{{ID: "x"}}}

	res := Fetch(context.Background(), p, "  daft punk ")

	require.NoError(t, res.Err)
	assert.Equal(t, []string{"daft punk"}, p.queries)
	assert.Equal(t, "daft punk", res.Query)
	assert.Len(t, res.Tracks, 1)
}

func TestFetch_FailureYieldsEmptyList(t *testing.T) {
	boom := errors.New("quota exceeded")
	p := &stubProvider{name: "stub", err: boom}

	res := Fetch(context.Background(), p, "")

	require.ErrorIs(t, res.Err, boom)
	assert.NotNil(t, res.Tracks)
	assert.Empty(t, res.Tracks)
}

func TestFetch_NilProvider(t *testing.T) {
	res := Fetch(context.Background(), nil, "q")

	assert.ErrorIs(t, res.Err, ErrNoProviders)
	assert.Empty(t, res.Tracks)
}

func TestFetch_DropsDuplicatesAndBlankIDs(t *testing.T) {
	p := &stubProvider{
		name:     "stub",
		trending: []Track{{ID: "a", Title: "first"}, {ID: ""}, {ID: "a", Title: "dup"}, {ID: "b"}},
	}

	res := Fetch(context.Background(), p, "")

	require.Len(t, res.Tracks, 2)
	assert.Equal(t, "first", res.Tracks[0].Title)
	assert.Equal(t, "b", res.Tracks[1].ID)
}

func TestChain_FallsBackToNextProvider(t *testing.T) {
	failing := &stubProvider{name: "api", err: errors.New("no key")}
	working := &stubProvider{name: "music", search: []Track{{ID: "z"}}}
	c := Chain{failing, working}

	tracks, err := c.Search(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, []Track{{ID: "z"}}, tracks)
	assert.Equal(t, "api,music", c.Name())
}

func TestChain_JoinsErrors(t *testing.T) {
	errA := errors.New("a down")
	errB := errors.New("b down")
	c := Chain{&stubProvider{name: "a", err: errA}, &stubProvider{name: "b", err: errB}}

	_, err := c.Trending(context.Background())

	require.ErrorIs(t, err, errA)
	require.ErrorIs(t, err, errB)
}

func TestChain_SkipsUnsupported(t *testing.T) {
	c := Chain{&stubProvider{name: "a", err: ErrUnsupported}}

	_, err := c.Trending(context.Background())

	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestChain_Empty(t *testing.T) {
	_, err := Chain{}.Search(context.Background(), "q")

	assert.ErrorIs(t, err, ErrNoProviders)
}

func TestTrack_String(t *testing.T) {
	assert.Equal(t, "Artist - Song", Track{Title: "Song", Artist: "Artist"}.String())
	assert.Equal(t, "Song", Track{Title: "Song"}.String())
}

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "4:13", DurationLabel(4*time.Minute+13*time.Second))
	assert.Equal(t, "0:00", DurationLabel(-time.Second))
}

func TestThumbnailFor(t *testing.T) {
	assert.Equal(t, "https://i.ytimg.com/vi/abc/hqdefault.jpg", ThumbnailFor("abc"))
	assert.Empty(t, ThumbnailFor(""))
}
