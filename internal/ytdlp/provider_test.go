package ytdlp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavetube/internal/catalog"
)

func TestParseLines(t *testing.T) {
	out := "abc\tFirst Song\tSome Artist\t213.0\n" +
		"def\tSecond\tNA\tNA\r\n" +
		"broken line\n" +
		"NA\tNo id\tX\t10\n" +
		"\n" +
		"ghi\tThird\tOther\t61\n"

	tracks := parseLines(out)

	require.Len(t, tracks, 3)
	assert.Equal(t, catalog.Track{
		ID:            "abc",
		Title:         "First Song",
		Artist:        "Some Artist",
		ThumbnailURL:  "https://i.ytimg.com/vi/abc/hqdefault.jpg",
		DurationLabel: "3:33",
	}, tracks[0])
	assert.Empty(t, tracks[1].Artist)
	assert.Empty(t, tracks[1].DurationLabel)
	assert.Equal(t, "1:01", tracks[2].DurationLabel)
}

func TestParseLines_Empty(t *testing.T) {
	tracks := parseLines("")

	assert.NotNil(t, tracks)
	assert.Empty(t, tracks)
}

func TestProvider_Search(t *testing.T) {
	var gotLimit int
	var gotTarget string
	p := New(Options{MaxResults: 5})
	p.run = func(_ context.Context, limit int, target string) (string, error) {
		gotLimit, gotTarget = limit, target
		return "x1\tT\tA\t30\n", nil
	}

	tracks, err := p.Search(context.Background(), "daft punk")
	require.NoError(t, err)

	assert.Equal(t, 5, gotLimit)
	assert.Equal(t, "ytsearch5:daft punk", gotTarget)
	require.Len(t, tracks, 1)
	assert.Equal(t, "x1", tracks[0].ID)
}

func TestProvider_Trending(t *testing.T) {
	var gotTarget string
	p := New(Options{TrendingPlaylist: "https://www.youtube.com/playlist?list=PL1"})
	p.run = func(_ context.Context, _ int, target string) (string, error) {
		gotTarget = target
		return "", nil
	}

	_, err := p.Trending(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://www.youtube.com/playlist?list=PL1", gotTarget)
}

func TestProvider_TrendingWithoutPlaylist(t *testing.T) {
	_, err := New(Options{}).Trending(context.Background())

	assert.ErrorIs(t, err, catalog.ErrUnsupported)
}

func TestProvider_RunError(t *testing.T) {
	boom := errors.New("exit status 1")
	p := New(Options{})
	p.run = func(context.Context, int, string) (string, error) { return "", boom }

	_, err := p.Search(context.Background(), "q")

	assert.ErrorIs(t, err, boom)
}
