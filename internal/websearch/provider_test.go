package websearch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/wavetube/internal/catalog"
)

func TestProvider_Search(t *testing.T) {
	p := &Provider{search: func(context.Context, string) ([]hit, error) {
		return []hit{
			{VideoID: "abc", Title: "Song", Channel: "Artist", Duration: "3:21"},
			{Title: "no id"},
		}, nil
	}}

	tracks, err := p.Search(context.Background(), "song")
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "abc", tracks[0].ID)
	assert.Equal(t, "Artist", tracks[0].Artist)
	assert.Equal(t, "3:21", tracks[0].DurationLabel)
	assert.Equal(t, catalog.ThumbnailFor("abc"), tracks[0].ThumbnailURL)
}

func TestProvider_Trending(t *testing.T) {
	_, err := New(nil).Trending(context.Background())

	assert.ErrorIs(t, err, catalog.ErrUnsupported)
}
