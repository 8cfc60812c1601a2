// Package ytmusic searches YouTube Music.
package ytmusic

import (
	"context"
	"strings"

	yt "github.com/raitonoberu/ytmusic"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Name identifies the provider in configuration and logs.
const Name = "ytmusic"

// hit is the subset of a YouTube Music track result we use.
type hit struct {
	VideoID string
	Title   string
	Artists []string
}

type searchFunc func(ctx context.Context, query string) ([]hit, error)

// Provider is a search-only catalog provider.
type Provider struct {
	search searchFunc
}

// New creates a YouTube Music provider.
func New() *Provider {
	return &Provider{search: trackSearch}
}

func (p *Provider) Name() string { return Name }

// Trending is not offered by YouTube Music search.
func (p *Provider) Trending(context.Context) ([]catalog.Track, error) {
	return nil, catalog.ErrUnsupported
}

// Search returns the first page of track results for query.
func (p *Provider) Search(ctx context.Context, query string) ([]catalog.Track, error) {
	hits, err := p.search(ctx, query)
	if err != nil {
		return nil, err
	}
	tracks := make([]catalog.Track, 0, len(hits))
	for _, h := range hits {
		if h.VideoID == "" {
			continue
		}
		tracks = append(tracks, catalog.Track{
			ID:           h.VideoID,
			Title:        h.Title,
			Artist:       strings.Join(h.Artists, ", "),
			ThumbnailURL: catalog.ThumbnailFor(h.VideoID),
		})
	}
	return tracks, nil
}

// trackSearch runs the library search in a goroutine so ctx can abandon it.
func trackSearch(ctx context.Context, query string) ([]hit, error) {
	type result struct {
		hits []hit
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		r, err := yt.TrackSearch(query).Next()
		if err != nil {
			ch <- result{err: err}
			return
		}
		hits := make([]hit, 0, len(r.Tracks))
		for _, t := range r.Tracks {
			h := hit{VideoID: t.VideoID, Title: t.Title}
			for _, a := range t.Artists {
				h.Artists = append(h.Artists, a.Name)
			}
			hits = append(hits, h)
		}
		ch <- result{hits: hits}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.hits, r.err
	}
}

var _ catalog.Provider = (*Provider)(nil)
