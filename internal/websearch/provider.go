// Package websearch finds videos by scraping the YouTube results page.
// It needs neither an API key nor external binaries.
package websearch

import (
	"context"
	"net/http"

	"github.com/ppalone/ytsearch"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Name identifies the provider in configuration and logs.
const Name = "websearch"

type hit struct {
	VideoID  string
	Title    string
	Channel  string
	Duration string
}

type searchFunc func(ctx context.Context, query string) ([]hit, error)

// Provider is a search-only catalog provider.
type Provider struct {
	search searchFunc
}

// New creates a provider using client, or http.DefaultClient when nil.
func New(client *http.Client) *Provider {
	c := ytsearch.NewClient(client)
	return &Provider{search: func(ctx context.Context, q string) ([]hit, error) {
		res, err := c.Search(ctx, q)
		if err != nil {
			return nil, err
		}
		hits := make([]hit, 0, len(res.Results))
		for _, r := range res.Results {
			hits = append(hits, hit{
				VideoID:  r.VideoID,
				Title:    r.Title,
				Channel:  r.Channel,
				Duration: r.Duration,
			})
		}
		return hits, nil
	}}
}

func (p *Provider) Name() string { return Name }

func (p *Provider) Trending(context.Context) ([]catalog.Track, error) {
	return nil, catalog.ErrUnsupported
}

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
			ID:            h.VideoID,
			Title:         h.Title,
			Artist:        h.Channel,
			ThumbnailURL:  catalog.ThumbnailFor(h.VideoID),
			DurationLabel: h.Duration,
		})
	}
	return tracks, nil
}

var _ catalog.Provider = (*Provider)(nil)
