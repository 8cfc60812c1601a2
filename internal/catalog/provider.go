package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrNoProviders is returned by an empty Chain.
var ErrNoProviders = errors.New("no catalog providers configured")

// ErrUnsupported is returned by providers that cannot serve a request kind
// (for example a search-only provider asked for trending tracks).
var ErrUnsupported = errors.New("operation not supported by provider")

// Provider supplies ordered track lists.
type Provider interface {
	Name() string
	Trending(ctx context.Context) ([]Track, error)
	Search(ctx context.Context, query string) ([]Track, error)
}

// Result is the outcome of a catalog fetch.
// Tracks is always non-nil; Err is set when every attempt failed.
type Result struct {
	Tracks []Track
	Query  string // empty for trending
	Source string // provider name that answered
	Err    error
}

// Fetch loads the trending list when query is blank, search results otherwise.
// Failures never propagate: they yield an empty list with Err set so the caller
// can surface the error and keep running.
func Fetch(ctx context.Context, p Provider, query string) Result {
	query = strings.TrimSpace(query)
	res := Result{Tracks: []Track{}, Query: query}
	if p == nil {
		res.Err = ErrNoProviders
		return res
	}

	var (
		tracks []Track
		err    error
	)
	if query == "" {
		tracks, err = p.Trending(ctx)
	} else {
		tracks, err = p.Search(ctx, query)
	}
	if err != nil {
		res.Err = err
		return res
	}

	res.Tracks = dedupe(tracks)
	res.Source = p.Name()
	return res
}

// dedupe drops tracks without an id and repeated ids, keeping first occurrence.
func dedupe(tracks []Track) []Track {
	out := make([]Track, 0, len(tracks))
	seen := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		if t.IsZero() || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}

// Chain tries each provider in order and returns the first successful answer.
type Chain []Provider

// Name returns the names of the chained providers.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return strings.Join(names, ",")
}

// Trending returns the first provider's trending list that succeeds.
func (c Chain) Trending(ctx context.Context) ([]Track, error) {
	return c.first(ctx, func(p Provider) ([]Track, error) {
		return p.Trending(ctx)
	})
}

// Search returns the first provider's search results that succeed.
func (c Chain) Search(ctx context.Context, query string) ([]Track, error) {
	return c.first(ctx, func(p Provider) ([]Track, error) {
		return p.Search(ctx, query)
	})
}

func (c Chain) first(ctx context.Context, call func(Provider) ([]Track, error)) ([]Track, error) {
	if len(c) == 0 {
		return nil, ErrNoProviders
	}
	var errs []error
	for _, p := range c {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tracks, err := call(p)
		if err == nil {
			return tracks, nil
		}
		if !errors.Is(err, ErrUnsupported) {
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
		}
	}
	if len(errs) == 0 {
		return nil, ErrUnsupported
	}
	return nil, errors.Join(errs...)
}
