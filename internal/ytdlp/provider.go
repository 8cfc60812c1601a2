// Package ytdlp lists playlists and searches through the yt-dlp binary.
package ytdlp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Name identifies the provider in configuration and logs.
const Name = "ytdlp"

// printTemplate emits one tab-separated line per flat playlist entry.
const printTemplate = "%(id)s\t%(title)s\t%(uploader)s\t%(duration)s"

// Options configure a Provider.
type Options struct {
	Executable       string // yt-dlp binary; empty uses PATH lookup
	TrendingPlaylist string
	MaxResults       int
}

type runFunc func(ctx context.Context, limit int, target string) (string, error)

// Provider is a catalog provider backed by yt-dlp flat playlist extraction.
type Provider struct {
	trending string
	max      int
	run      runFunc
}

// New creates a yt-dlp provider.
func New(opts Options) *Provider {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 25
	}
	return &Provider{
		trending: opts.TrendingPlaylist,
		max:      opts.MaxResults,
		run:      commandRunner(opts.Executable),
	}
}

func (p *Provider) Name() string { return Name }

// Trending lists the configured trending playlist.
func (p *Provider) Trending(ctx context.Context) ([]catalog.Track, error) {
	if p.trending == "" {
		return nil, catalog.ErrUnsupported
	}
	out, err := p.run(ctx, p.max, p.trending)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp trending: %w", err)
	}
	return parseLines(out), nil
}

// Search runs a ytsearchN: query.
func (p *Provider) Search(ctx context.Context, query string) ([]catalog.Track, error) {
	target := "ytsearch" + strconv.Itoa(p.max) + ":" + query
	out, err := p.run(ctx, p.max, target)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp search: %w", err)
	}
	return parseLines(out), nil
}

func commandRunner(executable string) runFunc {
	return func(ctx context.Context, limit int, target string) (string, error) {
		cmd := goytdlp.New().
			Quiet().
			NoWarnings()
		if executable != "" {
			cmd.SetExecutable(executable)
		}
		res, err := cmd.
			FlatPlaylist().
			Print(printTemplate).
			PlaylistItems(fmt.Sprintf("1-%d", limit)).
			IgnoreConfig().
			Run(ctx, target)
		if err != nil {
			return "", err
		}
		return res.Stdout, nil
	}
}

// parseLines converts printTemplate output into tracks, skipping malformed lines.
func parseLines(out string) []catalog.Track {
	tracks := []catalog.Track{}
	for line := range strings.SplitSeq(strings.TrimSpace(out), "\n") {
		parts := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(parts) < 4 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		if id == "" || id == "NA" {
			continue
		}
		t := catalog.Track{
			ID:           id,
			Title:        na(parts[1]),
			Artist:       na(parts[2]),
			ThumbnailURL: catalog.ThumbnailFor(id),
		}
		if secs, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err == nil {
			t.DurationLabel = catalog.DurationLabel(time.Duration(secs * float64(time.Second)))
		}
		tracks = append(tracks, t)
	}
	return tracks
}

// na maps yt-dlp's placeholder for missing fields to "".
func na(s string) string {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return ""
	}
	return s
}

var _ catalog.Provider = (*Provider)(nil)
