package lyrics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/lrclib"
)

const (
	// FallbackText is shown when every lookup failed.
	FallbackText = "Failed to load lyrics. Please try again later."
	// NotFoundText is shown when lookups succeeded but found nothing.
	NotFoundText = "Lyrics not found for this track."
)

// Where a Result came from.
const (
	SourceCache     = "cache"
	SourceLrclib    = "lrclib"
	SourceGenerated = "generated"
	SourceNotFound  = "not_found"
	SourceFallback  = "fallback"
)

// Finder looks up lyrics in a lyrics database.
type Finder interface {
	Get(ctx context.Context, artist, title string, duration time.Duration) (*lrclib.LyricsResult, error)
}

// Generator produces text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Store persists lyrics between runs.
type Store interface {
	Get(title, artist string) (Entry, bool, error)
	Put(title, artist string, e Entry) error
}

// Result is what Fetch returns. Text is always displayable.
type Result struct {
	Text   string
	Lyrics *Lyrics // nil for the fixed messages
	Source string
	Err    error // last lookup error, informational only
}

// Source fetches lyrics for a track, trying each backend in turn.
type Source struct {
	finder    Finder
	generator Generator
	store     Store
	log       zerolog.Logger
}

// NewSource creates a source. Any backend may be nil.
func NewSource(finder Finder, generator Generator, store Store, log zerolog.Logger) *Source {
	return &Source{
		finder:    finder,
		generator: generator,
		store:     store,
		log:       log.With().Str("component", "lyrics").Logger(),
	}
}

// Fetch never fails: when nothing answers it returns FallbackText.
func (s *Source) Fetch(ctx context.Context, title, artist string) Result {
	title, artist = strings.TrimSpace(title), strings.TrimSpace(artist)
	if title == "" {
		return Result{Text: NotFoundText, Source: SourceNotFound}
	}

	if s.store != nil {
		e, ok, err := s.store.Get(title, artist)
		if err != nil {
			s.log.Warn().Err(err).Msg("lyrics cache read failed")
		} else if ok {
			return resultFrom(e, SourceCache)
		}
	}

	var lastErr error
	notFound := false

	if s.finder != nil {
		e, err := s.lookup(ctx, title, artist)
		switch {
		case err == nil:
			s.save(title, artist, e)
			return resultFrom(e, SourceLrclib)
		case errors.Is(err, lrclib.ErrNotFound):
			notFound = true
		default:
			lastErr = err
			s.log.Debug().Err(err).Str("title", title).Msg("lrclib lookup failed")
		}
	}

	if s.generator != nil {
		text, err := s.generator.Generate(ctx, Prompt(title, artist))
		switch {
		case err != nil:
			lastErr = err
			s.log.Debug().Err(err).Str("title", title).Msg("lyrics generation failed")
		case isNotFoundAnswer(text):
			notFound = true
		default:
			e := Entry{Content: text, Source: SourceGenerated}
			s.save(title, artist, e)
			return resultFrom(e, SourceGenerated)
		}
	}

	if notFound {
		return Result{Text: NotFoundText, Source: SourceNotFound, Err: lastErr}
	}
	if lastErr == nil {
		lastErr = errors.New("no lyrics backend configured")
	}
	return Result{Text: FallbackText, Source: SourceFallback, Err: lastErr}
}

func (s *Source) lookup(ctx context.Context, title, artist string) (Entry, error) {
	res, err := s.finder.Get(ctx, artist, title, 0)
	if err != nil {
		return Entry{}, err
	}
	switch {
	case res.HasSyncedLyrics():
		return Entry{Content: res.SyncedLyrics, Synced: true, Source: SourceLrclib}, nil
	case res.HasPlainLyrics():
		return Entry{Content: res.PlainLyrics, Source: SourceLrclib}, nil
	case res.Instrumental:
		return Entry{Content: "Instrumental", Source: SourceLrclib}, nil
	}
	return Entry{}, lrclib.ErrNotFound
}

func (s *Source) save(title, artist string, e Entry) {
	if s.store == nil {
		return
	}
	if err := s.store.Put(title, artist, e); err != nil {
		s.log.Warn().Err(err).Msg("lyrics cache write failed")
	}
}

func resultFrom(e Entry, source string) Result {
	var l *Lyrics
	if e.Synced {
		l = ParseLRC(e.Content)
	} else {
		l = ParsePlain(e.Content)
	}
	if len(l.Lines) == 0 {
		return Result{Text: NotFoundText, Source: SourceNotFound}
	}
	return Result{Text: l.Text(), Lyrics: l, Source: source}
}

// Prompt is the generation prompt for a track.
func Prompt(title, artist string) string {
	by := ""
	if artist != "" {
		by = fmt.Sprintf(" by %q", artist)
	}
	return fmt.Sprintf("Provide the full lyrics for the song %q%s.\n"+
		"Return ONLY the plain text lyrics with normal line breaks.\n"+
		"Do not include any conversational text, introductions, or metadata.\n"+
		"If you truly cannot find the lyrics, just say %q", title, by, NotFoundText)
}

func isNotFoundAnswer(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(t, "lyrics not found")
}
