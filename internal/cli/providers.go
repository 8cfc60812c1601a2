package cli

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/config"
	"github.com/llehouerou/wavetube/internal/lrclib"
	"github.com/llehouerou/wavetube/internal/lyrics"
	"github.com/llehouerou/wavetube/internal/ollama"
	"github.com/llehouerou/wavetube/internal/websearch"
	"github.com/llehouerou/wavetube/internal/youtube"
	"github.com/llehouerou/wavetube/internal/ytdlp"
	"github.com/llehouerou/wavetube/internal/ytmusic"
)

// buildCatalog chains the configured providers in order. Unknown names and
// "youtube" without an API key are skipped with a warning.
func buildCatalog(c *config.Config, log zerolog.Logger) catalog.Chain {
	cc := c.GetCatalogConfig()
	var chain catalog.Chain
	for _, name := range cc.Providers {
		switch name {
		case youtube.Name:
			if !c.HasYouTubeAPI() {
				log.Debug().Msg("youtube provider skipped: no api key")
				continue
			}
			chain = append(chain, youtube.New(youtube.Options{
				APIKey:     cc.APIKey,
				Region:     cc.Region,
				MaxResults: cc.MaxResults,
				Timeout:    cc.Timeout(),
			}))
		case ytmusic.Name:
			chain = append(chain, ytmusic.New())
		case ytdlp.Name:
			chain = append(chain, ytdlp.New(ytdlp.Options{
				Executable:       cc.YtdlpPath,
				TrendingPlaylist: cc.TrendingPlaylist,
				MaxResults:       cc.MaxResults,
			}))
		case websearch.Name:
			chain = append(chain, websearch.New(&http.Client{Timeout: cc.Timeout()}))
		default:
			log.Warn().Str("provider", name).Msg("unknown catalog provider")
		}
	}
	log.Info().Str("providers", chain.Name()).Msg("catalog configured")
	return chain
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// buildLyrics wires lrclib, the optional ollama generator and the bbolt
// cache. A cache that cannot be opened is skipped.
func buildLyrics(c *config.Config, log zerolog.Logger) (*lyrics.Source, io.Closer) {
	lc := c.GetLyricsConfig()

	var gen lyrics.Generator
	if c.HasOllama() {
		gen = ollama.New(lc.OllamaHost, lc.OllamaModel)
	}

	var (
		store  lyrics.Store
		closer io.Closer = nopCloser{}
	)
	cache, err := lyrics.OpenCache(lc.CachePath)
	if err != nil {
		log.Warn().Err(err).Str("path", lc.CachePath).Msg("lyrics cache disabled")
	} else {
		store, closer = cache, cache
	}

	return lyrics.NewSource(lrclib.New(lc.LrclibURL), gen, store, log), closer
}
