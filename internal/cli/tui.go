package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavetube/internal/app"
	"github.com/llehouerou/wavetube/internal/config"
	"github.com/llehouerou/wavetube/internal/errmsg"
	"github.com/llehouerou/wavetube/internal/icons"
	"github.com/llehouerou/wavetube/internal/logging"
	"github.com/llehouerou/wavetube/internal/mpris"
	"github.com/llehouerou/wavetube/internal/notify"
	"github.com/llehouerou/wavetube/internal/playback"
	"github.com/llehouerou/wavetube/internal/player"
	"github.com/llehouerou/wavetube/internal/player/mpv"
	"github.com/llehouerou/wavetube/internal/state"
	"github.com/llehouerou/wavetube/internal/stderr"
)

const prefsTimeout = 5 * time.Second

func runTUI(cmd *cobra.Command, _ []string) error {
	lc := cfg.GetLogConfig()
	log, logFile, err := logging.Setup(lc.Level, lc.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	icons.Init(cfg.UI.Icons)

	prefsStore, err := state.Open(log)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpPreferencesLoad, err))
	}
	defer prefsStore.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), prefsTimeout)
	prefs, restored, err := prefsStore.Preferences(ctx)
	cancel()
	if err != nil {
		log.Warn().Err(err).Msg("preferences not restored")
	}

	sessCfg := sessionConfig(cfg, prefs, restored)
	if !restored {
		prefs.Volume, prefs.Shuffle, prefs.Repeat = sessCfg.Volume, sessCfg.Shuffle, sessCfg.Repeat
	}

	pc := cfg.GetPlayerConfig()
	api := mpv.New(mpv.Config{
		Binary:         pc.MpvPath,
		SocketDir:      pc.SocketDir,
		Origin:         pc.Origin,
		Params:         player.NewOptions(pc.Origin, pc.Params).Params,
		ExtraArgs:      pc.ExtraArgs,
		CommandTimeout: pc.CommandTimeout(),
	}, log)
	if err := api.Start(cmd.Context()); err != nil {
		return errors.New(errmsg.Format(errmsg.OpPlayerStart, err))
	}
	defer func() {
		if err := api.Stop(); err != nil {
			log.Warn().Err(err).Msg("stop mpv")
		}
	}()

	session := playback.New(api, sessCfg, log)
	defer func() {
		if err := session.Teardown(); err != nil && !errors.Is(err, playback.ErrClosed) {
			log.Warn().Err(err).Msg("session teardown")
		}
	}()
	if err := session.Initialize(); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	remote, err := mpris.New(session, log)
	if err != nil {
		log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
	} else {
		defer remote.Close()
	}

	lyricsSrc, lyricsCache := buildLyrics(cfg, log)
	defer lyricsCache.Close()

	opts := app.Options{
		Session:     session,
		Events:      session.Subscribe(),
		Catalog:     buildCatalog(cfg, log),
		Lyrics:      lyricsSrc,
		Prefs:       prefsStore,
		Preferences: prefs,
		Timeout:     cfg.GetCatalogConfig().Timeout(),
		Log:         log,
	}
	if cfg.UI.Notifications {
		if n := nowPlaying(log); n != nil {
			defer n.Close()
			opts.Announcer = n
		}
	}
	if err := stderr.Start(); err != nil {
		log.Warn().Err(err).Msg("stderr capture disabled")
	} else {
		defer stderr.Stop()
		opts.Stderr = stderr.Messages
	}

	p := tea.NewProgram(app.New(opts), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		stderr.WriteOriginal(fmt.Sprintf("wavetube: %v\n", err))
		return err
	}
	return nil
}

func nowPlaying(log zerolog.Logger) *notify.NowPlaying {
	n, err := notify.New()
	if err != nil {
		log.Warn().Err(err).Msg("desktop notifications disabled")
		return nil
	}
	return notify.NewNowPlaying(n, log)
}

// sessionConfig merges configured timings with restored preferences, which
// take precedence over the configured initial modes.
func sessionConfig(c *config.Config, prefs state.Preferences, restored bool) playback.Config {
	sc := c.GetSessionConfig()
	pc := c.GetPlayerConfig()
	out := playback.Config{
		APIPollInterval:  sc.APIPollInterval(),
		ProgressInterval: sc.ProgressInterval(),
		SkipDelay:        sc.SkipDelay(),
		Volume:           *sc.Volume,
		Origin:           pc.Origin,
		Params:           pc.Params,
		Shuffle:          sc.Shuffle,
		Repeat:           sc.RepeatMode(),
	}
	if restored {
		out.Volume = prefs.Volume
		out.Shuffle = prefs.Shuffle
		out.Repeat = prefs.Repeat
	}
	return out
}
