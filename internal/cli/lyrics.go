package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavetube/internal/app"
	"github.com/llehouerou/wavetube/internal/errmsg"
	"github.com/llehouerou/wavetube/internal/lyrics"
)

var lyricsSynced bool

var lyricsCmd = &cobra.Command{
	Use:   "lyrics <title> [artist]",
	Short: "Print the lyrics of a song",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runLyrics,
}

func init() {
	lyricsCmd.Flags().BoolVar(&lyricsSynced, "synced", false, "prefix lines with their timestamps when available")
	rootCmd.AddCommand(lyricsCmd)
}

func runLyrics(cmd *cobra.Command, args []string) error {
	src, closer := buildLyrics(cfg, zerolog.Nop())
	defer closer.Close()

	title, artist := args[0], ""
	if len(args) > 1 {
		artist = args[1]
	}
	return printLyrics(cmd.Context(), cmd.OutOrStdout(), src, title, artist)
}

type lyricsJSON struct {
	Title  string `json:"title"`
	Artist string `json:"artist,omitempty"`
	Source string `json:"source"`
	Synced bool   `json:"synced"`
	Text   string `json:"text"`
}

func printLyrics(ctx context.Context, out io.Writer, src app.LyricsFetcher, title, artist string) error {
	res := src.Fetch(ctx, title, artist)
	synced := res.Lyrics != nil && res.Lyrics.IsSynced()

	if jsonOut {
		return printJSON(out, lyricsJSON{
			Title:  title,
			Artist: artist,
			Source: res.Source,
			Synced: synced,
			Text:   res.Text,
		})
	}

	if res.Source == lyrics.SourceFallback {
		if res.Err == nil {
			return errors.New(res.Text)
		}
		return errors.New(errmsg.FormatWith(errmsg.OpLyricsLoad, title, res.Err))
	}
	if lyricsSynced && synced {
		for _, line := range res.Lyrics.Lines {
			if _, err := fmt.Fprintf(out, "[%s] %s\n", lyrics.FormatStamp(line.Time), line.Text); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(out, res.Text)
	return err
}
