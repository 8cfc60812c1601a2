package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/llehouerou/wavetube/internal/catalog"
	"github.com/llehouerou/wavetube/internal/errmsg"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for tracks and print them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd, strings.Join(args, " "))
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Print trending music",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCatalog(cmd, "")
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, trendingCmd)
}

func runCatalog(cmd *cobra.Command, query string) error {
	provider := buildCatalog(cfg, zerolog.Nop())
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.GetCatalogConfig().Timeout())
	defer cancel()
	return printCatalog(ctx, cmd, provider, query)
}

func printCatalog(ctx context.Context, cmd *cobra.Command, p catalog.Provider, query string) error {
	res := catalog.Fetch(ctx, p, query)
	if res.Err != nil {
		op := errmsg.OpCatalogTrending
		if res.Query != "" {
			op = errmsg.OpCatalogSearch
		}
		return errors.New(errmsg.FormatWith(op, res.Query, res.Err))
	}
	return printTracks(cmd.OutOrStdout(), res.Tracks, jsonOut)
}
