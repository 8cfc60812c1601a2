// Package cli holds the wavetube commands. The root command runs the
// terminal player; subcommands print catalog and lyrics lookups.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wavetube/internal/config"
)

var (
	cfgFile string
	jsonOut bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wavetube",
	Short: "Play YouTube music in the terminal",
	Long: `WaveTube browses trending music and search results from YouTube and
plays them through mpv, with synced lyrics and media key support.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	RunE:         runTUI,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/wavetube/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "print results as JSON")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
