package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/guessarr/internal/config"
	"github.com/vmunix/guessarr/pkg/guess"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "guessarr",
	Short: "Guess media metadata from file names",
	Long: `guessarr - guess media metadata from file names

Extracts series, season, episode, format, codecs, release group,
languages and more from release-style file names, without touching
the files themselves.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("guessarr {{.Version}}\n")
}

// matcherOptions loads user table extensions from the config file.
// A missing config file just means no extensions.
func matcherOptions() ([]guess.Option, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}
	cfg, err := config.LoadWithoutValidation(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.MatcherOptions(), nil
}
