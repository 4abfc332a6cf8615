package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mizuhane/tagsmith/internal/config"
)

// defaultConfigPath is ~/.config/tagsmith/settings.json. A missing file
// is fine; defaults apply.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.json"
	}
	return filepath.Join(home, ".config", "tagsmith", "settings.json")
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	mediaRoot  string
	cacheDir   string
	verbose    bool
}

// settings loads the config file and applies flag overrides.
func (f *rootFlags) settings() (*config.Settings, error) {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.mediaRoot != "" {
		settings.MediaRoot = f.mediaRoot
	}
	if f.cacheDir != "" {
		settings.CacheDir = f.cacheDir
	}
	return settings, nil
}

// logger builds the run logger at the verbosity the flags ask for.
func (f *rootFlags) logger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if f.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "tagsmith",
		Short:         "Enrich a local music library with catalog artwork and credits",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", defaultConfigPath(), "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.mediaRoot, "media-root", "", "Library root laid out as <root>/<artist>/<album>")
	rootCmd.PersistentFlags().StringVar(&flags.cacheDir, "cache-dir", "", "Directory for the downloaded artwork cache")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(newArtworkCommand(flags))
	rootCmd.AddCommand(newComposerCommand(flags))
	rootCmd.AddCommand(newInspectCommand(flags))

	return rootCmd
}
