package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mmcdole/rosterctl/pkg/console"
	"github.com/mmcdole/rosterctl/pkg/game"
	"github.com/mmcdole/rosterctl/pkg/logging"
	"github.com/mmcdole/rosterctl/pkg/roster"
	"github.com/mmcdole/rosterctl/pkg/session"
)

var (
	version     = "dev" // Will be set during build
	cfgFile     string
	showVersion bool
)

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

var rootCmd = &cobra.Command{
	Use:           "rosterctl",
	Short:         "Interactive user roster with an imposter guessing game",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `rosterctl - Interactive user roster with an imposter guessing game

Keeps a list of users (name and age) in a flat file, one "name;age" record per
line, and lets you add, remove and view them from a menu. The game draws one
user as the imposter; find it by guessing positions.

Every flag can also be set through the environment (ROSTERCTL_DATA_FILE,
ROSTERCTL_LOG_LEVEL, ...) or an optional JSON config file:
{
    "data_file": "userdata.txt",
    "log_path": "log/rosterctl.log",
    "log_level": "info",
    "color": "auto",
    "seed": 0
}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "rosterctl %s\n", version)
			return nil
		}

		path := cfgFile
		if path != "" && !filepath.IsAbs(path) {
			var err error
			path, err = filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to get absolute path: %v", err)
			}
		}

		config, err := LoadConfig(cmd.Flags(), path)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return run(config, afero.NewOsFs(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&cfgFile, "config", "c", "", "path to JSON config file")
	flags.StringP("data-file", "f", roster.DefaultPath, "path to the roster file (env: ROSTERCTL_DATA_FILE)")
	flags.String("log-path", "", "path to the application log, empty disables logging (env: ROSTERCTL_LOG_PATH)")
	flags.String("log-level", string(logging.LogLevelInfo), "log level: debug, info, warn, error (env: ROSTERCTL_LOG_LEVEL)")
	flags.String("color", console.ColorAuto, "color output: auto, always, never (env: ROSTERCTL_COLOR)")
	flags.Uint64("seed", 0, "fixed seed for imposter draws, 0 draws randomly (env: ROSTERCTL_SEED)")
	flags.BoolVarP(&showVersion, "version", "v", false, "show version information")
}

// run drives one interactive session against the roster file on fs
func run(config *Config, fs afero.Fs, in io.Reader, out io.Writer) error {
	if err := logging.Initialize(config.LogPath, config.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logging: %v", err)
	}
	defer logging.App.Close()

	var picker game.Picker = game.RandomPicker{}
	if config.Seed != 0 {
		picker = game.NewSeededPicker(config.Seed)
	}

	source := roster.NewFileSource(fs, config.DataFile)
	term := console.New(in, out, console.StylerFor(config.Color))

	sess, err := session.New(source, term, picker)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	result, err := sess.Run()
	switch {
	case errors.Is(err, io.EOF):
		logging.App.Warn("Input closed before exit, roster not saved", "users", len(result.Users))
		return fmt.Errorf("input closed before exit, roster not saved")
	case errors.Is(err, roster.ErrSave):
		return fmt.Errorf("failed to save roster: %w", err)
	case err != nil:
		return fmt.Errorf("session failed: %w", err)
	}

	logging.App.Info("Exiting", "state", result.State, "users", len(result.Users), "removed", len(result.Removed))
	return nil
}
