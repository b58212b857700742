package cmd

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/user/playsketch-cli/config"
	"github.com/user/playsketch-cli/db"
	"github.com/user/playsketch-cli/editor"
	"github.com/user/playsketch-cli/logging"
	"github.com/user/playsketch-cli/play"
	"github.com/user/playsketch-cli/tui"
)

var Version = "0.1.0"

var (
	cfgFile   string
	cfg       *config.Config
	logger    = logging.Nop()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "playsketch",
	Short: "A terminal editor for sketching basketball plays",
	Long: `playsketch is a terminal editor for coaches to sketch basketball plays
as a sequence of frames, animate them, and export them for sharing.

Features:
  - Place offense and defense players on a half or full court
  - Draw cuts, dribbles, passes, screens, shots and moves
  - Animate the play frame by frame
  - Save plays as JSON or YAML files or in a local library
  - Export plays to PDF or animated GIF`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		logger, logCloser, err = logging.Setup(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			// logging is optional; keep going without it
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			logger = logging.Nop()
		}
		logger.Debug().Str("command", cmd.CommandPath()).Msg("starting")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	// version needs no config
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("playsketch version %s\n", Version)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [play-file]",
	Short: "Open the play editor",
	Long: `Open the interactive play editor. With a file argument the play is loaded
from it and :w writes back to it. A file that does not exist yet is created
on the first write.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		p := play.New("", cfg.Court)
		if len(args) == 1 {
			path = args[0]
			if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
				logger.Info().Str("path", path).Msg("new play file")
			} else {
				loaded, err := play.LoadFile(path)
				if err != nil {
					return err
				}
				p = loaded
			}
		}

		ed := editor.New(p, editor.Options{
			Radius:     cfg.PlayerRadius,
			Transition: cfg.Playback.Transition,
		})

		database, err := openLibrary(logger)
		if err != nil {
			// the editor works without a library; :lib reports it unavailable
			logger.Warn().Err(err).Msg("library unavailable")
		} else {
			defer database.Close()
		}

		return tui.Run(ed, database, cfg, logger, path)
	},
}

// openLibrary opens the play library configured in cfg.
func openLibrary(log zerolog.Logger) (*sql.DB, error) {
	path := cfg.LibraryPath()
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	log.Debug().Str("path", path).Msg("library opened")
	return database, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/playsketch/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(editCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
