// Package cli provides the command-line interface for termbar.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/termbar/termbar/internal/cli/commands"
	"github.com/termbar/termbar/internal/logging"
	"github.com/termbar/termbar/pkg/config"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// RootOptions holds the global flags shared by every subcommand.
type RootOptions struct {
	Color      string
	Verbose    bool
	ConfigPath string
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	rootCmd := &cobra.Command{
		Use:   "termbar",
		Short: "Draw terminal charts from the data in your logs",
		Long: `termbar draws basic charts on the terminal from numeric or
timestamped data in text input.

It renders:
  - Histograms and 2d plots of numeric data
  - Time histograms of log lines, optionally split by matched terms
  - Bar charts of substring matches and of the most common terms

Input is a file path or "-" for stdin; values and timestamps are pulled
out of each line with regexes or format detection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(opts.Verbose)
			var cfg *config.Config
			if opts.ConfigPath != "" {
				var err error
				cfg, err = config.Load(opts.ConfigPath)
				if err != nil {
					return err
				}
				commands.ApplyConfigDefaults(cmd, cfg)
			}
			mode := opts.Color
			if cfg != nil && !cmd.Flags().Changed("color") {
				mode = cfg.Color
			}
			return setupColor(mode)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.Color, "color", "c", "auto", "Color output (auto|yes|no)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log skipped input lines")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Path to a yaml defaults file")

	// Add subcommands
	rootCmd.AddCommand(commands.NewHistCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewTimeHistCommand())
	rootCmd.AddCommand(commands.NewSplitTimeHistCommand())
	rootCmd.AddCommand(commands.NewMatchesCommand())
	rootCmd.AddCommand(commands.NewTermsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// setupColor applies the --color mode. "auto" keeps the library's TTY
// detection.
func setupColor(mode string) error {
	switch mode {
	case "yes":
		color.NoColor = false
	case "no":
		color.NoColor = true
	case "auto":
	default:
		return fmt.Errorf("invalid color mode %q (must be auto, yes, or no)", mode)
	}
	return nil
}
