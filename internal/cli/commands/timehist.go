package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/plot"
	"github.com/termbar/termbar/pkg/reader"
)

// TimeHistOptions holds command-line options for the timehist command.
type TimeHistOptions struct {
	Intervals int
	Width     int
	Regex     string
	Format    string
	Duration  string
	EarlyStop bool
}

// NewTimeHistCommand creates the timehist command.
func NewTimeHistCommand() *cobra.Command {
	opts := &TimeHistOptions{}

	cmd := &cobra.Command{
		Use:   "timehist [input]",
		Short: "Plot the time distribution of log lines",
		Long: `Plot a histogram of how the input lines distribute over time.

The timestamp location and format are detected on the first line and the
same byte range is parsed on every other line; lines without a parseable
timestamp are skipped. Use --format with a Go reference layout (e.g.
"2006-01-02 15:04:05") when detection guesses wrong. Input defaults to
stdin ("-").

Exit codes:
  0 - Chart rendered
  1 - Not enough data points
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimeHist(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Intervals, "intervals", "i", 20, "Number of buckets")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum line width")
	cmd.Flags().StringVarP(&opts.Regex, "regex", "R", "", "Keep only lines matching this regex")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Timestamp layout (Go reference time)")
	cmd.Flags().StringVarP(&opts.Duration, "duration", "d", "", "Keep only this window after the earliest timestamp (e.g. 30m)")
	cmd.Flags().BoolVar(&opts.EarlyStop, "early-stop", false, "Stop reading at the first timestamp past the duration window")

	return cmd
}

func runTimeHist(cmd *cobra.Command, args []string, opts *TimeHistOptions) error {
	re, err := buildRegex(opts.Regex)
	if err != nil {
		return err
	}
	var duration time.Duration
	if opts.Duration != "" {
		duration, err = time.ParseDuration(opts.Duration)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}
	}

	r := &reader.TimeReader{
		Regex:     re,
		TSFormat:  opts.Format,
		Duration:  duration,
		EarlyStop: opts.EarlyStop,
	}
	vec, err := r.Read(inputArg(args))
	if err != nil || len(vec) < 2 {
		failNotEnoughData(err, len(vec))
		return nil
	}

	h := plot.NewTimeHistogram(opts.Intervals, vec)
	return h.Render(os.Stdout, opts.Width)
}
