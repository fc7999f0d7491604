package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/plot"
	"github.com/termbar/termbar/pkg/reader"
)

// SplitTimeHistOptions holds command-line options for the split-timehist
// command.
type SplitTimeHistOptions struct {
	Intervals int
	Width     int
	Format    string
}

// NewSplitTimeHistCommand creates the split-timehist command.
func NewSplitTimeHistCommand() *cobra.Command {
	opts := &SplitTimeHistOptions{}

	cmd := &cobra.Command{
		Use:   "split-timehist [input] MATCH...",
		Short: "Plot the time distribution of up to 5 matched terms",
		Long: `Plot a histogram of how lines containing each MATCH substring
distribute over time, one color per term.

The timestamp location and format are detected on the first line; lines
without a parseable timestamp are skipped. Use "-" as input to read
stdin.

Exit codes:
  0 - Chart rendered
  1 - Not enough data points
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplitTimeHist(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Intervals, "intervals", "i", 20, "Number of buckets")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum line width")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Timestamp layout (Go reference time)")

	return cmd
}

func runSplitTimeHist(cmd *cobra.Command, args []string, opts *SplitTimeHistOptions) error {
	terms := args[1:]
	if len(terms) > plot.MaxSplitTerms {
		return fmt.Errorf("at most %d match terms are supported (got %d)", plot.MaxSplitTerms, len(terms))
	}

	r := &reader.SplitTimeReader{Matches: terms, TSFormat: opts.Format}
	vec, err := r.Read(args[0])
	if err != nil || len(vec) < 2 {
		failNotEnoughData(err, len(vec))
		return nil
	}

	h := plot.NewSplitTimeHistogram(opts.Intervals, terms, vec)
	return h.Render(os.Stdout, opts.Width)
}
