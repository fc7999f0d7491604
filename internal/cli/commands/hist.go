package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/plot"
	"github.com/termbar/termbar/pkg/reader"
)

// HistOptions holds command-line options for the hist command.
type HistOptions struct {
	Intervals int
	Width     int
	Min       float64
	Max       float64
	Regex     string
	Precision int
	LogScale  bool
}

// NewHistCommand creates the hist command.
func NewHistCommand() *cobra.Command {
	opts := &HistOptions{}

	cmd := &cobra.Command{
		Use:   "hist [input]",
		Short: "Plot a histogram of numeric input",
		Long: `Plot a histogram of the numeric values in the input.

Each input line is parsed as a float, or --regex selects the value: the
capture group named "value" if present, the first capture group otherwise.
Input defaults to stdin ("-").

Exit codes:
  0 - Chart rendered
  1 - Not enough data points
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHist(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Intervals, "intervals", "i", 20, "Number of buckets")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum line width")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "Discard values below this")
	cmd.Flags().Float64Var(&opts.Max, "max", 0, "Discard values at or above this")
	cmd.Flags().StringVarP(&opts.Regex, "regex", "R", "", "Regex selecting the value in each line")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", -1, "Decimals to display (negative for human units)")
	cmd.Flags().BoolVar(&opts.LogScale, "log-scale", false, "Use power-of-two bucket widths over [0, max]")

	return cmd
}

func runHist(cmd *cobra.Command, args []string, opts *HistOptions) error {
	rng, err := buildRange(cmd, opts.Min, opts.Max)
	if err != nil {
		return err
	}
	re, err := buildRegex(opts.Regex)
	if err != nil {
		return err
	}

	r := &reader.DataReader{Range: rng, Regex: re}
	vec, err := r.Read(inputArg(args))
	if err != nil || len(vec) < 1 {
		failNotEnoughData(err, len(vec))
		return nil
	}

	h := plot.NewHistogram(vec, plot.HistogramOptions{
		Intervals: opts.Intervals,
		LogScale:  opts.LogScale,
		Precision: opts.Precision,
	})
	return h.Render(os.Stdout, opts.Width)
}
