package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/plot"
	"github.com/termbar/termbar/pkg/reader"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	Width     int
	Height    int
	Min       float64
	Max       float64
	Regex     string
	Precision int
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot [input]",
		Short: "Plot the numeric input as a 2d graph",
		Long: `Plot the numeric values in the input as a 2d graph, averaging
consecutive values so the graph fits the requested width.

Each input line is parsed as a float, or --regex selects the value: the
capture group named "value" if present, the first capture group otherwise.
Input defaults to stdin ("-").

Exit codes:
  0 - Chart rendered
  1 - Not enough data points
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum number of columns")
	cmd.Flags().IntVar(&opts.Height, "height", 40, "Number of rows")
	cmd.Flags().Float64Var(&opts.Min, "min", 0, "Discard values below this")
	cmd.Flags().Float64Var(&opts.Max, "max", 0, "Discard values at or above this")
	cmd.Flags().StringVarP(&opts.Regex, "regex", "R", "", "Regex selecting the value in each line")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", -1, "Decimals to display (negative for human units)")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	if opts.Width < 1 {
		return fmt.Errorf("invalid width %d: must be at least 1", opts.Width)
	}
	if opts.Height < 1 {
		return fmt.Errorf("invalid height %d: must be at least 1", opts.Height)
	}
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

	p := plot.NewXYPlot(vec, opts.Width, opts.Height, opts.Precision)
	return p.Render(os.Stdout, opts.Width)
}
