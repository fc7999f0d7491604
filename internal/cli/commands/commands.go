// Package commands implements the termbar subcommands.
package commands

import (
	"fmt"
	"math"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/config"
	"github.com/termbar/termbar/pkg/reader"
)

// ExitCode is set by commands to indicate the result: 0 success, 1 not
// enough data to draw a chart. Configuration errors surface as RunE
// errors and exit with 2.
var ExitCode = 0

// inputArg returns the input path from the positional args, defaulting
// to stdin.
func inputArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}

// failNotEnoughData reports an input too small to chart and flags the
// run as such.
func failNotEnoughData(err error, samples int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: not enough data points (%d)\n", samples)
	}
	ExitCode = 1
}

// buildRange turns the --min/--max flags into a half-open filter, or nil
// when neither was given.
func buildRange(cmd *cobra.Command, minValue, maxValue float64) (*reader.Range, error) {
	minSet := cmd.Flags().Changed("min")
	maxSet := cmd.Flags().Changed("max")
	if !minSet && !maxSet {
		return nil, nil
	}
	rng := &reader.Range{Min: -math.MaxFloat64, Max: math.MaxFloat64}
	if minSet {
		rng.Min = minValue
	}
	if maxSet {
		rng.Max = maxValue
	}
	if rng.Min > rng.Max {
		return nil, fmt.Errorf("invalid range: min (%v) is bigger than max (%v)", rng.Min, rng.Max)
	}
	return rng, nil
}

// buildRegex compiles the --regex flag, or returns nil when empty.
func buildRegex(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid regex: %w", err)
	}
	return re, nil
}

// ApplyConfigDefaults re-seeds chart flag defaults from a loaded config
// file. Flags set on the command line win.
func ApplyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	defaults := map[string]string{
		"width":     fmt.Sprintf("%d", cfg.Width),
		"intervals": fmt.Sprintf("%d", cfg.Intervals),
		"height":    fmt.Sprintf("%d", cfg.Height),
		"lines":     fmt.Sprintf("%d", cfg.Lines),
	}
	for name, value := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		_ = flag.Value.Set(value)
	}
}
