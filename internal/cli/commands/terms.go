package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/reader"
)

// TermsOptions holds command-line options for the common-terms command.
type TermsOptions struct {
	Lines int
	Width int
	Regex string
}

// NewTermsCommand creates the common-terms command.
func NewTermsCommand() *cobra.Command {
	opts := &TermsOptions{}

	cmd := &cobra.Command{
		Use:   "common-terms [input]",
		Short: "Plot a bar chart of the most frequent terms in the input",
		Long: `Plot a bar chart of the most frequent values captured by --regex
across the input lines: the capture group named "value" if present, the
first capture group otherwise. Without --regex whole lines are ranked.
Input defaults to stdin ("-").

Exit codes:
  0 - Chart rendered
  1 - Input could not be read
  2 - Configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerms(args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "l", 10, "Number of terms to display")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum line width")
	cmd.Flags().StringVarP(&opts.Regex, "regex", "R", "", "Regex selecting the term in each line")

	return cmd
}

func runTerms(args []string, opts *TermsOptions) error {
	if opts.Lines < 1 {
		return fmt.Errorf("invalid lines value %d: must be at least 1", opts.Lines)
	}
	// Without a regex, whole lines are the terms.
	expr := opts.Regex
	if expr == "" {
		expr = "(.*)"
	}
	re, err := buildRegex(expr)
	if err != nil {
		return err
	}

	r := &reader.DataReader{Regex: re}
	terms, err := r.ReadTerms(inputArg(args), opts.Lines)
	if err != nil {
		failNotEnoughData(err, 0)
		return nil
	}
	return terms.Render(os.Stdout, opts.Width)
}
