package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/termbar/termbar/pkg/reader"
)

// MatchesOptions holds command-line options for the matches command.
type MatchesOptions struct {
	Width int
}

// NewMatchesCommand creates the matches command.
func NewMatchesCommand() *cobra.Command {
	opts := &MatchesOptions{}

	cmd := &cobra.Command{
		Use:   "matches [input] MATCH...",
		Short: "Plot a bar chart of occurrences of the given strings",
		Long: `Plot a bar chart with one bar per MATCH string, counting the
input lines that contain it as a substring. Use "-" as input to read
stdin.

Exit codes:
  0 - Chart rendered
  1 - Input could not be read
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatches(args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 110, "Maximum line width")

	return cmd
}

func runMatches(args []string, opts *MatchesOptions) error {
	r := &reader.DataReader{}
	mb, err := r.ReadMatches(args[0], args[1:])
	if err != nil {
		failNotEnoughData(err, 0)
		return nil
	}
	return mb.Render(os.Stdout, opts.Width)
}
