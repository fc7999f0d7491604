// termbar - Terminal Charts
//
// termbar draws basic charts on the terminal from numeric or timestamped
// data found in text input.
package main

import (
	"os"

	"github.com/termbar/termbar/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
