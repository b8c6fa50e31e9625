// Command lvlearn runs the narrated pattern and algorithm lessons.
//
//	lvlearn             # menu: pick one lesson from stdin
//	lvlearn all         # every lesson in order
//	lvlearn search -c lessons.yaml --no-color
package main

import (
	"os"

	"github.com/katalvlaran/lvlearn/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
