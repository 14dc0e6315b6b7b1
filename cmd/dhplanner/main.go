// Command dhplanner runs the district heating network design pipeline
// from the command line: a road/building dataset and a run configuration
// go in, a clustering and pipe-sizing result comes out.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
