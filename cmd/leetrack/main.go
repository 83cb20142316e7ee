package main

import (
	"fmt"
	"os"

	"github.com/nmehta/leetrack/internal/cli"
)

// version is overridable at build time with -ldflags "-X main.version=...".
var version = "0.3.0"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "leetrack: %v\n", err)
		os.Exit(1)
	}
}
