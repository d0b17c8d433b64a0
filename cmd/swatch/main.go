package main

import (
	"fmt"
	"os"

	"github.com/hugo-lorenzo-mato/swatch/cmd/swatch/cmd"
)

// Build information, set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
