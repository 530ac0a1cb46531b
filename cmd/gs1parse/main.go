// Command gs1parse parses GS1 barcode payloads from the command line or
// serves the parser over HTTP.
package main

import (
	"os"

	"github.com/ericlevine/gs1parse/internal/cli"
)

// Set with -ldflags "-X main.commit=... -X main.buildDate=...".
var (
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cli.GitCommit = commit
	cli.BuildDate = buildDate
	os.Exit(cli.Execute())
}
