// Command spanscore scores BIO/BILOU sequence labelling output.
//
// Usage:
//
//	spanscore score FILE                 # precision, recall and F1
//	spanscore score --bio FILE           # BIO instead of BILOU
//	spanscore score --similarity dice FILE
//	spanscore compare FILE               # one row per similarity function
//	spanscore similarities               # list similarity functions
package main

import (
	"fmt"

	"github.com/jamesainslie/go-spanscore/cmd/spanscore/cmd"
)

// Set by -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	cmd.Execute()
}
