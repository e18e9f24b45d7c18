// Package cmd implements the CLI application to drive a papertrade server.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// Commands lists every subcommand the binary registers.
// A main package ranges over it and calls Execute on the user-selected one.
var Commands = []subcommands.Command{
	&serveCmd{},
	&openCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&buyCmd{},
	&sellCmd{},
	&balanceCmd{},
	&holdingsCmd{},
	&summaryCmd{},
	&txCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var serverAddr = flag.String("addr", "http://localhost:8372", "Base URL of the papertrade server")
