package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type openCmd struct {
	id string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new trading account" }
func (*openCmd) Usage() string {
	return `pts open [-id <account>] <initial_deposit>

  Opens an account funded with the initial deposit. Without -id the
  server assigns a generated identifier.

Usage Examples:
$ pts open -id alice 1000
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account identifier. Generated when empty.")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument, the initial deposit.")
		return subcommands.ExitUsageError
	}
	deposit, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid initial deposit %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	snap, err := newClient().open(c.id, deposit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Opened account %s with balance %s\n", snap.ID, snap.Balance)
	return subcommands.ExitSuccess
}
