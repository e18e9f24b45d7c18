package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/google/subcommands"
)

type holdingsCmd struct {
	account string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list an account's share holdings" }
func (*holdingsCmd) Usage() string {
	return `pts holdings -a <account>
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on.")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return subcommands.ExitUsageError
	}
	snap, err := newClient().get(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(snap.Holdings) == 0 {
		fmt.Println("no holdings")
		return subcommands.ExitSuccess
	}
	for _, symbol := range slices.Sorted(maps.Keys(snap.Holdings)) {
		fmt.Printf("%-8s %d\n", symbol, snap.Holdings[symbol])
	}
	return subcommands.ExitSuccess
}
