package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type depositCmd struct {
	account string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit cash into an account" }
func (*depositCmd) Usage() string {
	return `pts deposit -a <account> <amount>

Usage Examples:
$ pts deposit -a alice 500
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to deposit into.")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, status := cashArgs(c.account, f)
	if status != subcommands.ExitSuccess {
		return status
	}
	snap, err := newClient().cash(c.account, "deposit", amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited. New balance: %s\n", snap.Balance)
	return subcommands.ExitSuccess
}

// cashArgs validates the shared -a flag and single amount argument of the
// deposit and withdraw commands.
func cashArgs(account string, f *flag.FlagSet) (float64, subcommands.ExitStatus) {
	if account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return 0, subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument, the amount.")
		return 0, subcommands.ExitUsageError
	}
	amount, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return 0, subcommands.ExitUsageError
	}
	return amount, subcommands.ExitSuccess
}
