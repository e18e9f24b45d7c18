package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type withdrawCmd struct {
	account string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw cash from an account" }
func (*withdrawCmd) Usage() string {
	return `pts withdraw -a <account> <amount>

  Withdraws the amount if the full balance covers it; there is no
  partial withdrawal.

Usage Examples:
$ pts withdraw -a alice 200
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to withdraw from.")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, status := cashArgs(c.account, f)
	if status != subcommands.ExitSuccess {
		return status
	}
	snap, err := newClient().cash(c.account, "withdraw", amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrawn. New balance: %s\n", snap.Balance)
	return subcommands.ExitSuccess
}
