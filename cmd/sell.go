package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct {
	account string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell held shares at the oracle price" }
func (*sellCmd) Usage() string {
	return `pts sell -a <account> <symbol> <quantity>

  Sells shares from the account's holdings at the server's current price.
  The sale is rejected if fewer shares are held than asked for.

Usage Examples:
$ pts sell -a alice AAPL 1
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to trade on.")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, quantity, status := tradeArgs(c.account, f)
	if status != subcommands.ExitSuccess {
		return status
	}
	snap, err := newClient().trade(c.account, "sell", symbol, quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Sold %d %s. Balance: %s, holding: %d\n", quantity, symbol, snap.Balance, snap.Holdings[symbol])
	return subcommands.ExitSuccess
}
