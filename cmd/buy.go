package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type buyCmd struct {
	account string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares at the oracle price" }
func (*buyCmd) Usage() string {
	return `pts buy -a <account> <symbol> <quantity>

  Buys shares at the server's current price for the symbol. The trade is
  rejected if the cash balance does not cover the full cost.

Usage Examples:
$ pts buy -a alice AAPL 2
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to trade on.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, quantity, status := tradeArgs(c.account, f)
	if status != subcommands.ExitSuccess {
		return status
	}
	snap, err := newClient().trade(c.account, "buy", symbol, quantity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Bought %d %s. Balance: %s, holding: %d\n", quantity, symbol, snap.Balance, snap.Holdings[symbol])
	return subcommands.ExitSuccess
}

// tradeArgs validates the shared -a flag and symbol/quantity arguments of
// the buy and sell commands.
func tradeArgs(account string, f *flag.FlagSet) (string, int64, subcommands.ExitStatus) {
	if account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return "", 0, subcommands.ExitUsageError
	}
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected two arguments, symbol and quantity.")
		return "", 0, subcommands.ExitUsageError
	}
	quantity, err := strconv.ParseInt(f.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q: %v\n", f.Arg(1), err)
		return "", 0, subcommands.ExitUsageError
	}
	return f.Arg(0), quantity, subcommands.ExitSuccess
}
