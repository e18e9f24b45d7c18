package cmd

import (
	"context"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	account string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show balance, holdings and profit/loss" }
func (*summaryCmd) Usage() string {
	return `pts summary -a <account>

  Renders a full account summary: cash balance, every holding, the
  portfolio value at the server's current prices, and the profit or loss
  against the initial deposit.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return subcommands.ExitUsageError
	}
	snap, err := newClient().get(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Account %s\n\n", snap.ID)
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Cash balance | %s |\n", snap.Balance)
	fmt.Fprintf(&b, "| Portfolio value | %s |\n", snap.PortfolioValue)
	fmt.Fprintf(&b, "| Profit / loss | %s |\n", snap.ProfitLoss)
	fmt.Fprintf(&b, "| Initial deposit | %s |\n", snap.InitialDeposit)

	if len(snap.Holdings) > 0 {
		fmt.Fprintf(&b, "\n## Holdings\n\n| Symbol | Quantity |\n|---|---|\n")
		for _, symbol := range slices.Sorted(maps.Keys(snap.Holdings)) {
			fmt.Fprintf(&b, "| %s | %d |\n", symbol, snap.Holdings[symbol])
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
