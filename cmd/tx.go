package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/simbroker/papertrade"
)

type txCmd struct {
	account string
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list an account's transactions" }
func (*txCmd) Usage() string {
	return `pts tx -a <account> [-tail <n>]

  Lists the account's transaction log in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -a <account> is required.")
		return subcommands.ExitUsageError
	}
	txs, err := newClient().transactions(c.account)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}
	if len(txs) == 0 {
		fmt.Println("no transactions")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Time | Kind | Amount | Symbol | Quantity | Price |\n|---|---|---|---|---|---|\n")
	for _, tx := range txs {
		symbol, quantity, price := "-", "-", "-"
		if tx.Kind == papertrade.TxBuy || tx.Kind == papertrade.TxSell {
			symbol = tx.Symbol
			quantity = fmt.Sprint(tx.Quantity)
			price = tx.Price.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Time.Format("2006-01-02 15:04:05"), tx.Kind, tx.Amount, symbol, quantity, price)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
