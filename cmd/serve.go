package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/google/subcommands"

	"github.com/simbroker/papertrade"
	"github.com/simbroker/papertrade/config"
	"github.com/simbroker/papertrade/server"
)

type serveCmd struct {
	configPath string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the papertrade HTTP server" }
func (*serveCmd) Usage() string {
	return `pts serve [-config <dir>]

  Runs the HTTP API. Accounts live in memory for the lifetime of the
  process. Configuration comes from PT_* environment variables, with an
  optional .env file in the config directory:

    PT_LISTEN_ADDR    listen address (default :8372)
    PT_CURRENCY       account currency (default USD)
    PT_PRICES         oracle price table, SYMBOL=PRICE pairs
    PT_DEFAULT_PRICE  price for unlisted symbols; empty rejects them
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.configPath, "config", ".", "Directory holding the optional .env file.")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	oracle, err := cfg.Oracle()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building price oracle: %v\n", err)
		return subcommands.ExitFailure
	}

	srv := server.New(papertrade.NewRegistry(), oracle, cfg.Currency)
	log.Printf("papertrade listening on %s (currency %s)", cfg.ListenAddr, cfg.Currency)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Router()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
