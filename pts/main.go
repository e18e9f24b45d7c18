package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"

	"github.com/simbroker/papertrade/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{}
	}
	commander.Register(commander.HelpCommand(), "help")

	// Shell completion: exits early when invoked by the shell.
	completion := &complete.Command{Sub: sub}
	completion.Complete("pts")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
