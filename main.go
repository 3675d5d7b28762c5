package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/passgen/commands"
)

func main() {
	go func() {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt)
		<-signals

		fmt.Fprintln(os.Stderr, "\nOperation cancelled by user.")
		os.Exit(1)
	}()

	var opts commands.Opts

	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}

	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "Error: unrecognized arguments: %s\n", strings.Join(args, " "))
		os.Exit(1)
	}

	if err := commands.Run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
