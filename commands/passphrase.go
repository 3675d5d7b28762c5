package commands

import (
	"fmt"

	"github.com/pivotal-cf/passgen/passphrase"
)

func runPassphrase(opts Opts) error {
	logger := newLogger("passphrase", opts.Debug)

	config := passphrase.DefaultConfig()

	if opts.Words != nil {
		config.Words = *opts.Words
	}
	if opts.Separator != nil {
		config.Separator = *opts.Separator
	}
	if opts.NoCapitalize {
		config.Capitalize = false
	}

	for i := 0; i < opts.Count; i++ {
		phrase, err := passphrase.Generate(logger, config)
		if err != nil {
			return err
		}

		fmt.Printf("Passphrase %d: %s\n", i+1, phrase)
	}

	return nil
}
