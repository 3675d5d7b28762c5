package commands

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager"

	passlog "github.com/pivotal-cf/passgen/log"
)

type Opts struct {
	Length *int `short:"l" long:"length" description:"password length (default: 12)" value-name:"N"`
	Count  int  `short:"c" long:"count" default:"1" description:"number of passwords or passphrases to generate" value-name:"N"`

	NoUppercase bool `long:"no-uppercase" description:"exclude uppercase letters"`
	NoLowercase bool `long:"no-lowercase" description:"exclude lowercase letters"`
	NoDigits    bool `long:"no-digits" description:"exclude digits"`
	NoSymbols   bool `long:"no-symbols" description:"exclude symbols"`

	ExcludeAmbiguous bool `long:"exclude-ambiguous" description:"exclude ambiguous characters (il1Lo0O)"`

	MinLowercase *int `long:"min-lowercase" description:"minimum lowercase letters (default: 1)" value-name:"N"`
	MinUppercase *int `long:"min-uppercase" description:"minimum uppercase letters (default: 1)" value-name:"N"`
	MinDigits    *int `long:"min-digits" description:"minimum digits (default: 1)" value-name:"N"`
	MinSymbols   *int `long:"min-symbols" description:"minimum symbols (default: 1)" value-name:"N"`

	Passphrase   bool    `short:"p" long:"passphrase" description:"generate a passphrase instead"`
	Words        *int    `short:"w" long:"words" description:"number of words in the passphrase (default: 4)" value-name:"N"`
	Separator    *string `long:"separator" description:"passphrase word separator (default: -)" value-name:"STRING"`
	NoCapitalize bool    `long:"no-capitalize" description:"do not capitalize passphrase words"`

	Analyze string `short:"a" long:"analyze" description:"analyze the strength of the given password" value-name:"PASSWORD"`

	DefaultsFile string `long:"defaults-file" description:"path to a YAML file of generation defaults" value-name:"PATH"`

	Update  bool `long:"update" description:"update passgen to the latest version"`
	Version bool `short:"v" long:"version" description:"display passgen version"`
	Debug   bool `long:"debug" description:"enables debug logging"`
}

func Run(opts Opts) error {
	switch {
	case opts.Version:
		return runVersion()
	case opts.Update:
		return runUpdate()
	}

	warnIfOldExecutable()

	switch {
	case opts.Analyze != "":
		return runAnalyze(opts.Analyze)
	case opts.Passphrase:
		return runPassphrase(opts)
	default:
		return runGenerate(opts)
	}
}

func newLogger(task string, debug bool) lager.Logger {
	if !debug {
		return passlog.NewNullLogger()
	}

	logger := lager.NewLogger(task)
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))

	return logger
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := os.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `passgen --update`.")
	}
}
