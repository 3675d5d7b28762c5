package commands

import (
	"fmt"
	"io/ioutil"

	"github.com/pivotal-cf/passgen/generator"
	"github.com/pivotal-cf/passgen/strength"
)

func runGenerate(opts Opts) error {
	logger := newLogger("generate", opts.Debug)

	base := generator.DefaultConfig()

	if opts.DefaultsFile != "" {
		bs, err := ioutil.ReadFile(opts.DefaultsFile)
		if err != nil {
			return err
		}

		base, err = generator.LoadConfig(bs)
		if err != nil {
			return err
		}
	}

	passwords, err := generator.GenerateMany(logger, opts.Count, BuildConfig(base, opts))
	if err != nil {
		return err
	}

	for i, password := range passwords {
		fmt.Printf("Password %d: %s\n", i+1, password)
	}

	if len(passwords) == 1 {
		report := strength.Analyze(passwords[0])
		fmt.Printf("Strength: %s (%d/100)\n", colorizeLabel(report.Strength), report.Score)
	}

	return nil
}

// BuildConfig overlays the flags the user actually provided onto base;
// pointer fields are nil when their flag was absent.
func BuildConfig(base generator.Config, opts Opts) generator.Config {
	config := base

	if opts.Length != nil {
		config.Length = *opts.Length
	}

	if opts.NoLowercase {
		config.IncludeLowercase = false
	}
	if opts.NoUppercase {
		config.IncludeUppercase = false
	}
	if opts.NoDigits {
		config.IncludeDigits = false
	}
	if opts.NoSymbols {
		config.IncludeSymbols = false
	}

	if opts.ExcludeAmbiguous {
		config.ExcludeAmbiguous = true
	}

	if opts.MinLowercase != nil {
		config.MinLowercase = *opts.MinLowercase
	}
	if opts.MinUppercase != nil {
		config.MinUppercase = *opts.MinUppercase
	}
	if opts.MinDigits != nil {
		config.MinDigits = *opts.MinDigits
	}
	if opts.MinSymbols != nil {
		config.MinSymbols = *opts.MinSymbols
	}

	return config
}
