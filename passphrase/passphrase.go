// Package passphrase composes memorable passphrases from the fixed
// wordlist: uniform word draws with replacement, an optional leading
// capital per word, and a trailing random number below 1000.
package passphrase

import (
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/passgen/generator"
	"github.com/pivotal-cf/passgen/secrand"
	"github.com/pivotal-cf/passgen/words"
)

const maxTrailingNumber = 1000

type Config struct {
	Words      int
	Separator  string
	Capitalize bool
}

func DefaultConfig() Config {
	return Config{
		Words:      4,
		Separator:  "-",
		Capitalize: true,
	}
}

// Generate returns a passphrase that splits into Words+1 segments on the
// separator; the final segment is the trailing number.
func Generate(logger lager.Logger, config Config) (string, error) {
	logger = logger.Session("generate-passphrase", lager.Data{"words": config.Words})
	logger.Debug("starting")
	defer logger.Debug("done")

	if config.Words < 1 {
		err := generator.ConfigError{Reason: "passphrase must contain at least one word"}
		logger.Error("invalid-config", err)
		return "", err
	}

	parts := make([]string, 0, config.Words+1)

	for i := 0; i < config.Words; i++ {
		n, err := secrand.Intn(len(words.List))
		if err != nil {
			return "", err
		}

		word := words.List[n]
		if config.Capitalize {
			word = strings.ToUpper(word[:1]) + word[1:]
		}

		parts = append(parts, word)
	}

	n, err := secrand.Intn(maxTrailingNumber)
	if err != nil {
		return "", err
	}
	parts = append(parts, strconv.Itoa(n))

	return strings.Join(parts, config.Separator), nil
}
