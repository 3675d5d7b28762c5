// Package generator assembles randomized passwords from configurable
// character-class pools. Class minimums are drawn from each class's own
// alphabet before the pool fill so that a minimum can never be starved by
// the uniform draw across the union.
package generator

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/passgen/secrand"
)

func Generate(logger lager.Logger, config Config) (string, error) {
	logger = logger.Session("generate", lager.Data{"length": config.Length})
	logger.Debug("starting")
	defer logger.Debug("done")

	if err := config.validate(); err != nil {
		logger.Error("invalid-config", err)
		return "", err
	}

	var pool string
	var chars []byte

	for _, class := range Classes {
		if !config.Includes(class) {
			continue
		}

		alphabet := class.Alphabet(config.ExcludeAmbiguous)
		pool += alphabet

		for i := 0; i < config.Minimum(class); i++ {
			ch, err := secrand.Choice(alphabet)
			if err != nil {
				return "", err
			}
			chars = append(chars, ch)
		}
	}

	for len(chars) < config.Length {
		ch, err := secrand.Choice(pool)
		if err != nil {
			return "", err
		}
		chars = append(chars, ch)
	}

	// Required characters sit at the front of the slice; shuffle so their
	// positions are not predictable.
	if err := secrand.Shuffle(chars); err != nil {
		return "", err
	}

	return string(chars), nil
}

// GenerateMany produces count independent passwords from the same config.
// There is no uniqueness guarantee across the batch.
func GenerateMany(logger lager.Logger, count int, config Config) ([]string, error) {
	logger = logger.Session("generate-many", lager.Data{"count": count})

	if err := config.validate(); err != nil {
		logger.Error("invalid-config", err)
		return nil, err
	}

	var result error
	passwords := make([]string, 0, count)

	for i := 0; i < count; i++ {
		password, err := Generate(logger, config)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}

		passwords = append(passwords, password)
	}

	return passwords, result
}
