package generator

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// Config describes a single password generation request. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	Length int `yaml:"length"`

	IncludeLowercase bool `yaml:"include_lowercase"`
	IncludeUppercase bool `yaml:"include_uppercase"`
	IncludeDigits    bool `yaml:"include_digits"`
	IncludeSymbols   bool `yaml:"include_symbols"`

	MinLowercase int `yaml:"min_lowercase"`
	MinUppercase int `yaml:"min_uppercase"`
	MinDigits    int `yaml:"min_digits"`
	MinSymbols   int `yaml:"min_symbols"`

	ExcludeAmbiguous bool `yaml:"exclude_ambiguous"`
}

func DefaultConfig() Config {
	return Config{
		Length:           12,
		IncludeLowercase: true,
		IncludeUppercase: true,
		IncludeDigits:    true,
		IncludeSymbols:   true,
		MinLowercase:     1,
		MinUppercase:     1,
		MinDigits:        1,
		MinSymbols:       1,
	}
}

// LoadConfig overlays YAML-encoded defaults onto DefaultConfig, so a file
// only needs to name the fields it changes.
func LoadConfig(bs []byte) (Config, error) {
	c := DefaultConfig()

	err := yaml.UnmarshalStrict(bs, &c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// ConfigError reports invalid generation parameters. It is the only error
// kind the generator and composer raise on their own; anything else is a
// failure of the random source.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string {
	return e.Reason
}

func (c Config) Includes(class CharacterClass) bool {
	switch class {
	case Lowercase:
		return c.IncludeLowercase
	case Uppercase:
		return c.IncludeUppercase
	case Digits:
		return c.IncludeDigits
	case Symbols:
		return c.IncludeSymbols
	}

	return false
}

func (c Config) Minimum(class CharacterClass) int {
	switch class {
	case Lowercase:
		return c.MinLowercase
	case Uppercase:
		return c.MinUppercase
	case Digits:
		return c.MinDigits
	case Symbols:
		return c.MinSymbols
	}

	return 0
}

func (c Config) validate() error {
	if c.Length < 4 {
		return ConfigError{Reason: "password length must be at least 4 characters"}
	}

	included := 0
	totalMinimum := 0

	for _, class := range Classes {
		if !c.Includes(class) {
			continue
		}

		included++

		if c.Minimum(class) < 0 {
			return ConfigError{Reason: fmt.Sprintf("minimum count for %s characters cannot be negative", class)}
		}

		totalMinimum += c.Minimum(class)

		if c.Minimum(class) > 0 && class.Alphabet(c.ExcludeAmbiguous) == "" {
			return ConfigError{Reason: fmt.Sprintf("no %s characters remain after excluding ambiguous characters", class)}
		}
	}

	if included == 0 {
		return ConfigError{Reason: "at least one character type must be selected"}
	}

	if totalMinimum > c.Length {
		return ConfigError{Reason: "required minimum characters exceed password length"}
	}

	return nil
}
