// Package secrand draws uniformly from crypto/rand. Every character, word,
// and number selection in passgen goes through here; math/rand is never an
// acceptable substitute for any of these draws.
package secrand

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var ErrEmptyAlphabet = errors.New("cannot choose from an empty alphabet")

// Choice returns a single byte drawn uniformly from alphabet.
func Choice(alphabet string) (byte, error) {
	if len(alphabet) == 0 {
		return 0, ErrEmptyAlphabet
	}

	i, err := Intn(len(alphabet))
	if err != nil {
		return 0, err
	}

	return alphabet[i], nil
}

// Intn returns a uniform integer in [0, n). n must be positive.
func Intn(n int) (int, error) {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}

	return int(b.Int64()), nil
}

// Shuffle permutes b in place with a Fisher-Yates walk driven by
// crypto/rand.
func Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := Intn(i + 1)
		if err != nil {
			return err
		}

		b[i], b[j] = b[j], b[i]
	}

	return nil
}
