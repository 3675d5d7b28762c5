package generator

import "strings"

const lowercaseAlphabet = "abcdefghijklmnopqrstuvwxyz"
const uppercaseAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const digitAlphabet = "0123456789"
const symbolAlphabet = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// AmbiguousCharacters are visually confusable and can be excluded from
// every class alphabet on request.
const AmbiguousCharacters = "il1Lo0O"

type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digits
	Symbols
)

// Classes lists every character class in the order they are assembled
// into the pool.
var Classes = []CharacterClass{Lowercase, Uppercase, Digits, Symbols}

func (c CharacterClass) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}

	return "unknown"
}

// Alphabet returns the characters belonging to the class, optionally with
// the ambiguous characters stripped. Symbols contain no ambiguous
// characters so they are never stripped.
func (c CharacterClass) Alphabet(excludeAmbiguous bool) string {
	var alphabet string

	switch c {
	case Lowercase:
		alphabet = lowercaseAlphabet
	case Uppercase:
		alphabet = uppercaseAlphabet
	case Digits:
		alphabet = digitAlphabet
	case Symbols:
		return symbolAlphabet
	}

	if !excludeAmbiguous {
		return alphabet
	}

	var b strings.Builder
	for i := 0; i < len(alphabet); i++ {
		if strings.IndexByte(AmbiguousCharacters, alphabet[i]) == -1 {
			b.WriteByte(alphabet[i])
		}
	}

	return b.String()
}
