// Package words holds the fixed passphrase wordlist. The list is
// process-wide immutable data; nothing may append to or reorder it.
package words

var List = []string{
	"apple", "brave", "cloud", "dance", "eagle", "flame", "grace", "happy",
	"imagine", "jungle", "knight", "light", "magic", "nature", "ocean", "peace",
	"quiet", "river", "storm", "tiger", "unity", "village", "wisdom", "xenial",
	"yellow", "zebra", "anchor", "bridge", "castle", "dragon", "earth", "forest",
	"galaxy", "harbor", "island", "journey", "kingdom", "legend", "mountain", "noble",
}
