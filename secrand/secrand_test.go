package secrand_test

import (
	"sort"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/passgen/secrand"
)

var _ = Describe("Choice", func() {
	It("only returns bytes from the alphabet", func() {
		const alphabet = "abc123"

		for i := 0; i < 200; i++ {
			ch, err := secrand.Choice(alphabet)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.IndexByte(alphabet, ch)).To(BeNumerically(">=", 0))
		}
	})

	It("eventually returns every byte of a small alphabet", func() {
		seen := map[byte]bool{}

		for i := 0; i < 200; i++ {
			ch, err := secrand.Choice("xy")
			Expect(err).NotTo(HaveOccurred())
			seen[ch] = true
		}

		Expect(seen).To(HaveLen(2))
	})

	It("fails on an empty alphabet", func() {
		_, err := secrand.Choice("")
		Expect(err).To(MatchError(secrand.ErrEmptyAlphabet))
	})
})

var _ = Describe("Intn", func() {
	It("stays within [0, n)", func() {
		for i := 0; i < 200; i++ {
			n, err := secrand.Intn(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically(">=", 0))
			Expect(n).To(BeNumerically("<", 7))
		}
	})
})

var _ = Describe("Shuffle", func() {
	It("preserves the multiset of bytes", func() {
		original := []byte("aabbccddeeff0123456789")
		shuffled := append([]byte(nil), original...)

		Expect(secrand.Shuffle(shuffled)).To(Succeed())

		sortedOriginal := append([]byte(nil), original...)
		sortedShuffled := append([]byte(nil), shuffled...)
		sortBytes(sortedOriginal)
		sortBytes(sortedShuffled)

		Expect(sortedShuffled).To(Equal(sortedOriginal))
	})

	It("handles empty and single-byte slices", func() {
		Expect(secrand.Shuffle(nil)).To(Succeed())
		Expect(secrand.Shuffle([]byte("x"))).To(Succeed())
	})
})

func sortBytes(b []byte) {
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
}
