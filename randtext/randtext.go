// Package randtext generates random payloads for exercising the codec:
// plain strings over common alphabets, key=value tokens and multi-token
// streams. Generators are deterministic for a given seed.
package randtext

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

const (
	alphaChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alnumChars = alphaChars + "0123456789"
	hexChars   = "0123456789abcdef"
)

// Generator draws from a seeded source so runs are reproducible.
type Generator struct {
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

// From returns n characters drawn uniformly from alphabet.
func (g *Generator) From(alphabet string, n int) string {
	var b strings.Builder
	b.Grow(n)

	for range n {
		b.WriteByte(alphabet[g.rng.IntN(len(alphabet))])
	}

	return b.String()
}

func (g *Generator) Alpha(n int) string { return g.From(alphaChars, n) }

func (g *Generator) Alnum(n int) string { return g.From(alnumChars, n) }

func (g *Generator) Hex(n int) string { return g.From(hexChars, n) }

// UUID returns a random hex string in the canonical 8-4-4-4-12 grouping.
// It is not a conformant v4 UUID; it only needs to look like one.
func (g *Generator) UUID() string {
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		g.Hex(8), g.Hex(4), g.Hex(4), g.Hex(4), g.Hex(12))
}

// IntN returns a uniform value in [0, n).
func (g *Generator) IntN(n int) int {
	return g.rng.IntN(n)
}

// Pick returns one of the supplied choices.
func (g *Generator) Pick(choices []string) string {
	return choices[g.rng.IntN(len(choices))]
}
