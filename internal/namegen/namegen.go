// Package namegen is the hash & name generator: a deterministic short
// hash of a byte string, and a unique-id generator per prefix. The hash
// combinator is ported from evanw-esbuild/internal/helpers/hash.go
// (HashCombine), which esbuild uses for its own deterministic symbol
// renaming.
package namegen

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/atomicss/atomicss/internal/helpers"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Hash32 combines the bytes of data into a single deterministic uint32,
// seeded so that the empty string does not hash to zero.
func Hash32(data []byte) uint32 {
	return helpers.HashCombineString(0x811c9dc5, string(data))
}

// Base36 renders a uint32 in base 36, matching the compact alphanumeric
// class names the compiler emits.
func Base36(n uint32) string {
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	digits := make([]byte, 0, 7)
	for n > 0 {
		digits = append(digits, base36Alphabet[n%36])
		n /= 36
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// HashToClassName hashes data and renders it as prefix + base36(hash).
func HashToClassName(prefix string, data []byte) string {
	return prefix + Base36(Hash32(data))
}

// Generator hands out unique identifiers scoped per string prefix. It
// backs the animation names keyframes emits.
//
// NextForPrefix is deterministic and process-local: the same module,
// walked in the same order, produces the same sequence of names. The
// uuid-backed TiebreakFor below is ALSO deterministic —
// it is a version-5 (SHA-1 namespace) UUID, not the random version 4 — so
// reaching for google/uuid here never breaks reproducibility.
type Generator struct {
	counts map[string]int
}

func NewGenerator() *Generator {
	return &Generator{counts: make(map[string]int)}
}

func (g *Generator) NextForPrefix(prefix string) string {
	n := g.counts[prefix]
	g.counts[prefix] = n + 1
	return prefix + Base36(uint32(n))
}

// atomicssNamespace scopes every deterministic UUID this package mints so
// they never collide with UUIDs minted by unrelated tools.
var atomicssNamespace = uuid.MustParse("3f6e6f8e-6e8d-4f6b-9c1b-a70d1cc50001")

// TiebreakFor derives a deterministic suffix from seed. It exists purely
// for the theoretical case where two distinct atomic rules hash-collide in
// Hash32 (a 32-bit space, so collisions are possible at scale);
// state.Inject falls back to this only after detecting the collision, so
// ordinary runs never observe it. Because it's a seeded v5 UUID rather than
// a random v4 one, two independent compilations of the same colliding input
// still agree on the tiebreak value.
func TiebreakFor(seed string) string {
	id := uuid.NewSHA1(atomicssNamespace, []byte(seed))
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}

// guard against NaN/Inf ever reaching Hash32's float-adjacent callers; kept
// here because every component that hashes a numeric Value routes through
// this package first.
func IsFiniteHashable(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
