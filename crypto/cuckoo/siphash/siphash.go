// Package siphash implements the keyed SipHash-2-4 and SipHash-2-5 functions
// used to generate the edges of a cuckoo graph.
package siphash

import (
	"encoding/binary"
	"errors"
	"strings"
)

// Variant selects the number of finalization rounds.
type Variant uint8

const (
	// SipHash24 runs 2 compression rounds and 4 finalization rounds.
	SipHash24 Variant = iota

	// SipHash25 runs 2 compression rounds and 5 finalization rounds.
	SipHash25
)

// ErrUnsupportedVariant is returned when a variant name is not recognized.
var ErrUnsupportedVariant = errors.New("unsupported siphash variant")

var variantStrings = map[Variant]string{
	SipHash24: "SipHash-2-4",
	SipHash25: "SipHash-2-5",
}

func (v Variant) String() string {
	if s := variantStrings[v]; s != "" {
		return s
	}
	return "SipHash-unknown"
}

// FinalRounds returns the number of finalization rounds, 0 if the variant
// is unknown.
func (v Variant) FinalRounds() int {
	switch v {
	case SipHash24:
		return 4
	case SipHash25:
		return 5
	}
	return 0
}

// ParseVariant accepts "SipHash-2-4", "SipHash-2-5" and the short forms
// "siphash24", "siphash25", ignoring case.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "siphash-2-4", "siphash24":
		return SipHash24, nil
	case "siphash-2-5", "siphash25":
		return SipHash25, nil
	}
	return 0, ErrUnsupportedVariant
}

type SipHash struct {
	k0, k1 uint64    // two parts of key
	V      [4]uint64 // v is the current internal state.
}

/*
siphashKey[:] = [196 107 38 219 80 75 209 213 243 49 219 252 101 35 20 105]
k0 = 15407178610857372612
k1 = 7571715794457539059
s.V = [12015082867820662449 971459224712208030 13377991302290020773 2121554997101417600]
*/
// Newsip keys the state from the first 16 bytes of siphashKey, xored with
// the standard SipHash initialization constants.
func Newsip(siphashKey []byte) *SipHash {
	s := &SipHash{
		k0: binary.LittleEndian.Uint64(siphashKey[:]),
		k1: binary.LittleEndian.Uint64(siphashKey[8:]),
	}
	s.V[0] = s.k0 ^ 0x736f6d6570736575
	s.V[1] = s.k1 ^ 0x646f72616e646f6d
	s.V[2] = s.k0 ^ 0x6c7967656e657261
	s.V[3] = s.k1 ^ 0x7465646279746573

	return s
}

// NewKeyed uses the 32 byte key material directly as the four state words.
func NewKeyed(key []byte) *SipHash {
	s := &SipHash{}
	for i := range s.V {
		s.V[i] = binary.LittleEndian.Uint64(key[i*8:])
	}
	s.k0, s.k1 = s.V[0], s.V[1]
	return s
}

// Hash returns the keyed hash of b.
func (s *SipHash) Hash(b uint64, variant Variant) uint64 {
	if variant == SipHash25 {
		return SiphashPRF25(&s.V, b)
	}
	return SiphashPRF(&s.V, b)
}

func Siphash(k0, k1, b uint64) uint64 {
	// Initialization.
	var v [4]uint64
	v[0] = k0 ^ 0x736f6d6570736575
	v[1] = k1 ^ 0x646f72616e646f6d
	v[2] = k0 ^ 0x6c7967656e657261
	v[3] = k1 ^ 0x7465646279746573
	return SiphashPRF(&v, b)
}

// SiphashPRF is an unrolled SipHash-2-4 over a keyed state.
func SiphashPRF(v *[4]uint64, b uint64) uint64 {
	v0 := v[0]
	v1 := v[1]
	v2 := v[2]
	v3 := v[3]
	// Compression.
	v3 ^= b

	// Round 1.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	// Round 2.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	v0 ^= b

	// Finalization.
	v2 ^= 0xff

	// Round 1.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	// Round 2.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	// Round 3.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	// Round 4.
	v0 += v1
	v1 = v1<<13 | v1>>(64-13)
	v1 ^= v0
	v0 = v0<<32 | v0>>(64-32)

	v2 += v3
	v3 = v3<<16 | v3>>(64-16)
	v3 ^= v2

	v0 += v3
	v3 = v3<<21 | v3>>(64-21)
	v3 ^= v0

	v2 += v1
	v1 = v1<<17 | v1>>(64-17)
	v1 ^= v2
	v2 = v2<<32 | v2>>(64-32)

	return v0 ^ v1 ^ v2 ^ v3
}

// SiphashPRF25 is SiphashPRF with a fifth finalization round.
func SiphashPRF25(v *[4]uint64, b uint64) uint64 {
	s := newState(v)
	s.hash(b, 5)
	return s.digest()
}

// HashBlock fills out with the hashes of the sequential edges starting at
// start: out[i] = hash(2*(start+i)+uorv).
func HashBlock(v *[4]uint64, start, uorv uint64, variant Variant, out []uint64) {
	if variant == SipHash24 {
		for i := range out {
			out[i] = SiphashPRF(v, (start+uint64(i))<<1|uorv)
		}
		return
	}
	rounds := variant.FinalRounds()
	for i := range out {
		s := newState(v)
		s.hash((start+uint64(i))<<1|uorv, rounds)
		out[i] = s.digest()
	}
}

type state struct {
	v0, v1, v2, v3 uint64
}

func newState(v *[4]uint64) state {
	return state{v[0], v[1], v[2], v[3]}
}

// One hashing, consisting of 2 and then finalRounds rounds
func (s *state) hash(b uint64, finalRounds int) {
	s.v3 ^= b
	s.round()
	s.round()

	s.v0 ^= b
	s.v2 ^= 0xff

	for i := 0; i < finalRounds; i++ {
		s.round()
	}
}

// Resulting hash digest
func (s *state) digest() uint64 {
	return (s.v0 ^ s.v1) ^ (s.v2 ^ s.v3)
}

func (s *state) round() {
	s.v0 = s.v0 + s.v1
	s.v2 = s.v2 + s.v3
	s.v1 = rotl(s.v1, 13)
	s.v3 = rotl(s.v3, 16)
	s.v1 ^= s.v0
	s.v3 ^= s.v2
	s.v0 = rotl(s.v0, 32)
	s.v2 = s.v2 + s.v1
	s.v0 = s.v0 + s.v3
	s.v1 = rotl(s.v1, 17)
	s.v3 = rotl(s.v3, 21)
	s.v1 ^= s.v2
	s.v3 ^= s.v0
	s.v2 = rotl(s.v2, 32)
}

func rotl(val uint64, shift uint8) uint64 {
	return (val << shift) | (val >> (64 - shift))
}
