// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

// Byte sizes of the puzzle wire formats.
const (
	// HeaderSize is the size of the header that is hashed into the siphash
	// keys: input || zero padding || little-endian nonce.
	HeaderSize = 80

	// InputSize is the maximum size of a puzzle input seed.
	InputSize = 32

	// NonceSize is the size of the little-endian nonce at the end of the
	// header.
	NonceSize = 4

	// HashSize is the output size of the generic hash used for key
	// material, difficulty and chain seeds.
	HashSize = 32

	// DifficultySize is the size of a difficulty threshold.
	DifficultySize = 32

	// EdgeSize is the serialized size of one edge index.
	EdgeSize = 4
)

// Default puzzle parameters.
const (
	// DefaultGraphSize is N where the graph has 2^N nodes.
	DefaultGraphSize = 32

	// DefaultEdgeCount is the required cycle length.
	DefaultEdgeCount = 42

	DefaultSipHash = "SipHash-2-4"

	DefaultVariant = "cuckoo"

	// MinGraphSize and MaxGraphSize bound the graph size exponent. Edge
	// indices are serialized with 4 bytes.
	MinGraphSize = 2
	MaxGraphSize = 32

	// DefaultMinLinks is the minimum length of a chained solution.
	DefaultMinLinks = 1
)

// DefaultDifficulty is the easiest difficulty threshold.
var DefaultDifficulty = [DifficultySize]byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}
