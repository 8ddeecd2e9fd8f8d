// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"encoding/binary"
	"fmt"

	"github.com/Qitmeer/cuckoocycle/common/hash"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/params"
)

// Solution is a nonce and the sorted edges of a cycle in its graph.
type Solution struct {
	Nonce uint32   `json:"nonce"`
	Edges []uint32 `json:"edges"`
}

// Bytes serializes the solution as the little-endian nonce followed by the
// little-endian edges.
func (s *Solution) Bytes() []byte {
	buf := make([]byte, params.NonceSize, params.NonceSize+params.EdgeSize*len(s.Edges))
	binary.LittleEndian.PutUint32(buf, s.Nonce)
	return append(buf, cuckoo.EdgesBytes(s.Edges)...)
}

// Hash returns the sha256 of Bytes.  It is the input of the next link of a
// chained solution.
func (s *Solution) Hash() hash.Hash {
	return hash.Sha256H(s.Bytes())
}

func (s *Solution) String() string {
	return fmt.Sprintf("nonce %d, %d edges", s.Nonce, len(s.Edges))
}

// ChainedSolution is a sequence of solutions where each link is solved
// with the hash of the previous link as input.
type ChainedSolution []Solution

// Inputs returns the input each link was solved with, starting with input.
func (c ChainedSolution) Inputs(input []byte) [][]byte {
	inputs := make([][]byte, len(c))
	for i := range c {
		inputs[i] = input
		h := c[i].Hash()
		input = h[:]
	}
	return inputs
}
