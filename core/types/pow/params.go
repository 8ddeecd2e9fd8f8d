// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"fmt"

	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/Qitmeer/cuckoocycle/params"
)

// Params describes a puzzle instance apart from its input and nonce.
type Params struct {
	// GraphSize is N for a graph of 2^N nodes and 2^(N-1) edges.
	GraphSize uint

	// EdgeCount is the required cycle length.
	EdgeCount int

	SipHash siphash.Variant

	Variant cuckoo.Variant

	Difficulty Difficulty

	// UseSipHashDefaults keys siphash like standard SipHash instead of
	// using the key material directly as the state.
	UseSipHashDefaults bool
}

// DefaultParams returns a cuckoo 2^32 node puzzle with 42 edge cycles,
// SipHash-2-4 and the easiest difficulty.
func DefaultParams() *Params {
	return &Params{
		GraphSize:  params.DefaultGraphSize,
		EdgeCount:  params.DefaultEdgeCount,
		SipHash:    siphash.SipHash24,
		Variant:    cuckoo.Cuckoo,
		Difficulty: params.DefaultDifficulty,
	}
}

// EdgeBits returns the number of bits of an edge index.
func (p *Params) EdgeBits() uint {
	return p.GraphSize - 1
}

// Check validates the parameters.
func (p *Params) Check() error {
	if p.GraphSize < params.MinGraphSize || p.GraphSize > params.MaxGraphSize {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"graph size %d out of range [%d, %d]", p.GraphSize,
			params.MinGraphSize, params.MaxGraphSize)
	}
	if p.EdgeCount <= 0 || p.EdgeCount%2 != 0 {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"edge count %d must be positive and even", p.EdgeCount)
	}
	if uint64(p.EdgeCount) > uint64(1)<<p.EdgeBits() {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"edge count %d exceeds the %d edges of the graph", p.EdgeCount,
			uint64(1)<<p.EdgeBits())
	}
	if p.SipHash.FinalRounds() == 0 {
		return cuckoo.NewRuleError(cuckoo.ErrUnsupportedHashVariant,
			"unsupported siphash variant %d", p.SipHash)
	}
	if !p.Variant.IsValid() {
		return cuckoo.NewRuleError(cuckoo.ErrUnsupportedHashVariant,
			"unsupported cycle variant %d", p.Variant)
	}
	return nil
}

// Graph keys the graph of input and nonce.
func (p *Params) Graph(input []byte, nonce uint32) (*cuckoo.Graph, error) {
	key, err := cuckoo.CreateHeaderKey(input, nonce)
	if err != nil {
		return nil, err
	}
	return cuckoo.NewGraph(key[:], p.EdgeBits(), p.UseSipHashDefaults, p.SipHash)
}

func (p *Params) String() string {
	return fmt.Sprintf("%s g%d %d-cycle %s difficulty %08x (%dx)", p.Variant, p.GraphSize,
		p.EdgeCount, p.SipHash, p.Difficulty.Compact(), p.Difficulty.Scale())
}
