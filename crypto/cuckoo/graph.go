// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/Qitmeer/cuckoocycle/params"
)

// Graph is the bipartite graph keyed by one header.  Edge e joins node
// Node(e, 0) on the U side to Node(e, 1) on the V side.
type Graph struct {
	sip      *siphash.SipHash
	variant  siphash.Variant
	EdgeBits uint
	EdgeMask uint64
}

// NewGraph keys a graph with 2^edgeBits edges.  With useDefaults the
// state is set up from the first 16 bytes of key like standard SipHash,
// otherwise the 32 byte key is used as the state directly.
func NewGraph(key []byte, edgeBits uint, useDefaults bool, variant siphash.Variant) (*Graph, error) {
	if variant.FinalRounds() == 0 {
		return nil, NewRuleError(ErrUnsupportedHashVariant, "unsupported siphash variant %v", variant)
	}
	if edgeBits < params.MinGraphSize-1 || edgeBits > params.MaxGraphSize-1 {
		return nil, NewRuleError(ErrInvalidInput, "edge bits %d out of range", edgeBits)
	}
	if len(key) != params.HashSize {
		return nil, NewRuleError(ErrInvalidInput, "siphash key of %d bytes, want %d",
			len(key), params.HashSize)
	}
	g := &Graph{
		variant:  variant,
		EdgeBits: edgeBits,
		EdgeMask: 1<<edgeBits - 1,
	}
	if useDefaults {
		g.sip = siphash.Newsip(key)
	} else {
		g.sip = siphash.NewKeyed(key)
	}
	return g, nil
}

// NumEdges returns the number of edges of the graph.
func (g *Graph) NumEdges() uint64 {
	return g.EdgeMask + 1
}

// Variant returns the SipHash variant keying the graph.
func (g *Graph) Variant() siphash.Variant {
	return g.variant
}

// Node returns the endpoint of edge on side uorv (0 for U, 1 for V).
func (g *Graph) Node(edge uint32, uorv uint64) uint32 {
	return uint32(g.sip.Hash(2*uint64(edge)+uorv, g.variant) & g.EdgeMask)
}

// Nodes fills out with the endpoints on side uorv of the consecutive edges
// starting at start.
func (g *Graph) Nodes(start uint64, uorv uint64, out []uint32, buf []uint64) {
	buf = buf[:len(out)]
	siphash.HashBlock(&g.sip.V, start, uorv, g.variant, buf)
	for i, h := range buf {
		out[i] = uint32(h & g.EdgeMask)
	}
}
