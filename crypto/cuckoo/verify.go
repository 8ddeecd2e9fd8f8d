// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"strings"

	l "github.com/Qitmeer/cuckoocycle/log"
	"github.com/davecgh/go-spew/spew"
)

// Variant selects how the endpoints of consecutive cycle edges must
// relate.
type Variant uint8

const (
	// Cuckoo cycles pass through identical node values.
	Cuckoo Variant = iota

	// Cuckatoo cycles pass from a node to its partner, the node that
	// differs only in the lowest bit.
	Cuckatoo
)

var variantStrings = map[Variant]string{
	Cuckoo:   "cuckoo",
	Cuckatoo: "cuckatoo",
}

func (v Variant) String() string {
	if s := variantStrings[v]; s != "" {
		return s
	}
	return "unknown"
}

// ParseVariant parses "cuckoo" or "cuckatoo", ignoring case.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "cuckoo":
		return Cuckoo, nil
	case "cuckatoo":
		return Cuckatoo, nil
	}
	return 0, NewRuleError(ErrUnsupportedHashVariant, "unsupported cycle variant %q", name)
}

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool {
	_, ok := variantStrings[v]
	return ok
}

// VerifyEdges checks that edges form a single cycle through every edge of
// the graph.  The length of edges is the cycle length.
func VerifyEdges(g *Graph, edges []uint32, variant Variant) error {
	if !variant.IsValid() {
		return NewRuleError(ErrUnsupportedHashVariant, "unsupported cycle variant %d", variant)
	}
	n := len(edges)
	us := make([]uint32, n)
	vs := make([]uint32, n)

	var xor0, xor1 uint32
	if variant == Cuckatoo {
		xor0 = uint32(n/2) & 1
		xor1 = xor0
	}
	for i, e := range edges {
		if uint64(e) > g.EdgeMask {
			return NewRuleError(ErrEdgeTooLarge, "edge %d at index %d exceeds the edge mask %d",
				e, i, g.EdgeMask)
		}
		if i > 0 && e <= edges[i-1] {
			return NewRuleError(ErrEdgesNotAscending, "edge %d at index %d is not above %d",
				e, i, edges[i-1])
		}
		us[i] = g.Node(e, 0)
		vs[i] = g.Node(e, 1)
		xor0 ^= us[i]
		xor1 ^= vs[i]
	}
	if xor0|xor1 != 0 {
		return ruleError(ErrUnbalancedNodes, "endpoints don't match up")
	}
	log.Trace("Cycle endpoints", "variant", variant, "u", l.NewLogClosure(func() string {
		return spew.Sdump(us)
	}), "v", l.NewLogClosure(func() string {
		return spew.Sdump(vs)
	}))
	return followCycle(us, vs, variant)
}

// followCycle walks from edge 0 alternating between the U and V endpoints
// and requires the walk to come back to edge 0 after visiting every edge.
func followCycle(us, vs []uint32, variant Variant) error {
	n := len(us)
	sides := [2][]uint32{us, vs}
	side := 0
	length := 0
	for i := 0; ; {
		nodes := sides[side]
		another := -1
		for k := 0; k < n; k++ {
			if k == i || !endpointsMatch(nodes[k], nodes[i], variant) {
				continue
			}
			if another != -1 {
				return NewRuleError(ErrBranchInCycle, "branch at edge index %d", i)
			}
			another = k
		}
		if another == -1 {
			return NewRuleError(ErrNoMatchingEdge, "dead end at edge index %d", i)
		}
		if variant == Cuckatoo && nodes[another] == nodes[i] {
			return NewRuleError(ErrNoMatchingEdge, "edge indices %d and %d share a node", i, another)
		}
		i = another
		side ^= 1
		length++
		if i == 0 {
			break
		}
	}
	if length != n {
		return NewRuleError(ErrCycleTooShort, "cycle of %d edges, want %d", length, n)
	}
	return nil
}

func endpointsMatch(a, b uint32, variant Variant) bool {
	if variant == Cuckatoo {
		return a>>1 == b>>1
	}
	return a == b
}
