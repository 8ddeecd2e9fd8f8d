// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxSolverGraphSize is the largest graph the reference solver accepts,
	// it keeps both endpoint arrays of every edge in memory.
	MaxSolverGraphSize = 26

	// blockSize is the number of edges hashed per batch.
	blockSize = 8192
)

// Solver is a reference cycle finder for small graphs.  It trims edges
// that can not be part of a cycle and then runs a depth first search over
// the remaining ones.
type Solver struct {
	ncpu int
}

// NewSolver returns a solver that spreads node generation over all
// processors.
func NewSolver() *Solver {
	ncpu := runtime.NumCPU()
	if ncpu > 32 {
		ncpu = 32
	}
	return &Solver{ncpu: ncpu}
}

// FindCycles returns every cycle of exactly edgeCount edges in g, each
// sorted ascending and accepted by VerifyEdges.  Cycles are ordered by
// their largest edge.
func (s *Solver) FindCycles(ctx context.Context, g *Graph, edgeCount int, variant Variant) ([][]uint32, error) {
	if g.EdgeBits+1 > MaxSolverGraphSize {
		return nil, NewRuleError(ErrInvalidInput, "graph size %d exceeds the solver maximum %d",
			g.EdgeBits+1, MaxSolverGraphSize)
	}
	if edgeCount < 2 || edgeCount%2 != 0 {
		return nil, NewRuleError(ErrInvalidInput, "cycle length %d must be positive and even", edgeCount)
	}
	if !variant.IsValid() {
		return nil, NewRuleError(ErrUnsupportedHashVariant, "unsupported cycle variant %d", variant)
	}

	us, vs, err := s.buildNodes(ctx, g)
	if err != nil {
		return nil, err
	}
	live, rounds := trimEdges(us, vs, variant)
	log.Debug("Trimmed graph", "edges", len(us), "rounds", rounds, "live", len(live))

	cs := &cycleSearch{
		us:      us,
		vs:      vs,
		n:       edgeCount,
		variant: variant,
		path:    make([]uint32, edgeCount),
	}
	cs.adj[0] = newAdjacency(us, live)
	cs.adj[1] = newAdjacency(vs, live)
	cs.used[0] = make([]bool, len(us))
	cs.used[1] = make([]bool, len(vs))

	var cycles [][]uint32
	for i, e := range live {
		if i%blockSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		cs.path[0] = e
		cs.dfs(1)
		for _, cycle := range cs.found {
			if err := VerifyEdges(g, cycle, variant); err != nil {
				log.Debug("Rejected cycle candidate", "err", err)
				continue
			}
			cycles = append(cycles, cycle)
		}
		cs.found = cs.found[:0]
	}
	return cycles, nil
}

// buildNodes computes the U and V endpoints of every edge, one goroutine
// per processor.
func (s *Solver) buildNodes(ctx context.Context, g *Graph) ([]uint32, []uint32, error) {
	nedge := g.NumEdges()
	us := make([]uint32, nedge)
	vs := make([]uint32, nedge)

	steps := nedge / uint64(s.ncpu)
	remain := nedge - steps*uint64(s.ncpu)
	eg, ctx := errgroup.WithContext(ctx)
	for j := 0; j < s.ncpu; j++ {
		first := steps * uint64(j)
		last := first + steps
		if j == s.ncpu-1 {
			last += remain
		}
		eg.Go(func() error {
			buf := make([]uint64, blockSize)
			for start := first; start < last; start += blockSize {
				if err := ctx.Err(); err != nil {
					return err
				}
				end := start + blockSize
				if end > last {
					end = last
				}
				g.Nodes(start, 0, us[start:end], buf)
				g.Nodes(start, 1, vs[start:end], buf)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return us, vs, nil
}

// trimEdges repeatedly drops edges with an endpoint that no other live edge
// continues until nothing changes.  It returns the ascending live edges and
// the number of rounds.
func trimEdges(us, vs []uint32, variant Variant) ([]uint32, int) {
	live := make([]uint32, len(us))
	for e := range live {
		live[e] = uint32(e)
	}
	next := make([]uint32, 0, len(us))
	cntU := make([]uint8, len(us))
	cntV := make([]uint8, len(vs))

	rounds := 0
	for {
		rounds++
		for _, e := range live {
			if cntU[us[e]] < 2 {
				cntU[us[e]]++
			}
			if cntV[vs[e]] < 2 {
				cntV[vs[e]]++
			}
		}
		next = next[:0]
		for _, e := range live {
			var ok bool
			if variant == Cuckatoo {
				ok = cntU[us[e]^1] >= 1 && cntV[vs[e]^1] >= 1
			} else {
				ok = cntU[us[e]] >= 2 && cntV[vs[e]] >= 2
			}
			if ok {
				next = append(next, e)
			}
		}
		for _, e := range live {
			cntU[us[e]] = 0
			cntV[vs[e]] = 0
		}
		if len(next) == len(live) {
			return live, rounds
		}
		live, next = next, live
	}
}

// adjacency lists the live edges at each node in ascending order.
type adjacency struct {
	offsets []uint32
	edges   []uint32
}

func newAdjacency(nodes []uint32, live []uint32) adjacency {
	a := adjacency{
		offsets: make([]uint32, len(nodes)+1),
		edges:   make([]uint32, len(live)),
	}
	for _, e := range live {
		a.offsets[nodes[e]+1]++
	}
	for i := 1; i < len(a.offsets); i++ {
		a.offsets[i] += a.offsets[i-1]
	}
	pos := make([]uint32, len(nodes))
	copy(pos, a.offsets[:len(nodes)])
	for _, e := range live {
		a.edges[pos[nodes[e]]] = e
		pos[nodes[e]]++
	}
	return a
}

func (a *adjacency) at(node uint32) []uint32 {
	return a.edges[a.offsets[node]:a.offsets[node+1]]
}

// cycleSearch finds the cycles whose largest edge is path[0], stepping
// over U endpoints at odd depths and V endpoints at even depths.
type cycleSearch struct {
	us, vs  []uint32
	adj     [2]adjacency
	used    [2][]bool
	path    []uint32
	n       int
	variant Variant
	found   [][]uint32
}

// partner is the node value the next edge must share.
func (cs *cycleSearch) partner(node uint32) uint32 {
	if cs.variant == Cuckatoo {
		return node ^ 1
	}
	return node
}

// key identifies the node, or the node pair for cuckatoo, visited on a side.
func (cs *cycleSearch) key(node uint32) uint32 {
	if cs.variant == Cuckatoo {
		return node >> 1
	}
	return node
}

func (cs *cycleSearch) dfs(d int) {
	c := cs.path[d-1]
	if d == cs.n {
		if cs.vs[c] == cs.partner(cs.vs[cs.path[0]]) {
			cycle := make([]uint32, cs.n)
			copy(cycle, cs.path)
			sort.Slice(cycle, func(i, j int) bool { return cycle[i] < cycle[j] })
			cs.found = append(cs.found, cycle)
		}
		return
	}
	side := 1
	nodes := cs.vs
	if d%2 == 1 {
		side = 0
		nodes = cs.us
	}
	node := nodes[c]
	k := cs.key(node)
	if cs.used[side][k] {
		return
	}
	cs.used[side][k] = true
	for _, f := range cs.adj[side].at(cs.partner(node)) {
		if f >= cs.path[0] {
			break
		}
		if cs.onPath(f, d) {
			continue
		}
		cs.path[d] = f
		cs.dfs(d + 1)
	}
	cs.used[side][k] = false
}

func (cs *cycleSearch) onPath(e uint32, d int) bool {
	for _, p := range cs.path[:d] {
		if p == e {
			return true
		}
	}
	return false
}
