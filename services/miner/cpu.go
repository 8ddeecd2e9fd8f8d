/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
)

// CPUEngine searches nonces one after another with the reference solver.
// It returns every cycle of the first nonce that has any.
type CPUEngine struct {
	solver *cuckoo.Solver
}

// NewCPUEngine returns an engine backed by a fresh reference solver.
func NewCPUEngine() *CPUEngine {
	return &CPUEngine{solver: cuckoo.NewSolver()}
}

// Search solves req.MaxNonces nonces from req.Nonce and stops at the first
// nonce with cycles.
func (c *CPUEngine) Search(ctx context.Context, req *SearchRequest) ([]pow.Solution, error) {
	p := req.Params()
	if p.GraphSize > cuckoo.MaxSolverGraphSize {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"cpu engine supports graphs up to 2^%d nodes, got 2^%d",
			cuckoo.MaxSolverGraphSize, p.GraphSize)
	}
	st := stats()
	end := uint64(req.Nonce) + uint64(req.MaxNonces)
	for n := uint64(req.Nonce); n < end; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nonce := uint32(n)
		g, err := p.Graph(req.Input, nonce)
		if err != nil {
			return nil, err
		}
		cycles, err := c.solver.FindCycles(ctx, g, p.EdgeCount, p.Variant)
		if err != nil {
			return nil, err
		}
		st.noncesSearched.Mark(1)
		if len(cycles) == 0 {
			continue
		}
		log.Debug("Found cycles", "nonce", nonce, "count", len(cycles))
		sols := make([]pow.Solution, len(cycles))
		for i, edges := range cycles {
			sols[i] = pow.Solution{Nonce: nonce, Edges: edges}
		}
		return sols, nil
	}
	return nil, nil
}
