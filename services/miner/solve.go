/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"
	"time"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/params"
)

// nonceSpace is the number of distinct nonces.
const nonceSpace = uint64(1) << 32

// Solve asks engine for cycles starting at nonce and returns the first one
// meeting the difficulty of p.  It returns nil when the engine runs out of
// cycles or maxNonces nonces were consumed.  Engine errors are returned
// unchanged.
func Solve(ctx context.Context, engine Engine, input []byte, p *pow.Params, nonce, maxNonces uint32) (*pow.Solution, error) {
	if engine == nil {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "nil engine")
	}
	if len(input) > params.InputSize {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"input of %d bytes exceeds the maximum of %d", len(input), params.InputSize)
	}
	if err := p.Check(); err != nil {
		return nil, err
	}

	cur := uint64(nonce)
	remaining := uint64(maxNonces)
	if remaining > nonceSpace-cur {
		remaining = nonceSpace - cur
	}
	log.Debug("Solve", "params", p, "nonce", nonce, "maxnonces", remaining)
	st := stats()

	for remaining > 0 {
		req := newSearchRequest(input, p, uint32(cur), uint32(remaining))
		start := time.Now()
		sols, err := engine.Search(ctx, req)
		st.searchTimer.UpdateSince(start)
		st.engineCalls.Inc(1)
		if err != nil {
			return nil, err
		}
		if len(sols) == 0 {
			log.Debug("Engine found no cycles", "nonce", cur, "maxnonces", remaining)
			return nil, nil
		}
		st.candidates.Inc(int64(len(sols)))

		highest := cur
		for i := range sols {
			sol := &sols[i]
			n := uint64(sol.Nonce)
			if n < cur || n >= cur+remaining {
				return nil, cuckoo.NewRuleError(cuckoo.ErrMalformedSolution,
					"engine returned nonce %d outside [%d, %d)", n, cur, cur+remaining)
			}
			if cuckoo.CheckDifficulty(sol.Edges, p.Difficulty[:]) {
				log.Info("Found solution", "nonce", sol.Nonce, "hash", cuckoo.EdgesHash(sol.Edges))
				found := pow.Solution{Nonce: sol.Nonce, Edges: append([]uint32(nil), sol.Edges...)}
				return &found, nil
			}
			st.difficultyRejects.Inc(1)
			if n > highest {
				highest = n
			}
		}
		remaining -= highest + 1 - cur
		cur = highest + 1
	}
	return nil, nil
}

// SolveWithEngine is Solve with the engine looked up by name.
func SolveWithEngine(ctx context.Context, name string, input []byte, p *pow.Params, nonce, maxNonces uint32) (*pow.Solution, error) {
	engine, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Solve(ctx, engine, input, p, nonce, maxNonces)
}
