/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
)

// SolveChain solves linkCount puzzles in sequence.  The first link uses
// input, each following link the hash of the previous solution.  Every link
// searches from nonce 0 with a budget of maxNonces.
func SolveChain(ctx context.Context, engine Engine, input []byte, p *pow.Params, linkCount int, maxNonces uint32) (pow.ChainedSolution, error) {
	if linkCount < 1 {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidLinkCount,
			"link count %d must be at least 1", linkCount)
	}
	chain := make(pow.ChainedSolution, 0, linkCount)
	for i := 0; i < linkCount; i++ {
		sol, err := Solve(ctx, engine, input, p, 0, maxNonces)
		if err != nil {
			return nil, err
		}
		if sol == nil {
			return nil, cuckoo.NewRuleError(cuckoo.ErrChainedSolutionNotFound,
				"no solution for link %d within %d nonces", i, maxNonces)
		}
		log.Info("Solved chain link", "link", i, "nonce", sol.Nonce)
		chain = append(chain, *sol)
		input = sol.Hash().Bytes()
	}
	return chain, nil
}

// SolveChainWithEngine is SolveChain with the engine looked up by name.
func SolveChainWithEngine(ctx context.Context, name string, input []byte, p *pow.Params, linkCount int, maxNonces uint32) (pow.ChainedSolution, error) {
	engine, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return SolveChain(ctx, engine, input, p, linkCount, maxNonces)
}
