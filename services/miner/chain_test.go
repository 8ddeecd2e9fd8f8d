/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"
	"testing"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveChainLinkCount(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := SolveChain(context.Background(), &stubEngine{}, nil, params8x(), n, 10)
		assert.True(t, cuckoo.IsErrorCode(err, cuckoo.ErrInvalidLinkCount), "%d: %v", n, err)
	}
}

func TestSolveChainSeeds(t *testing.T) {
	pass, _ := edges8x(t)
	engine := &stubEngine{respond: func(req *SearchRequest) []pow.Solution {
		return []pow.Solution{{Nonce: req.Nonce + 3, Edges: pass}}
	}}
	input := []byte{0xaa}
	chain, err := SolveChain(context.Background(), engine, input, params8x(), 3, 50)
	require.NoError(t, err)
	require.Len(t, chain, 3)

	require.Len(t, engine.requests, 3)
	inputs := chain.Inputs(input)
	for i, req := range engine.requests {
		assert.Equal(t, uint32(0), req.Nonce, "link %d", i)
		assert.Equal(t, uint32(50), req.MaxNonces, "link %d", i)
		assert.Equal(t, inputs[i], req.Input, "link %d", i)
	}
	h := chain[0].Hash()
	assert.Equal(t, h[:], engine.requests[1].Input)
}

func TestSolveChainNotFound(t *testing.T) {
	pass, _ := edges8x(t)
	engine := &stubEngine{batches: [][]pow.Solution{{{Nonce: 2, Edges: pass}}}}
	chain, err := SolveChain(context.Background(), engine, nil, params8x(), 2, 10)
	assert.Nil(t, chain)
	assert.True(t, cuckoo.IsErrorCode(err, cuckoo.ErrChainedSolutionNotFound), "%v", err)
	assert.Contains(t, err.Error(), "link 1")
}

func TestSolveChainEngineError(t *testing.T) {
	engine := &stubEngine{err: context.DeadlineExceeded}
	_, err := SolveChain(context.Background(), engine, nil, params8x(), 2, 10)
	assert.Equal(t, context.DeadlineExceeded, err)
}

func TestSolveChainCPURoundTrip(t *testing.T) {
	longTests(t)
	vf := loadVectors(t)
	for _, v := range vf.Chains {
		p := v.params(t)
		input := v.input(t)
		chain, err := SolveChainWithEngine(context.Background(), CPUEngineName, input, p, len(v.Links), 1000)
		require.NoError(t, err, v.Name)
		assert.Equal(t, v.Links, chain, v.Name)
		assert.NoError(t, pow.VerifyChain(input, chain, p, pow.ChainLimits{}), v.Name)
	}
}
