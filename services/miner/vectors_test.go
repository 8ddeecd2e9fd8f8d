/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"
	"sync"
	"testing"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/stretchr/testify/require"
)

type puzzleVector struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	GraphSize uint   `json:"graphSize"`
	EdgeCount int    `json:"edgeCount"`
	SipHash   string `json:"sipHash"`
	Variant   string `json:"variant"`
}

type solutionVector struct {
	puzzleVector
	Passes8x bool `json:"passes8x"`
	pow.Solution
}

type chainVector struct {
	puzzleVector
	Links pow.ChainedSolution `json:"links"`
}

type vectorFile struct {
	Solutions []solutionVector `json:"solutions"`
	Chains    []chainVector    `json:"chains"`
}

func loadVectors(t *testing.T) *vectorFile {
	data, err := ioutil.ReadFile("../../testdata/vectors.json")
	require.NoError(t, err)
	var vf vectorFile
	require.NoError(t, json.Unmarshal(data, &vf))
	return &vf
}

func (vf *vectorFile) solution(t *testing.T, name string) *solutionVector {
	for i := range vf.Solutions {
		if vf.Solutions[i].Name == name {
			return &vf.Solutions[i]
		}
	}
	t.Fatalf("no solution vector %s", name)
	return nil
}

func (v *puzzleVector) params(t *testing.T) *pow.Params {
	sh, err := siphash.ParseVariant(v.SipHash)
	require.NoError(t, err)
	variant, err := cuckoo.ParseVariant(v.Variant)
	require.NoError(t, err)
	p := pow.DefaultParams()
	p.GraphSize = v.GraphSize
	p.EdgeCount = v.EdgeCount
	p.SipHash = sh
	p.Variant = variant
	return p
}

func (v *puzzleVector) input(t *testing.T) []byte {
	input, err := hex.DecodeString(v.Input)
	require.NoError(t, err)
	return input
}

// difficulty8x is passed by one edge list in eight.
var difficulty8x = pow.NewDifficulty(3)

// longTests enables the tests that run the cpu engine over many nonces.
func longTests(t *testing.T) {
	if os.Getenv("CUCKOO_LONG_TESTS") == "" {
		t.Skip("set CUCKOO_LONG_TESTS to run")
	}
}

// stubEngine replays scripted batches and records the requests it was
// given.
type stubEngine struct {
	mtx      sync.Mutex
	batches  [][]pow.Solution
	err      error
	requests []SearchRequest
	respond  func(req *SearchRequest) []pow.Solution
}

func (s *stubEngine) Search(ctx context.Context, req *SearchRequest) ([]pow.Solution, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.requests = append(s.requests, *req)
	if s.err != nil {
		return nil, s.err
	}
	if s.respond != nil {
		return s.respond(req), nil
	}
	if len(s.batches) == 0 {
		return nil, nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}
