// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"testing"

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
	Solution
}

type chainVector struct {
	puzzleVector
	Seeds []string        `json:"seeds"`
	Links ChainedSolution `json:"links"`
}

type vectorFile struct {
	Solutions []solutionVector `json:"solutions"`
	Chains    []chainVector    `json:"chains"`
}

func loadVectors(t *testing.T) *vectorFile {
	data, err := ioutil.ReadFile("../../../testdata/vectors.json")
	require.NoError(t, err)
	var vf vectorFile
	require.NoError(t, json.Unmarshal(data, &vf))
	require.NotEmpty(t, vf.Solutions)
	require.NotEmpty(t, vf.Chains)
	return &vf
}

func (v *puzzleVector) params(t *testing.T) *Params {
	sh, err := siphash.ParseVariant(v.SipHash)
	require.NoError(t, err)
	variant, err := cuckoo.ParseVariant(v.Variant)
	require.NoError(t, err)
	p := DefaultParams()
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

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
