// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"testing"

	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/stretchr/testify/require"
)

type solutionVector struct {
	Name      string   `json:"name"`
	Input     string   `json:"input"`
	Nonce     uint32   `json:"nonce"`
	GraphSize uint     `json:"graphSize"`
	EdgeCount int      `json:"edgeCount"`
	SipHash   string   `json:"sipHash"`
	Variant   string   `json:"variant"`
	Passes8x  bool     `json:"passes8x"`
	Edges     []uint32 `json:"edges"`
}

type vectorFile struct {
	Solutions []solutionVector `json:"solutions"`
}

// difficulty8x is a threshold passed by one solution in eight.
var difficulty8x = append([]byte{0x1f}, bytesOf(0xff, 31)...)

var difficulty1x = bytesOf(0xff, 32)

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func loadVectors(t testing.TB) []solutionVector {
	data, err := ioutil.ReadFile("../../testdata/vectors.json")
	require.NoError(t, err)
	var vf vectorFile
	require.NoError(t, json.Unmarshal(data, &vf))
	require.NotEmpty(t, vf.Solutions)
	return vf.Solutions
}

// graph keys the graph of the vector's header in keyed siphash mode.
func (v *solutionVector) graph(t testing.TB) *Graph {
	input, err := hex.DecodeString(v.Input)
	require.NoError(t, err)
	key, err := CreateHeaderKey(input, v.Nonce)
	require.NoError(t, err)
	sh, err := siphash.ParseVariant(v.SipHash)
	require.NoError(t, err)
	g, err := NewGraph(key[:], v.GraphSize-1, false, sh)
	require.NoError(t, err)
	return g
}

func (v *solutionVector) variant(t testing.TB) Variant {
	variant, err := ParseVariant(v.Variant)
	require.NoError(t, err)
	return variant
}
