// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgesBytes(t *testing.T) {
	assert.Equal(t, "0100000004030201", hex.EncodeToString(EdgesBytes([]uint32{1, 0x01020304})))
	assert.Empty(t, EdgesBytes(nil))
}

func TestEdgesHash(t *testing.T) {
	expected := map[string]string{
		"cuckoo_g20_sh24":   "2f0e43de86b8ca70e73170d54750d0dc86dcdbf5563265911d981801b929dd63",
		"cuckatoo_g20_sh24": "8a5d6eff9dcab7e544cfb8c8529e55ca10b66ba9f7ba96a96401eafeceedb098",
		"cuckoo_d8x":        "100d5bcda8f08fffab0360409147f1f73a6081d3f4ded461e3e031513faa8a55",
		"cuckatoo_d8x":      "16221ca7bf86b4592a6a349a7dd8660f5514f8891557d8686ace84e8d3ebf22f",
	}
	for _, v := range loadVectors(t) {
		if h, ok := expected[v.Name]; ok {
			assert.Equal(t, h, EdgesHash(v.Edges).String(), v.Name)
		}
	}
}

func TestCheckDifficulty(t *testing.T) {
	for _, v := range loadVectors(t) {
		assert.True(t, CheckDifficulty(v.Edges, difficulty1x), v.Name)
		assert.Equal(t, v.Passes8x, CheckDifficulty(v.Edges, difficulty8x), v.Name)
		assert.False(t, CheckDifficulty(v.Edges, make([]byte, 32)), v.Name)
	}

	// The threshold is exclusive.
	edges := []uint32{1, 2, 3}
	h := EdgesHash(edges)
	assert.False(t, CheckDifficulty(edges, h[:]))
	above := h
	above[31]++
	assert.True(t, CheckDifficulty(edges, above[:]))
}
