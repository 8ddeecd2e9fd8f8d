// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"context"
	"testing"

	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolverFindsKnownCycles(t *testing.T) {
	s := NewSolver()
	for _, v := range loadVectors(t) {
		if v.Name != "cuckoo_g20_sh24" && v.Name != "cuckatoo_g20_sh24" && v.Name != "cuckatoo_g20_sh25" {
			continue
		}
		cycles, err := s.FindCycles(context.Background(), v.graph(t), v.EdgeCount, v.variant(t))
		require.NoError(t, err, v.Name)
		require.Len(t, cycles, 1, v.Name)
		assert.Equal(t, v.Edges, cycles[0], v.Name)
	}
}

func TestSolverSingleCPU(t *testing.T) {
	v := loadVectors(t)[0]
	s := &Solver{ncpu: 1}
	cycles, err := s.FindCycles(context.Background(), v.graph(t), v.EdgeCount, v.variant(t))
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, v.Edges, cycles[0])
}

func TestSolverArguments(t *testing.T) {
	key, _ := CreateHeaderKey(nil, 0)
	g, err := NewGraph(key[:], MaxSolverGraphSize, false, siphash.SipHash24)
	require.NoError(t, err)
	s := NewSolver()
	_, err = s.FindCycles(context.Background(), g, 42, Cuckoo)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)

	g, _ = NewGraph(key[:], 11, false, siphash.SipHash24)
	_, err = s.FindCycles(context.Background(), g, 41, Cuckoo)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)
	_, err = s.FindCycles(context.Background(), g, 0, Cuckoo)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)
	_, err = s.FindCycles(context.Background(), g, 42, Variant(3))
	assert.True(t, IsErrorCode(err, ErrUnsupportedHashVariant), "%v", err)
}

func TestSolverCanceled(t *testing.T) {
	key, _ := CreateHeaderKey(nil, 0)
	g, _ := NewGraph(key[:], 19, false, siphash.SipHash24)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSolver().FindCycles(ctx, g, 42, Cuckoo)
	assert.Equal(t, context.Canceled, err)
}

func TestTrimEdges(t *testing.T) {
	// Edges 0 and 2 form a 2-cycle through U node 1 and V node 3. Edges 1
	// and 3 are the only edges at U nodes 2 and 0.
	us := []uint32{1, 2, 1, 0}
	vs := []uint32{3, 3, 3, 0}
	live, rounds := trimEdges(us, vs, Cuckoo)
	assert.Equal(t, []uint32{0, 2}, live)
	assert.Equal(t, 2, rounds)

	// Cuckatoo edges survive when the partner node has an edge.
	us = []uint32{2, 3, 0, 1}
	vs = []uint32{0, 1, 2, 2}
	live, _ = trimEdges(us, vs, Cuckatoo)
	assert.Equal(t, []uint32{0, 1}, live)
}

func TestAdjacency(t *testing.T) {
	nodes := []uint32{2, 0, 2, 1}
	a := newAdjacency(nodes, []uint32{0, 1, 2, 3})
	assert.Equal(t, []uint32{1}, a.at(0))
	assert.Equal(t, []uint32{3}, a.at(1))
	assert.Equal(t, []uint32{0, 2}, a.at(2))
	assert.Empty(t, a.at(3))

	a = newAdjacency(nodes, []uint32{2, 3})
	assert.Equal(t, []uint32{2}, a.at(2))
	assert.Empty(t, a.at(0))
}
