// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"testing"

	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphNodes(t *testing.T) {
	key, err := CreateHeaderKey(nil, 38)
	require.NoError(t, err)

	g, err := NewGraph(key[:], 19, false, siphash.SipHash24)
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<19-1), g.EdgeMask)
	assert.Equal(t, uint64(1<<19), g.NumEdges())
	assert.Equal(t, uint32(280077), g.Node(0x21ce, 0))
	assert.Equal(t, uint32(390159), g.Node(0x21ce, 1))

	def, err := NewGraph(key[:], 19, true, siphash.SipHash24)
	require.NoError(t, err)
	assert.Equal(t, uint32(169496), def.Node(0, 0))
	assert.Equal(t, uint32(47449), def.Node(0, 1))
}

func TestGraphNodesBlock(t *testing.T) {
	key, _ := CreateHeaderKey([]byte("block"), 7)
	for _, variant := range []siphash.Variant{siphash.SipHash24, siphash.SipHash25} {
		g, err := NewGraph(key[:], 15, false, variant)
		require.NoError(t, err)
		out := make([]uint32, 100)
		g.Nodes(1000, 1, out, make([]uint64, 128))
		for i, node := range out {
			assert.Equal(t, g.Node(uint32(1000+i), 1), node)
		}
	}
}

func TestNewGraphErrors(t *testing.T) {
	key := make([]byte, 32)
	_, err := NewGraph(key, 19, false, siphash.Variant(7))
	assert.True(t, IsErrorCode(err, ErrUnsupportedHashVariant), "%v", err)
	_, err = NewGraph(key[:16], 19, false, siphash.SipHash24)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)
	_, err = NewGraph(key, 0, false, siphash.SipHash24)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)
	_, err = NewGraph(key, 32, false, siphash.SipHash24)
	assert.True(t, IsErrorCode(err, ErrInvalidInput), "%v", err)
}
