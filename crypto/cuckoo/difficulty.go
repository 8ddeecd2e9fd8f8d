// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"bytes"
	"encoding/binary"

	"github.com/Qitmeer/cuckoocycle/common/hash"
	"github.com/Qitmeer/cuckoocycle/params"
)

// EdgesBytes serializes edges as consecutive little-endian 4 byte words.
func EdgesBytes(edges []uint32) []byte {
	var buf = make([]byte, params.EdgeSize*len(edges))
	for i, x := range edges {
		binary.LittleEndian.PutUint32(buf[params.EdgeSize*i:], x)
	}
	return buf
}

// EdgesHash returns the blake2b-256 hash of the serialized edges.
func EdgesHash(edges []uint32) hash.Hash {
	return hash.HashH(EdgesBytes(edges))
}

// CheckDifficulty reports whether the hash of edges is strictly below the
// big-endian threshold.  Edges are hashed in the order given, callers pass
// them sorted.
func CheckDifficulty(edges []uint32, threshold []byte) bool {
	h := EdgesHash(edges)
	return bytes.Compare(h[:], threshold) < 0
}
