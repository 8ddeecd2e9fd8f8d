// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

import (
	"crypto"
	_ "crypto/sha256"
	"encoding/hex"
	"hash"

	_ "golang.org/x/crypto/blake2b"
)

const HashSize = 32

// Hash is a 256-bit digest. Puzzle key material, solution hashes and
// chain seeds all use it.
type Hash [HashSize]byte

type Hasher interface {
	hash.Hash
}

var ZeroHash = Hash{}

type HashType byte

const (
	SHA256 HashType = iota
	Blake2b_256
	Blake2b_512
)

func GetHasher(ht HashType) Hasher {
	switch ht {
	case SHA256:
		return crypto.SHA256.New()
	case Blake2b_256:
		return crypto.BLAKE2b_256.New()
	case Blake2b_512:
		return crypto.BLAKE2b_512.New()
	}
	return nil
}

// String returns the Hash as a hexadecimal string in byte order.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

// MarshalText encodes the hash as hex.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h[:])), nil
}
