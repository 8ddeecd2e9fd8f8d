// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cuckoo

import (
	"encoding/binary"

	"github.com/Qitmeer/cuckoocycle/common/hash"
	"github.com/Qitmeer/cuckoocycle/params"
)

// CreateHeader lays out the puzzle header: the input at offset 0, zero
// padding, and the nonce little-endian in the last NonceSize bytes.
func CreateHeader(input []byte, nonce uint32) ([params.HeaderSize]byte, error) {
	var header [params.HeaderSize]byte
	if len(input) > params.InputSize {
		return header, NewRuleError(ErrInvalidInput,
			"input of %d bytes exceeds the maximum of %d", len(input), params.InputSize)
	}
	copy(header[:], input)
	binary.LittleEndian.PutUint32(header[params.HeaderSize-params.NonceSize:], nonce)
	return header, nil
}

// CreateHeaderKey returns the key material for an input and nonce, the
// blake2b-256 hash of the header.
func CreateHeaderKey(input []byte, nonce uint32) (hash.Hash, error) {
	header, err := CreateHeader(input, nonce)
	if err != nil {
		return hash.ZeroHash, err
	}
	return hash.HashH(header[:]), nil
}
