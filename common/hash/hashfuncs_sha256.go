// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hash

// Sha256H calculates sha256(b) and returns the resulting bytes as a Hash.
func Sha256H(b []byte) Hash {
	var h Hash
	hasher := GetHasher(SHA256)
	hasher.Write(b)
	copy(h[:], hasher.Sum(nil))
	return h
}
