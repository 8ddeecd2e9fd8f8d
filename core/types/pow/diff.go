// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/params"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// maxThreshold is 2^256 - 1, the easiest difficulty.
	maxThreshold = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 256), bigOne)
)

// Difficulty is a 256-bit big-endian threshold.  A solution passes when the
// hash of its edges is strictly below it.
type Difficulty [params.DifficultySize]byte

// DifficultyFromBytes copies a 32 byte threshold.
func DifficultyFromBytes(b []byte) (Difficulty, error) {
	var d Difficulty
	if len(b) != params.DifficultySize {
		return d, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"difficulty of %d bytes, want %d", len(b), params.DifficultySize)
	}
	copy(d[:], b)
	return d, nil
}

// DifficultyFromHex decodes a 64 character threshold, the 0x prefix is
// optional.
func DifficultyFromHex(s string) (Difficulty, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return Difficulty{}, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"malformed difficulty %q: %v", s, err)
	}
	return DifficultyFromBytes(b)
}

// NewDifficulty returns the threshold with the given number of leading zero
// bits.  Each bit halves the share of solutions that pass, 3 bits is the 8x
// difficulty 1fffff...ff.
func NewDifficulty(leadingZeroBits uint) Difficulty {
	return bigToDifficulty(new(big.Int).Rsh(maxThreshold, leadingZeroBits))
}

// DifficultyFromScale returns (2^256 - 1) / scale, the threshold passed by
// one solution in scale.
func DifficultyFromScale(scale uint64) (Difficulty, error) {
	if scale == 0 {
		return Difficulty{}, cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "zero difficulty scale")
	}
	return bigToDifficulty(new(big.Int).Div(maxThreshold, new(big.Int).SetUint64(scale))), nil
}

// DifficultyFromCompact expands a compact threshold, see CompactToBig.
func DifficultyFromCompact(bits uint32) (Difficulty, error) {
	n := CompactToBig(bits)
	if n.Sign() < 0 || n.Cmp(maxThreshold) > 0 {
		return Difficulty{}, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"compact difficulty %08x out of range", bits)
	}
	return bigToDifficulty(n), nil
}

// ParseDifficulty reads a difficulty in one of three forms: a scale such as
// 8x, an 8 character compact value such as 0x1f00ffff, or the full 64
// character threshold.
func ParseDifficulty(s string) (Difficulty, error) {
	if strings.HasSuffix(s, "x") || strings.HasSuffix(s, "X") {
		scale, err := strconv.ParseUint(s[:len(s)-1], 10, 64)
		if err != nil {
			return Difficulty{}, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
				"malformed difficulty scale %q: %v", s, err)
		}
		return DifficultyFromScale(scale)
	}
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(h) == 8 {
		bits, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return Difficulty{}, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
				"malformed compact difficulty %q: %v", s, err)
		}
		return DifficultyFromCompact(uint32(bits))
	}
	return DifficultyFromHex(h)
}

func bigToDifficulty(n *big.Int) Difficulty {
	var d Difficulty
	n.FillBytes(d[:])
	return d
}

// Big returns the threshold as an unsigned integer.
func (d Difficulty) Big() *big.Int {
	return new(big.Int).SetBytes(d[:])
}

// Compact returns the compact form of the threshold.
func (d Difficulty) Compact() uint32 {
	return BigToCompact(d.Big())
}

// Scale returns how many solutions on average are needed per passing one,
// rounded down.
func (d Difficulty) Scale() uint64 {
	b := d.Big()
	if b.Sign() == 0 {
		return 0
	}
	s := new(big.Int).Div(maxThreshold, b)
	if !s.IsUint64() {
		return ^uint64(0)
	}
	return s.Uint64()
}

func (d Difficulty) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText encodes the difficulty as hex.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes the difficulty from hex.
func (d *Difficulty) UnmarshalText(input []byte) error {
	nd, err := DifficultyFromHex(string(input))
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// CompactToBig converts a compact representation of a whole number N to an
// unsigned 32-bit number.  The representation is similar to IEEE754 floating
// point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa.  They are broken out as follows:
//
//	* the most significant 8 bits represent the unsigned base 256 exponent
// 	* bit 23 (the 24th bit) represents the sign bit
//	* the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
// 	N = (-1^sign) * mantissa * 256^(exponent-3)
func CompactToBig(compact uint32) *big.Int {
	// Extract the mantissa, sign bit, and exponent.
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes to represent the full 256-bit number.  So,
	// treat the exponent as the number of bytes and shift the mantissa
	// right or left accordingly.  This is equivalent to:
	// N = mantissa * 256^(exponent-3)
	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	// Make it negative if the sign bit is set.
	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number.  The compact representation only provides 23 bits
// of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number.  See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	// No need to do any work if it's zero.
	if n.Sign() == 0 {
		return 0
	}

	// Since the base for the exponent is 256, the exponent can be treated
	// as the number of bytes.  So, shift the number right or left
	// accordingly.  This is equivalent to:
	// mantissa = mantissa / 256^(exponent-3)
	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		// Use a copy to avoid modifying the caller's original number.
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23-bits, so divide the number by 256
	// and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	// Pack the exponent, sign bit, and mantissa into an unsigned 32-bit
	// int and return it.
	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}
