// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/params"
)

// Verify checks that sol solves the puzzle of input under p.  Input and
// parameters are validated before any hashing, the difficulty is checked
// last.
func Verify(input []byte, sol *Solution, p *Params) error {
	if err := checkInput(input, p); err != nil {
		return err
	}
	return verifySolution(input, sol, p)
}

func checkInput(input []byte, p *Params) error {
	if len(input) > params.InputSize {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"input of %d bytes exceeds the maximum of %d", len(input), params.InputSize)
	}
	return p.Check()
}

func verifySolution(input []byte, sol *Solution, p *Params) error {
	if sol == nil || len(sol.Edges) != p.EdgeCount {
		n := 0
		if sol != nil {
			n = len(sol.Edges)
		}
		return cuckoo.NewRuleError(cuckoo.ErrMalformedSolution,
			"solution has %d edges, want %d", n, p.EdgeCount)
	}
	g, err := p.Graph(input, sol.Nonce)
	if err != nil {
		return err
	}
	if err := cuckoo.VerifyEdges(g, sol.Edges, p.Variant); err != nil {
		return err
	}
	if !cuckoo.CheckDifficulty(sol.Edges, p.Difficulty[:]) {
		return cuckoo.NewRuleError(cuckoo.ErrBelowDifficulty,
			"edges hash %v is not below difficulty %v", cuckoo.EdgesHash(sol.Edges), p.Difficulty)
	}
	log.Trace("Solution verified", "nonce", sol.Nonce, "variant", p.Variant)
	return nil
}

// ChainLimits bounds the number of links of a chained solution.  Max 0
// means unbounded, Min 0 means params.DefaultMinLinks.
type ChainLimits struct {
	Min int
	Max int
}

func (l ChainLimits) check(n int) error {
	min := l.Min
	if min == 0 {
		min = params.DefaultMinLinks
	}
	if min < 0 || l.Max < 0 || (l.Max > 0 && l.Max < min) {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"invalid chain limits [%d, %d]", l.Min, l.Max)
	}
	if n < min || (l.Max > 0 && n > l.Max) {
		return cuckoo.NewRuleError(cuckoo.ErrChainLengthOutOfRange,
			"chain of %d links outside [%d, %d]", n, min, l.Max)
	}
	return nil
}

// VerifyChain checks every link of chain, the first against input and each
// following one against the hash of the previous solution.  A failing link
// is reported as a cuckoo.ChainError.
func VerifyChain(input []byte, chain ChainedSolution, p *Params, limits ChainLimits) error {
	if err := limits.check(len(chain)); err != nil {
		return err
	}
	if err := checkInput(input, p); err != nil {
		return err
	}
	for i := range chain {
		if err := verifySolution(input, &chain[i], p); err != nil {
			log.Debug("Chain link failed", "link", i, "err", err)
			return cuckoo.ChainError{Link: i, Err: err}
		}
		input = chain[i].Hash().Bytes()
	}
	return nil
}
