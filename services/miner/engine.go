/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"context"
	"sort"
	"sync"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
)

const (
	CPUEngineName = "cpu"
)

// SearchRequest describes one nonce window of a puzzle.  An engine returns
// solutions with nonces in [Nonce, Nonce+MaxNonces).
type SearchRequest struct {
	Input              []byte
	GraphSize          uint
	EdgeCount          int
	SipHash            siphash.Variant
	Variant            cuckoo.Variant
	UseSipHashDefaults bool
	Nonce              uint32
	MaxNonces          uint32
}

func newSearchRequest(input []byte, p *pow.Params, nonce, maxNonces uint32) *SearchRequest {
	return &SearchRequest{
		Input:              input,
		GraphSize:          p.GraphSize,
		EdgeCount:          p.EdgeCount,
		SipHash:            p.SipHash,
		Variant:            p.Variant,
		UseSipHashDefaults: p.UseSipHashDefaults,
		Nonce:              nonce,
		MaxNonces:          maxNonces,
	}
}

// Params returns the puzzle parameters of the request.  The difficulty is
// left at the default since engines do not filter by it.
func (r *SearchRequest) Params() *pow.Params {
	p := pow.DefaultParams()
	p.GraphSize = r.GraphSize
	p.EdgeCount = r.EdgeCount
	p.SipHash = r.SipHash
	p.Variant = r.Variant
	p.UseSipHashDefaults = r.UseSipHashDefaults
	return p
}

// Engine finds cycles.  Returned solutions must be valid cycles of the
// requested puzzle, they are only checked against the difficulty.
type Engine interface {
	Search(ctx context.Context, req *SearchRequest) ([]pow.Solution, error)
}

var (
	enginesMtx sync.RWMutex
	engines    = map[string]Engine{}
)

// Register adds an engine under name.
func Register(name string, e Engine) error {
	if name == "" {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "empty engine name")
	}
	if e == nil {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "nil engine %q", name)
	}
	enginesMtx.Lock()
	defer enginesMtx.Unlock()
	if _, ok := engines[name]; ok {
		return cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "engine %q already registered", name)
	}
	engines[name] = e
	log.Debug("Registered engine", "name", name)
	return nil
}

// Lookup returns the engine registered under name.
func Lookup(name string) (Engine, error) {
	enginesMtx.RLock()
	defer enginesMtx.RUnlock()
	e, ok := engines[name]
	if !ok {
		return nil, cuckoo.NewRuleError(cuckoo.ErrUnknownEngine, "unknown engine %q", name)
	}
	return e, nil
}

// Engines returns the sorted names of the registered engines.
func Engines() []string {
	enginesMtx.RLock()
	defer enginesMtx.RUnlock()
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func unregister(name string) {
	enginesMtx.Lock()
	delete(engines, name)
	enginesMtx.Unlock()
}

func init() {
	if err := Register(CPUEngineName, NewCPUEngine()); err != nil {
		panic(err)
	}
}
