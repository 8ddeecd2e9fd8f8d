// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/Qitmeer/cuckoocycle/common/hash"
	"github.com/Qitmeer/cuckoocycle/config"
	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/services/miner"
	"github.com/pkg/errors"
)

const defaultMaxNonces = 1 << 16

type command struct {
	name  string
	short string
	long  string
	opts  interface{}
	run   func(ctx context.Context, cfg *config.Config, out io.Writer) error
}

type commands struct {
	list   []*command
	byName map[string]*command
}

func newCommands() *commands {
	solve := &solveOptions{Engine: miner.CPUEngineName, MaxNonces: defaultMaxNonces}
	solveChain := &solveChainOptions{Engine: miner.CPUEngineName, Links: 1, MaxNonces: defaultMaxNonces}
	verify := &verifyOptions{}
	verifyChain := &verifyChainOptions{}
	engines := &struct{}{}

	cmds := &commands{byName: make(map[string]*command)}
	for _, c := range []*command{
		{"solve", "Solve a puzzle",
			"Search nonces with an engine for a cycle meeting the difficulty.",
			solve, solve.run},
		{"solvechain", "Solve a chain of puzzles",
			"Solve linked puzzles, each seeded with the hash of the previous solution.",
			solveChain, solveChain.run},
		{"verify", "Verify a solution",
			"Verify a JSON solution {\"nonce\":n,\"edges\":[...]} against the puzzle options.",
			verify, verify.run},
		{"verifychain", "Verify a chain of solutions",
			"Verify a JSON array of solutions against the puzzle options.",
			verifyChain, verifyChain.run},
		{"engines", "List the registered engines", "List the registered engines.",
			engines, listEngines},
	} {
		cmds.list = append(cmds.list, c)
		cmds.byName[c.name] = c
	}
	return cmds
}

func (c *commands) configCommands() []config.Command {
	out := make([]config.Command, 0, len(c.list))
	for _, cmd := range c.list {
		out = append(out, config.Command{Name: cmd.name, Short: cmd.short, Long: cmd.long, Data: cmd.opts})
	}
	return out
}

type solveOptions struct {
	Engine    string `long:"engine" description:"Solver engine"`
	Nonce     uint32 `long:"nonce" description:"First nonce to search"`
	MaxNonces uint32 `long:"maxnonces" description:"Number of nonces to search"`
}

type solveResult struct {
	Input    string        `json:"input"`
	Solution *pow.Solution `json:"solution"`
	Hash     hash.Hash     `json:"hash"`
}

func (o *solveOptions) run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	input, p, err := puzzle(cfg)
	if err != nil {
		return err
	}
	log.Info("Solving", "engine", o.Engine, "params", p, "nonce", o.Nonce, "maxnonces", o.MaxNonces)
	sol, err := miner.SolveWithEngine(ctx, o.Engine, input, p, o.Nonce, o.MaxNonces)
	if err != nil {
		return err
	}
	if sol == nil {
		return errors.Errorf("no solution within %d nonces from %d", o.MaxNonces, o.Nonce)
	}
	return writeJSON(out, &solveResult{
		Input:    hex.EncodeToString(input),
		Solution: sol,
		Hash:     sol.Hash(),
	})
}

type solveChainOptions struct {
	Engine    string `long:"engine" description:"Solver engine"`
	Links     int    `long:"links" description:"Number of links"`
	MaxNonces uint32 `long:"maxnonces" description:"Number of nonces to search per link"`
}

func (o *solveChainOptions) run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	input, p, err := puzzle(cfg)
	if err != nil {
		return err
	}
	log.Info("Solving chain", "engine", o.Engine, "params", p, "links", o.Links, "maxnonces", o.MaxNonces)
	chain, err := miner.SolveChainWithEngine(ctx, o.Engine, input, p, o.Links, o.MaxNonces)
	if err != nil {
		return err
	}
	return writeJSON(out, chain)
}

type verifyOptions struct {
	Solution string `long:"solution" description:"Solution JSON, @file to read it from a file, empty for stdin"`
}

type verifyResult struct {
	Valid bool      `json:"valid"`
	Hash  hash.Hash `json:"hash"`
}

func (o *verifyOptions) run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	input, p, err := puzzle(cfg)
	if err != nil {
		return err
	}
	var sol pow.Solution
	if err := readJSON(o.Solution, &sol); err != nil {
		return err
	}
	if err := pow.Verify(input, &sol, p); err != nil {
		return err
	}
	return writeJSON(out, &verifyResult{Valid: true, Hash: sol.Hash()})
}

type verifyChainOptions struct {
	Chain    string `long:"chain" description:"Chain JSON, @file to read it from a file, empty for stdin"`
	MinLinks int    `long:"minlinks" description:"Minimum number of links"`
	MaxLinks int    `long:"maxlinks" description:"Maximum number of links, 0 for no limit"`
}

func (o *verifyChainOptions) run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	input, p, err := puzzle(cfg)
	if err != nil {
		return err
	}
	var chain pow.ChainedSolution
	if err := readJSON(o.Chain, &chain); err != nil {
		return err
	}
	limits := pow.ChainLimits{Min: o.MinLinks, Max: o.MaxLinks}
	if err := pow.VerifyChain(input, chain, p, limits); err != nil {
		return err
	}
	return writeJSON(out, &verifyResult{Valid: true, Hash: chain[len(chain)-1].Hash()})
}

func listEngines(ctx context.Context, cfg *config.Config, out io.Writer) error {
	return writeJSON(out, miner.Engines())
}

func puzzle(cfg *config.Config) ([]byte, *pow.Params, error) {
	input, err := cfg.Puzzle.InputBytes()
	if err != nil {
		return nil, nil, err
	}
	p, err := cfg.Puzzle.Params()
	if err != nil {
		return nil, nil, err
	}
	return input, p, nil
}

// readJSON decodes arg into v.  An arg starting with @ names a file, an
// empty arg reads stdin.  Undecodable input is a malformed solution.
func readJSON(arg string, v interface{}) error {
	var data []byte
	var err error
	switch {
	case arg == "":
		data, err = ioutil.ReadAll(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
	case strings.HasPrefix(arg, "@"):
		data, err = ioutil.ReadFile(arg[1:])
		if err != nil {
			return errors.Wrapf(err, "read %s", arg[1:])
		}
	default:
		data = []byte(arg)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return cuckoo.NewRuleError(cuckoo.ErrMalformedSolution, "decode json: %v", err)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "write json")
}
