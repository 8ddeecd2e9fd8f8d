/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	"sync"

	"github.com/Qitmeer/cuckoocycle/metrics"
	gometrics "github.com/rcrowley/go-metrics"
)

type collectors struct {
	enabled           bool
	engineCalls       gometrics.Counter
	searchTimer       gometrics.Timer
	candidates        gometrics.Counter
	difficultyRejects gometrics.Counter
	noncesSearched    gometrics.Meter
}

var (
	statsMtx sync.Mutex
	current  *collectors
)

// stats returns the package collectors, rebuilt whenever metrics.Init
// changed the enabled state since the last call.
func stats() *collectors {
	statsMtx.Lock()
	defer statsMtx.Unlock()
	if current == nil || current.enabled != metrics.Enabled {
		current = &collectors{
			enabled:           metrics.Enabled,
			engineCalls:       metrics.NewCounter("miner/engine/calls"),
			searchTimer:       metrics.NewTimer("miner/engine/search"),
			candidates:        metrics.NewCounter("miner/candidates"),
			difficultyRejects: metrics.NewCounter("miner/candidates/rejected"),
			noncesSearched:    metrics.NewMeter("miner/cpu/nonces"),
		}
	}
	return current
}
