/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package miner

import (
	l "github.com/Qitmeer/cuckoocycle/log"
)

var log = l.New(l.Ctx{"module": "miner"})

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger l.Logger) {
	log = logger
}
