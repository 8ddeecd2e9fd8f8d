// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/Qitmeer/cuckoocycle/config"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	l "github.com/Qitmeer/cuckoocycle/log"
	"github.com/Qitmeer/cuckoocycle/metrics"
)

var log = l.New(l.Ctx{"module": "main"})

func main() {
	// Use all processor cores.
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Work around defer not working after os.Exit()
	if err := cuckooMain(os.Args[1:], os.Stdout); err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		if code, ok := cuckoo.Code(err); ok {
			fmt.Fprintf(os.Stderr, "%v: %v\n", code, err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// cuckooMain parses args, sets up logging and metrics and runs the selected
// command with its output going to out.
func cuckooMain(args []string, out io.Writer) error {
	cmds := newCommands()
	cfg, name, _, err := config.LoadConfig(args, cmds.configCommands()...)
	if err != nil {
		return err
	}
	if err := initLogging(cfg); err != nil {
		return err
	}
	defer l.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			log.Info("Got Control+C, exiting...")
			cancel()
		case <-ctx.Done():
		}
	}()

	metrics.Init(cfg.Metrics)
	if cfg.Metrics {
		go metrics.CollectProcessMetrics(ctx, 3*time.Second)
		defer metrics.WriteOnce(os.Stderr)
	}

	cmd, ok := cmds.byName[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	log.Debug("Running command", "command", name, "home", cfg.HomeDir)
	return cmd.run(ctx, cfg, out)
}

func initLogging(cfg *config.Config) error {
	if err := l.SetLevel(cfg.DebugLevel); err != nil {
		return err
	}
	l.PrintOrigins(cfg.DebugPrintOrigins)
	if logFile := cfg.LogFile(); logFile != "" {
		if err := l.InitLogRotator(logFile); err != nil {
			return err
		}
	}
	return nil
}
