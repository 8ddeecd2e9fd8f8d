/*
 * Copyright (c) 2017-2020 The qitmeer developers
 */

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/jrick/logrotate/rotator"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type (
	Logger = log.Logger
	Ctx    = log.Ctx
	Lvl    = log.Lvl
)

const (
	LvlCrit  = log.LvlCrit
	LvlError = log.LvlError
	LvlWarn  = log.LvlWarn
	LvlInfo  = log.LvlInfo
	LvlDebug = log.LvlDebug
	LvlTrace = log.LvlTrace
)

var (
	glogger *log.GlogHandler

	logWrite *logWriter
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator.
type logWriter struct {
	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	// Use for color terminal
	colorableWrite io.Writer
}

func (lw *logWriter) Init() {
	// init a colorful logger if possible
	usecolor := isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb"

	if usecolor {
		lw.colorableWrite = colorable.NewColorableStderr()
	}
}

func (lw *logWriter) Close() {
	if lw.logRotator != nil {
		lw.logRotator.Close()
		lw.logRotator = nil
	}
}

func (lw *logWriter) IsUseColor() bool {
	return lw.colorableWrite != nil
}

func (lw *logWriter) Write(p []byte) (n int, err error) {
	if lw.logRotator != nil {
		lw.logRotator.Write(p)
	}

	if lw.colorableWrite != nil {
		lw.colorableWrite.Write(p)
	} else {
		os.Stderr.Write(p)
	}
	return len(p), nil
}

func init() {
	// output set to Stderr, stdout carries command results
	logWrite = &logWriter{}
	logWrite.Init()
	glogger = log.NewGlogHandler(log.StreamHandler(io.Writer(logWrite), log.TerminalFormat(logWrite.IsUseColor())))

	log.Root().SetHandler(glogger)

	glogger.Verbosity(LvlInfo)
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %v", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %v", err)
	}

	logWrite.logRotator = r
	return nil
}

// Close flushes and closes the log rotator, if any.
func Close() {
	logWrite.Close()
}

func LogWrite() *logWriter {
	return logWrite
}

func Glogger() *log.GlogHandler {
	return glogger
}

// ParseLevel maps a case-insensitive level name onto a Lvl.
func ParseLevel(level string) (Lvl, error) {
	return log.LvlFromString(strings.ToLower(level))
}

// SetLevel sets the verbosity of the root handler.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	glogger.Verbosity(lvl)
	return nil
}

// PrintOrigins toggles printing of the call site with each record.
func PrintOrigins(print bool) {
	log.PrintOrigins(print)
}

func New(ctx ...interface{}) Logger { return log.New(ctx...) }

func Root() Logger { return log.Root() }

func Trace(msg string, ctx ...interface{}) { log.Root().Trace(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { log.Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { log.Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { log.Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { log.Root().Error(msg, ctx...) }
func Crit(msg string, ctx ...interface{})  { log.Root().Crit(msg, ctx...) }
