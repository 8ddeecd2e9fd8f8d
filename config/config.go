// Copyright (c) 2017-2020 The qitmeer developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/Qitmeer/cuckoocycle/core/types/pow"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo"
	"github.com/Qitmeer/cuckoocycle/crypto/cuckoo/siphash"
	"github.com/Qitmeer/cuckoocycle/log"
	"github.com/Qitmeer/cuckoocycle/params"
	"github.com/btcsuite/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultConfigFilename = "cuckoo.conf"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "cuckoo.log"
	defaultDebugLevel     = "info"
)

var (
	defaultHomeDir = btcutil.AppDataDir("cuckoo", false)
)

type Config struct {
	HomeDir           string `short:"A" long:"appdata" description:"Path to application home directory"`
	ConfigFile        string `short:"C" long:"configfile" description:"Path to configuration file"`
	LogDir            string `long:"logdir" description:"Directory to log output."`
	NoFileLogging     bool   `long:"nofilelogging" description:"Disable file logging."`
	DebugLevel        string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
	DebugPrintOrigins bool   `long:"printorigin" description:"Print log debug location (file:line)"`
	Metrics           bool   `long:"metrics" description:"Collect solver metrics and write them to stderr on exit"`

	Puzzle PuzzleOptions `group:"Puzzle Options"`
}

// PuzzleOptions are the puzzle parameters shared by every command.
type PuzzleOptions struct {
	Input           string `short:"i" long:"input" description:"Puzzle input seed, hex encoded, at most 32 bytes"`
	GraphSize       uint   `short:"g" long:"graphsize" description:"Graph size N, the graph has 2^N nodes"`
	EdgeCount       int    `short:"e" long:"edgecount" description:"Required cycle length"`
	SipHash         string `long:"siphash" description:"SipHash variant {SipHash-2-4, SipHash-2-5}"`
	Variant         string `long:"variant" description:"Cycle variant {cuckoo, cuckatoo}"`
	Difficulty      string `long:"difficulty" description:"Difficulty as a scale (8x), a compact value (0x1f00ffff) or a 32 byte hex threshold"`
	SipHashDefaults bool   `long:"siphashdefaults" description:"Key siphash with the standard SipHash constants"`
}

// InputBytes decodes the input seed.
func (o *PuzzleOptions) InputBytes() ([]byte, error) {
	input, err := hex.DecodeString(strings.TrimPrefix(o.Input, "0x"))
	if err != nil {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidInput, "invalid input %q: %v", o.Input, err)
	}
	if len(input) > params.InputSize {
		return nil, cuckoo.NewRuleError(cuckoo.ErrInvalidInput,
			"input of %d bytes exceeds the maximum of %d", len(input), params.InputSize)
	}
	return input, nil
}

// Params builds checked puzzle parameters from the options.
func (o *PuzzleOptions) Params() (*pow.Params, error) {
	sh, err := siphash.ParseVariant(o.SipHash)
	if err != nil {
		return nil, cuckoo.NewRuleError(cuckoo.ErrUnsupportedHashVariant, "%v", err)
	}
	variant, err := cuckoo.ParseVariant(o.Variant)
	if err != nil {
		return nil, err
	}
	p := &pow.Params{
		GraphSize:          o.GraphSize,
		EdgeCount:          o.EdgeCount,
		SipHash:            sh,
		Variant:            variant,
		Difficulty:         params.DefaultDifficulty,
		UseSipHashDefaults: o.SipHashDefaults,
	}
	if o.Difficulty != "" {
		p.Difficulty, err = pow.ParseDifficulty(o.Difficulty)
		if err != nil {
			return nil, err
		}
	}
	if err := p.Check(); err != nil {
		return nil, err
	}
	return p, nil
}

// LogFile returns the path of the log file, empty when file logging is
// disabled.
func (c *Config) LogFile() string {
	if c.NoFileLogging {
		return ""
	}
	return filepath.Join(c.LogDir, defaultLogFilename)
}

// Command is a go-flags command added to the parser.  Data holds the
// command's options.
type Command struct {
	Name  string
	Short string
	Long  string
	Data  interface{}
}

func defaultConfig() Config {
	return Config{
		HomeDir:    defaultHomeDir,
		ConfigFile: filepath.Join(defaultHomeDir, defaultConfigFilename),
		LogDir:     filepath.Join(defaultHomeDir, defaultLogDirname),
		DebugLevel: defaultDebugLevel,
		Puzzle: PuzzleOptions{
			GraphSize: params.DefaultGraphSize,
			EdgeCount: params.DefaultEdgeCount,
			SipHash:   params.DefaultSipHash,
			Variant:   params.DefaultVariant,
		},
	}
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative home
// 	   directory or config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// The name of the selected command is returned with the remaining arguments.
func LoadConfig(args []string, commands ...Command) (*Config, string, []string, error) {
	cfg := defaultConfig()

	// Pre-parse the command line options to see if an alternative home
	// directory or config file was specified.  Any errors can be ignored
	// here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.IgnoreUnknown)
	_, _ = preParser.ParseArgs(args)

	configFileSet := preCfg.ConfigFile != cfg.ConfigFile
	if preCfg.HomeDir != cfg.HomeDir {
		cfg.HomeDir, _ = filepath.Abs(cleanAndExpandPath(preCfg.HomeDir))
		cfg.ConfigFile = filepath.Join(cfg.HomeDir, defaultConfigFilename)
		cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
	}
	if configFileSet {
		cfg.ConfigFile = preCfg.ConfigFile
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	for _, c := range commands {
		if _, err := parser.AddCommand(c.Name, c.Short, c.Long, c.Data); err != nil {
			return nil, "", nil, errors.Wrapf(err, "add command %s", c.Name)
		}
	}

	err := flags.NewIniParser(parser).ParseFile(cleanAndExpandPath(cfg.ConfigFile))
	if err != nil {
		if _, ok := err.(*os.PathError); !ok || configFileSet {
			return nil, "", nil, errors.Wrapf(err, "load config file %s", cfg.ConfigFile)
		}
	}

	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, "", nil, err
	}

	cfg.HomeDir = cleanAndExpandPath(cfg.HomeDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	if _, err := log.ParseLevel(cfg.DebugLevel); err != nil {
		return nil, "", nil, errors.Wrapf(err, "invalid debuglevel %q", cfg.DebugLevel)
	}

	// Create the home directory if it doesn't already exist.
	err = os.MkdirAll(cfg.HomeDir, 0700)
	if err != nil {
		// Show a nicer error message if it's because a symlink is
		// linked to a directory that does not exist (probably because
		// it's not mounted).
		if e, ok := err.(*os.PathError); ok && os.IsExist(err) {
			if link, lerr := os.Readlink(e.Path); lerr == nil {
				err = errors.Errorf("is symlink %s -> %s mounted?", e.Path, link)
			}
		}
		return nil, "", nil, errors.Wrap(err, "failed to create home directory")
	}

	command := ""
	if parser.Active != nil {
		command = parser.Active.Name
	}
	return &cfg, command, remainingArgs, nil
}

// IsHelp reports whether err is the go-flags help request.
func IsHelp(err error) bool {
	e, ok := errors.Cause(err).(*flags.Error)
	return ok && e.Type == flags.ErrHelp
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
