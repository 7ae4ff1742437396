// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fixdemo evaluates an example generator through a fixed-point
// combinator and optionally verifies it against named recursion.
//
// Usage:
//
//	fixdemo [-gen factorial] [-n 5] [-mode lazy|trampoline|bounded]
//	        [-limit 10000] [-verify] [-format text|yaml] [-config file]
//
// Every flag may also be set from the environment as FIXDEMO_<FLAG>
// (for example FIXDEMO_LOG_LEVEL=debug) or from a config file with one
// "flag value" pair per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"code.hybscloud.com/fix"
	"code.hybscloud.com/fix/check"
	"code.hybscloud.com/fix/generators"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const (
	modeLazy       = "lazy"
	modeTrampoline = "trampoline"
	modeBounded    = "bounded"
)

type config struct {
	gen      string
	n        int
	mode     string
	limit    int
	verify   bool
	format   string
	logLevel string
}

// report is the outcome of one evaluation.
type report struct {
	Generator string         `yaml:"generator"`
	N         int            `yaml:"n"`
	Mode      string         `yaml:"mode"`
	Value     *int           `yaml:"value,omitempty"`
	Error     string         `yaml:"error,omitempty"`
	Verify    *check.Summary `yaml:"verify,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "fixdemo: %v\n", err)
		return exitUsage
	}

	log := logrus.New()
	log.SetOutput(stderr)
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "fixdemo: %v\n", err)
		return exitUsage
	}
	log.SetLevel(level)

	entry, err := generators.Lookup(cfg.gen)
	if err != nil {
		fmt.Fprintf(stderr, "fixdemo: %v\n", err)
		return exitUsage
	}

	logger := log.WithFields(logrus.Fields{
		"generator": entry.Name,
		"mode":      cfg.mode,
		"n":         cfg.n,
	})

	rep := report{Generator: entry.Name, N: cfg.n, Mode: cfg.mode}
	code := exitOK

	value, err := evaluate(entry, cfg)
	if err != nil {
		logger.WithError(err).Error("evaluation failed")
		rep.Error = err.Error()
		code = exitFail
	} else {
		logger.WithField("value", value).Info("evaluated")
		rep.Value = &value
		if cfg.verify && entry.Reference != nil {
			h := check.New(entry.Name, check.WithLogger(logger))
			check.Equal(h, fmt.Sprintf("%s(%d)", entry.Name, cfg.n), value, entry.Reference(cfg.n))
			sum := h.Summary()
			rep.Verify = &sum
			if h.Failed() {
				code = exitFail
			}
		}
	}

	if err := write(stdout, cfg.format, rep); err != nil {
		fmt.Fprintf(stderr, "fixdemo: %v\n", err)
		return exitFail
	}
	return code
}

func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("fixdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.gen, "gen", "factorial", "generator: "+strings.Join(generators.Names(), ", "))
	fs.IntVar(&cfg.n, "n", 5, "argument passed to the fixed point")
	fs.StringVar(&cfg.mode, "mode", modeLazy, "combinator: lazy, trampoline, or bounded")
	fs.IntVar(&cfg.limit, "limit", 10000, "depth ceiling (bounded) or step budget (trampoline)")
	fs.BoolVar(&cfg.verify, "verify", true, "cross-check against named recursion")
	fs.StringVar(&cfg.format, "format", "text", "output format: text or yaml")
	fs.StringVar(&cfg.logLevel, "log-level", "warning", "log level")
	fs.String("config", "", "config file (optional)")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("FIXDEMO"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return config{}, err
	}

	switch cfg.mode {
	case modeLazy, modeTrampoline, modeBounded:
	default:
		return config{}, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	switch cfg.format {
	case "text", "yaml":
	default:
		return config{}, fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.limit <= 0 {
		return config{}, fmt.Errorf("limit must be positive, got %d", cfg.limit)
	}
	if cfg.mode == modeLazy && entryDiverges(cfg.gen) {
		return config{}, fmt.Errorf("generator %q has no base case; use -mode bounded or trampoline", cfg.gen)
	}
	return cfg, nil
}

// entryDiverges reports whether name has no terminating reference, in
// which case the unbounded lazy combinator would exhaust the stack.
func entryDiverges(name string) bool {
	e, err := generators.Lookup(name)
	return err == nil && e.Reference == nil
}

func evaluate(e generators.Entry, cfg config) (int, error) {
	switch cfg.mode {
	case modeTrampoline:
		return fix.TrampolineBudget(e.Trampolined, cfg.limit)(cfg.n)
	case modeBounded:
		return fix.YBounded(e.Lazy, cfg.limit)(cfg.n)
	default:
		return fix.Y(e.Lazy)(cfg.n), nil
	}
}

func write(w io.Writer, format string, rep report) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	}
	if rep.Error != "" {
		_, err := fmt.Fprintf(w, "%s(%d): %s\n", rep.Generator, rep.N, rep.Error)
		return err
	}
	_, err := fmt.Fprintf(w, "%s(%d) = %d\n", rep.Generator, rep.N, *rep.Value)
	return err
}
