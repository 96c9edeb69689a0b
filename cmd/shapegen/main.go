/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
// Command shapegen generates the shape packages under smcore/model from the
// YAML definitions under api/.
//
//	go run ./cmd/shapegen -out smcore/model api/sagemaker
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dirpx.dev/smapi/smcore/gen"
	"go.uber.org/zap"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type config struct {
	out      string
	check    bool
	dev      bool
	logLevel string
	paths    []string
}

func parse(args []string, output io.Writer) (*config, bool, error) {
	flagSet := flag.NewFlagSet("shapegen", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
shapegen - generate smapi shape packages from YAML definitions.

Usage:
  shapegen [options] PATH...

Arguments:
  PATH
    A definition file, or a directory whose *.yaml files are all loaded.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &config{}
	flagSet.StringVar(&cfg.out, "out", filepath.Join("smcore", "model"), "Directory that receives one sub-directory per package.")
	flagSet.BoolVar(&cfg.check, "check", false, "Only load and check the definitions; write nothing.")
	flagSet.BoolVar(&cfg.dev, "dev", false, "Human-readable development logging.")
	flagSet.StringVar(&cfg.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn' or 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg.paths = flagSet.Args()
	if len(cfg.paths) == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "no definition paths given"}
	}
	return cfg, false, nil
}

func newLogger(cfg *config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(strings.ToLower(cfg.logLevel))
	if err != nil {
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn' or 'error'"}
	}

	z := zap.NewProductionConfig()
	if cfg.dev {
		z = zap.NewDevelopmentConfig()
	}
	z.Level = level
	z.OutputPaths = []string{"stderr"}

	logger, err := z.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// expand turns the PATH arguments into a sorted list of definition files.
func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.yaml"))
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no *.yaml definitions", p)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, out)
	if err != nil || shouldExit {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	files, err := expand(cfg.paths)
	if err != nil {
		return err
	}

	defs := make([]*gen.File, 0, len(files))
	for _, path := range files {
		f, err := gen.LoadFile(path)
		if err != nil {
			return err
		}
		logger.Debug("definitions loaded",
			zap.String("path", path),
			zap.String("package", f.Package),
			zap.Int("enums", len(f.Enums)),
			zap.Int("shapes", len(f.Shapes)),
		)
		defs = append(defs, f)
	}

	if err := gen.Check(defs...); err != nil {
		logger.Error("definitions rejected", zap.Error(err))
		return &ExitError{Code: 1, Message: err.Error()}
	}
	if cfg.check {
		fmt.Fprintf(out, "%d definition files ok\n", len(defs))
		return nil
	}

	total := 0
	for _, f := range defs {
		written, err := gen.Write(f, cfg.out)
		if err != nil {
			return err
		}
		total += len(written)
		logger.Info("package generated",
			zap.String("package", f.Package),
			zap.String("version", f.Version),
			zap.Int("files", len(written)),
		)
	}
	fmt.Fprintf(out, "generated %d files in %d packages\n", total, len(defs))
	return nil
}
