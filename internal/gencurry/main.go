// Command gencurry writes the arity-indexed source files of package curry:
// the Func/Fn callables, the Closure chain, the Curry adapters and the
// Uncurry adapters, one declaration set per arity.
//
// Example:
//
//	go run ./internal/gencurry -out curry -max 6
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

const maxSupportedArity = 9

type config struct {
	out string
	pkg string
	max int
}

func (c config) validate() error {
	if c.pkg == "" {
		return errors.New("package name must not be empty")
	}
	if c.max < 2 || c.max > maxSupportedArity {
		return fmt.Errorf("max arity must be between 2 and %d, got %d", maxSupportedArity, c.max)
	}
	return nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "gencurry",
		Level:  hclog.Info,
		Output: os.Stderr,
	})
	if err := run(os.Args[1:], logger); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(argv []string, logger hclog.Logger) error {
	cfg, err := parseFlags(argv)
	if err != nil {
		return err
	}
	for _, f := range files {
		src, err := render(cfg, f.gen)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", f.name, err)
		}
		path := filepath.Join(cfg.out, f.name)
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("wrote file", "path", path, "bytes", len(src))
	}
	return nil
}

func parseFlags(argv []string) (config, error) {
	fs := flag.NewFlagSet("gencurry", flag.ContinueOnError)
	var cfg config
	fs.StringVar(&cfg.out, "out", ".", "directory the generated files are written to")
	fs.StringVar(&cfg.pkg, "pkg", "curry", "package name of the generated files")
	fs.IntVar(&cfg.max, "max", 6, "highest arity to generate")
	if err := fs.Parse(argv); err != nil {
		return config{}, err
	}
	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}
