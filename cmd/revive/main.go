// Command revive decodes YAML documents into native values and dumps the
// resulting graph.
//
// Usage:
//
//	revive [flags] [file...]
//
// Standard input is read when no file is given. Every document of every
// input is decoded in its own pass.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"tag-reviver/diagnostic"
	"tag-reviver/internal/common"
	"tag-reviver/options"
	"tag-reviver/primitive"
	"tag-reviver/revive"
)

type config struct {
	namespace      string
	maxDepth       int
	safe           bool
	strictIntegers bool
	verbose        bool
	jsonc          bool
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("revive", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&cfg.namespace, "namespace", options.DefaultNamespace, "private tag namespace of native types")
	flagSet.IntVar(&cfg.maxDepth, "max-depth", options.DefaultMaxDepth, "maximum node nesting, negative for unlimited")
	flagSet.BoolVar(&cfg.safe, "safe", false, "revive plain data and aliases only")
	flagSet.BoolVar(&cfg.strictIntegers, "strict-integers", false, "do not accept ',' as a digit separator")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log fallbacks and print diagnostics")
	flagSet.BoolVar(&cfg.jsonc, "jsonc", false, "strip JSON comments and trailing commas before decoding")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}

		return err
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}

	opts := options.Options{
		Namespace: cfg.namespace,
		Logger:    slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		MaxDepth:  cfg.maxDepth,
		Scanner:   primitive.Scanner{StrictIntegers: cfg.strictIntegers},
	}

	if cfg.safe {
		opts.Families = options.FamilySafe
	}

	dec := revive.NewDecoder(nil, opts)
	dumper := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}

	var total diagnostic.Diagnostics

	files := flagSet.Args()
	if common.IsEmpty(files) {
		files = []string{"-"}
	}

	for _, name := range files {
		data, err := readInput(name, stdin)
		if err != nil {
			return err
		}

		if cfg.jsonc {
			data = jsonc.ToJSON(data)
		}

		docs, err := dec.LoadStream(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		for i, doc := range docs {
			if common.IsMultiple(files) || common.IsMultiple(docs) {
				fmt.Fprintf(stdout, "# %s document %d\n", name, i)
			}

			dumper.Fdump(stdout, doc)
		}

		if cfg.verbose {
			diags := dec.Diagnostics()
			for _, list := range [][]diagnostic.Diagnostic{diags.Warnings, diags.Infos} {
				for _, diag := range list {
					fmt.Fprintf(stderr, "%s: %s: %s\n", name, diag.Severity, diag)
				}
			}

			total.Merge(diags)
		}
	}

	if cfg.verbose {
		fmt.Fprintf(stderr, "%d warning(s), %d info(s)\n", len(total.Warnings), len(total.Infos))
	}

	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}
