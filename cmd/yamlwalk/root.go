// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	yaml "github.com/yamlcore/yaml"
)

// options holds the resolved settings for one run.
type options struct {
	maxDepth   int
	format     string
	configFile string
}

// NewRootCmd builds the yamlwalk command. It has no subcommands: unlike a
// tool such as ytt, there is exactly one thing to do here, so a single
// Cobra command with flags is all the framework is asked to provide.
func NewRootCmd() *cobra.Command {
	opts := &options{maxDepth: -1, format: "text"}

	cmd := &cobra.Command{
		Use:   "yamlwalk <file>",
		Short: "Walk a YAML document's node tree and print its structure",
		Long: `yamlwalk opens a file (or - for stdin), decodes every document in it,
and prints the resulting node tree: kind, resolved type, and value, one
line per node.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], opts)
		},
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", -1, "stop descending into nested collections past this depth (-1 = unlimited)")
	cmd.Flags().StringVar(&opts.format, "format", "text", `output format: "text" or "json"`)
	cmd.Flags().StringVar(&opts.configFile, "config", "", "TOML file providing defaults for --max-depth and --format")

	return cmd
}

// run resolves config-file defaults against explicit flags, opens path, and
// walks every document in it.
func run(cmd *cobra.Command, path string, opts *options) error {
	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("max-depth") && cfg.MaxDepth != 0 {
		opts.maxDepth = cfg.MaxDepth
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		opts.format = cfg.Format
	}
	if opts.format != "text" && opts.format != "json" {
		return errors.Errorf("unrecognized --format %q, want text or json", opts.format)
	}

	var input io.Reader
	if path == "-" {
		input = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "while opening %s", path)
		}
		defer f.Close()
		input = f
	}

	parser := yaml.OpenReader(input)
	defer parser.Close()

	var documents [][]entry
	for n := 0; ; n++ {
		doc, err := parser.NextDocument()
		if err != nil {
			logParseError(path, n, err)
			return errors.Wrapf(err, "while parsing document %d of %s", n, path)
		}
		if doc == nil {
			break
		}
		var entries []entry
		if err := walk(doc, 0, opts.maxDepth, &entries); err != nil {
			return errors.Wrapf(err, "while walking document %d of %s", n, path)
		}
		documents = append(documents, entries)
	}

	if opts.format == "json" {
		return printJSON(cmd.OutOrStdout(), documents)
	}
	for i, entries := range documents {
		if len(documents) > 1 {
			cmd.Printf("--- document %d ---\n", i)
		}
		if err := printText(cmd.OutOrStdout(), entries); err != nil {
			return err
		}
	}
	return nil
}

// logParseError prints the structured kind and mark of a parse failure,
// the one place in this repository that reaches for the standard log
// package rather than returning the error up the call stack untouched.
func logParseError(path string, doc int, err error) {
	if kind, mark, ok := yaml.Diagnose(err); ok {
		log.Printf("%s: document %d: %s at %s", path, doc, kind, mark)
		return
	}
	log.Printf("%s: document %d: %v", path, doc, err)
}
