// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// htmldiff compares two HTML files and writes the new file with insertions and deletions marked up
// to standard output.
//
// Usage:
//
//	htmldiff [flags] OLD NEW
//
// Either OLD or NEW may be "-" to read from standard input. Options can also be stored in a TOML
// file passed with --config, flags take precedence over the file:
//
//	word_runes = "_"
//	always_wrap = ["img", "video"]
//	coalesce = true
//
//	[insert]
//	open = '<ins class="diff">'
//	close = "</ins>"
//
//	[delete]
//	open = '<del class="diff">'
//	close = "</del>"
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"znkr.io/htmldiff"
	"znkr.io/htmldiff/internal/byteview"
	"znkr.io/htmldiff/internal/htmltok"
	"znkr.io/htmldiff/ses"
)

type options struct {
	config     string
	format     string
	color      string
	encoding   string
	wordRunes  string
	alwaysWrap []string
	coalesce   bool
	stats      bool
	verbose    bool

	// Markers from the config file, nil means default.
	insert, delete *marker
}

func main() {
	if err := newCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "htmldiff [flags] OLD NEW",
		Short: "Compare two HTML documents",
		Long: `htmldiff compares two HTML documents and writes the new document to standard output
with inserted content wrapped in <ins> and deleted content wrapped in <del>.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected 2 arguments, got %d\nusage: %s", len(args), cmd.UseLine())
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config != "" {
				if err := loadConfig(opts.config, &opts, cmd.Flags().Changed); err != nil {
					return err
				}
			}
			return run(&opts, args[0], args[1], stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "TOML `file` with diff options")
	flags.StringVar(&opts.format, "format", "html", "output format (html|ansi)")
	flags.StringVar(&opts.color, "color", "auto", "colorize ansi output (auto|on|off)")
	flags.StringVar(&opts.encoding, "encoding", "utf-8", "character encoding of the inputs, or auto to detect it")
	flags.StringVar(&opts.wordRunes, "word-runes", "", "additional characters that are part of words")
	flags.StringSliceVar(&opts.alwaysWrap, "always-wrap", []string{"img"}, "elements that are marked up like text when inserted or deleted")
	flags.BoolVar(&opts.coalesce, "coalesce", false, "use one marker for consecutive insertions or deletions")
	flags.BoolVar(&opts.stats, "stats", false, "print token and edit counts to standard error")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func run(opts *options, oldPath, newPath string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, opts.verbose)
	for _, name := range htmltok.NewTagSet(opts.alwaysWrap...).Unknown() {
		logger.Warn("unknown element in always-wrap set", "name", name)
	}

	decode, err := newDecoder(opts.encoding, logger)
	if err != nil {
		return err
	}
	renderOpts, err := opts.renderOptions(stdout)
	if err != nil {
		return err
	}

	start := time.Now()
	docs, err := readInputs(stdin, [2]string{oldPath, newPath}, decode)
	if err != nil {
		return err
	}
	logger.Debug("read inputs", "old_bytes", len(docs[0]), "new_bytes", len(docs[1]), "elapsed", time.Since(start))

	start = time.Now()
	wordRunes := htmldiff.WordRunes(opts.wordRunes)
	x := htmldiff.Tokenize(byteview.From(docs[0]).String(), wordRunes)
	y := htmldiff.Tokenize(byteview.From(docs[1]).String(), wordRunes)
	script := ses.Align(x, y)
	distance := ses.Distance(script)
	logger.Debug("aligned", "old_tokens", len(x), "new_tokens", len(y), "distance", distance, "elapsed", time.Since(start))

	bw := bufio.NewWriter(stdout)
	htmldiff.Render(x, y, script, func(s string) { bw.WriteString(s) }, renderOpts...)
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if opts.stats {
		fmt.Fprintf(stderr, "%d old tokens, %d new tokens, %d edits\n", len(x), len(y), distance)
	}
	return nil
}

func (opts *options) renderOptions(stdout io.Writer) ([]htmldiff.Option, error) {
	renderOpts := []htmldiff.Option{htmldiff.AlwaysWrap(opts.alwaysWrap...)}
	if opts.coalesce {
		renderOpts = append(renderOpts, htmldiff.Coalesce())
	}
	switch opts.format {
	case "html":
		if opts.insert != nil {
			renderOpts = append(renderOpts, htmldiff.Insertions(opts.insert.Open, opts.insert.Close))
		}
		if opts.delete != nil {
			renderOpts = append(renderOpts, htmldiff.Deletions(opts.delete.Open, opts.delete.Close))
		}
	case "ansi":
		enabled, err := colorEnabled(opts.color, stdout)
		if err != nil {
			return nil, err
		}
		ins, del := ansiMarkers(enabled)
		renderOpts = append(renderOpts,
			htmldiff.Insertions(ins.Open, ins.Close),
			htmldiff.Deletions(del.Open, del.Close),
		)
	default:
		return nil, fmt.Errorf("unknown format %q, want html or ansi", opts.format)
	}
	return renderOpts, nil
}
