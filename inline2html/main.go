// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Inline2html converts the inline Markdown of text paragraphs to HTML.
//
// Usage:
//
//	inline2html [-f html|tree|text] [-d defs.yaml] [-j n] [-w width] [-v] [file...]
//
// Inline2html reads the named files, or else standard input, splits each
// into paragraphs at blank lines, and prints the inline Markdown of every
// paragraph to standard output. Block structure is not interpreted.
//
// The -f flag selects the output: html (the default) prints one <p>
// element per paragraph, tree prints the token tree of each paragraph,
// and text prints the visible text, wrapped to the -w width
// (by default the width of the terminal).
//
// The -d flag names a YAML file of link reference definitions
// and footnote keys:
//
//	links:
//	  go:
//	    url: https://go.dev/
//	    title: The Go Programming Language
//	footnotes: [1, note]
//
// Files are converted concurrently, at most -j at a time,
// and printed in the order given.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/inlinemd/inline"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const defaultWidth = 80

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// config is the command configuration, filled in from flags.
type config struct {
	format  string
	defs    *defs
	width   int
	jobs    int
	verbose bool
}

// defs is the format of the -d file.
type defs struct {
	Links map[string]struct {
		URL   string `yaml:"url"`
		Title string `yaml:"title"`
	} `yaml:"links"`
	Footnotes []string `yaml:"footnotes"`
}

func main() {
	var (
		cfg      config
		defsFile string
	)
	flags := pflag.NewFlagSet("inline2html", pflag.ExitOnError)
	flags.StringVarP(&cfg.format, "format", "f", "html", "Output format: html|tree|text")
	flags.StringVarP(&defsFile, "defs", "d", "", "YAML file of link and footnote definitions")
	flags.IntVarP(&cfg.width, "width", "w", 0, "Text output width (0 uses terminal width if available)")
	flags.IntVarP(&cfg.jobs, "jobs", "j", 4, "Files to convert at once")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Log debug output")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: inline2html [flags] [file...]\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch cfg.format {
	case "html", "tree", "text":
	default:
		log.Fatal().Str("format", cfg.format).Msg("unknown output format")
	}
	if cfg.format == "text" && cfg.width <= 0 {
		cfg.width = terminalWidth(defaultWidth)
	}
	if defsFile != "" {
		d, err := readDefs(defsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read definitions")
		}
		cfg.defs = d
	}

	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	if err := run(ctx, cfg, flags.Args(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("conversion failed")
	}
}

// readDefs reads the YAML definitions file.
func readDefs(file string) (*defs, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	d := new(defs)
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	log.Debug().Str("file", file).Int("links", len(d.Links)).Int("footnotes", len(d.Footnotes)).Msg("loaded definitions")
	return d, nil
}

// newState returns a State holding the definitions in d.
func newState(d *defs) *inline.State {
	st := inline.NewState()
	if d == nil {
		return st
	}
	for label, l := range d.Links {
		st.DefineLink(label, l.URL, l.Title)
	}
	for _, key := range d.Footnotes {
		st.DefineFootnote(key)
	}
	return st
}

// run converts the named files, or standard input if there are none,
// and writes the results to w in order.
func run(ctx context.Context, cfg config, files []string, w io.Writer) error {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, convert(cfg, string(data)))
		return err
	}

	out := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.jobs, 1))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			out[i] = convert(cfg, string(data))
			log.Debug().Str("file", file).Int("bytes", len(data)).Msg("converted")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, s := range out {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// convert converts one input, using a fresh State for it.
func convert(cfg config, text string) string {
	st := newState(cfg.defs)
	var p inline.Parser
	var b strings.Builder
	for _, para := range paragraphs(text) {
		switch cfg.format {
		case "html":
			b.WriteString("<p>")
			b.WriteString(p.Render(para, st))
			b.WriteString("</p>\n")
		case "tree":
			b.WriteString(inline.Dump(p.Parse(para, st)))
			b.WriteString("\n")
		case "text":
			b.WriteString(wordwrap.String(inline.PlainText(p.Parse(para, st)), cfg.width))
			b.WriteString("\n\n")
		}
	}
	if len(st.Footnotes) > 0 {
		log.Debug().Strs("footnotes", st.Footnotes).Msg("footnotes referenced")
	}
	return b.String()
}

// paragraphs splits text at blank lines,
// removing the line endings around each paragraph.
func paragraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var list []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			list = append(list, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return list
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}
