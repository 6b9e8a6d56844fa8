// Copyright 2021 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Inlinefmt reformats inline Markdown.
//
// Usage:
//
//	inlinefmt [-w] [-v] [file...]
//
// Inlinefmt reads the named files, or else standard input,
// and reprints them with every paragraph's inline Markdown normalized:
// emphasis with *, strong emphasis with **, code spans with the fewest
// backticks possible, and stray punctuation escaped.
// Reference links and footnote references cannot be resolved without
// their definitions, so their brackets are escaped and they read back
// as the literal text they rendered as.
//
// The -w flag specifies to rewrite the files in place.
package main

import (
	"io"
	"os"
	"strings"

	"github.com/inlinemd/inline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var exit = 0

func main() {
	var wflag, verbose bool
	flags := pflag.NewFlagSet("inlinefmt", pflag.ExitOnError)
	flags.BoolVarP(&wflag, "write", "w", false, "write reformatted Markdown to files")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if flags.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot read standard input")
		}
		os.Stdout.WriteString(format(string(data)))
		os.Exit(exit)
	}
	for _, file := range flags.Args() {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Error().Err(err).Msg("cannot read file")
			exit = 1
			continue
		}
		out := format(string(data))
		if !wflag {
			os.Stdout.WriteString(out)
			continue
		}
		if out == string(data) {
			log.Debug().Str("file", file).Msg("unchanged")
			continue
		}
		if err := os.WriteFile(file, []byte(out), 0666); err != nil {
			log.Error().Err(err).Msg("cannot write file")
			exit = 1
			continue
		}
		log.Debug().Str("file", file).Msg("rewritten")
	}
	os.Exit(exit)
}

// fmtParser re-prints Markdown, keeping link destinations as written.
var fmtParser = inline.Parser{
	Renderer:  inline.MarkdownRenderer{},
	EscapeURL: func(s string) string { return s },
}

// format reformats the paragraphs of text, keeping the blank lines between them.
func format(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	var para []string
	flush := func() {
		if len(para) == 0 {
			return
		}
		s := strings.Join(para, "")
		nl := strings.HasSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\n")
		b.WriteString(fmtParser.Render(s, inline.NewState()))
		if nl {
			b.WriteString("\n")
		}
		para = para[:0]
	}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			flush()
			b.WriteString(line)
			continue
		}
		para = append(para, line)
	}
	flush()
	return b.String()
}
