// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
	"testing"
)

var identity = func(s string) string { return s }

func TestMarkdownRenderer(t *testing.T) {
	p := Parser{Renderer: MarkdownRenderer{}, EscapeURL: identity}
	var tests = []struct {
		in  string
		out string
	}{
		{"plain text", "plain text"},
		{"_a_ __b__", "*a* **b**"},
		{"~~s~~", "~~s~~"},
		{"`a`", "`a`"},
		{"``a ` b``", "``a ` b``"},
		{"`` `a ``", "`` `a ``"},
		{"[a](/u)", "[a](/u)"},
		{"[a](</u>)", "[a](/u)"},
		{`[a](/u "t")`, `[a](/u "t")`},
		{`[a](/u 'say "hi"')`, `[a](/u 'say "hi"')`},
		{"![i](/p.png)", "![i](/p.png)"},
		{"<http://x>", "[http://x](http://x)"},
		{`\*not\*`, `\*not\*`},
		{"a\\\nb", "a\\\nb"},
		{"a  \nb", "a\\\nb"},
		{"<b>x</b>", "<b>x</b>"},
		{"[x]", `\[x\]`},
	}
	for _, tt := range tests {
		if out := p.Render(tt.in, nil); out != tt.out {
			t.Errorf("Render(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestMarkdownRoundTrip(t *testing.T) {
	// Reformatting is idempotent.
	p := Parser{Renderer: MarkdownRenderer{}, EscapeURL: identity}
	inputs := []string{
		"_a_ and __b__ and `c`",
		"**a *b* c** [l *x*](/u \"t\")",
		"x\\*y <i>z</i>",
		"``a`b``",
		"` `",
	}
	for _, in := range inputs {
		once := p.Render(in, nil)
		twice := p.Render(once, nil)
		if once != twice {
			t.Errorf("Render(%q) = %q, but Render(%q) = %q", in, once, once, twice)
		}
	}
}

func TestCodespanTicks(t *testing.T) {
	var r MarkdownRenderer
	var tests = []struct {
		code string
		out  string
	}{
		{"a", "`a`"},
		{"a`b", "``a`b``"},
		{"`", "`` ` ``"},
		{"", "` `"},
		{strings.Repeat("`", 70), strings.Repeat("`", 71) + " " + strings.Repeat("`", 70) + " " + strings.Repeat("`", 71)},
	}
	for _, tt := range tests {
		if out := r.Codespan(tt.code); out != tt.out {
			t.Errorf("Codespan(%q) = %q, want %q", tt.code, out, tt.out)
		}
	}
}

func TestPlainText(t *testing.T) {
	st := NewState()
	st.DefineFootnote("n")
	var p Parser
	list := p.Parse("**a** [b *c*](/u) ![alt <b>x</b>](/i) `d` <i>e</i>[^n]", st)
	want := "a b c alt x d e[1]"
	if out := PlainText(list); out != want {
		t.Errorf("PlainText = %q, want %q", out, want)
	}
}

func TestDump(t *testing.T) {
	var p Parser
	out := Dump(p.Parse("**a *b***", nil))
	want := "Strong\n  Text \"a \"\n  Emphasis\n    Text \"b\"\n"
	if out != want {
		t.Errorf("Dump:\nhave %q\nwant %q", out, want)
	}
}
