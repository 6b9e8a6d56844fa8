// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// scanAll returns the matches of a whole scan, as "rule:text" strings.
func scanAll(rs *RuleSet, s string) []string {
	var list []string
	for sc := rs.Scan(s); sc.Scan(); {
		m := sc.Match()
		list = append(list, m.Rule+":"+m.Text)
	}
	return list
}

func testRuleSet(t *testing.T, rules ...[2]string) *RuleSet {
	t.Helper()
	var list []*Rule
	for _, r := range rules {
		rule, err := CompileRule(r[0], r[1])
		if err != nil {
			t.Fatal(err)
		}
		list = append(list, rule)
	}
	rs, err := NewRuleSet(list...)
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestScan(t *testing.T) {
	rs := testRuleSet(t,
		[2]string{"word", `[a-z]+`},
		[2]string{"num", `[0-9]+`},
		[2]string{"alnum", `[a-z0-9]+`},
	)
	var tests = []struct {
		in  string
		out []string
	}{
		{"", nil},
		{"   ", []string{"text:   "}},
		{"abc", []string{"word:abc"}},
		{"  abc  ", []string{"text:  ", "word:abc", "text:  "}},
		{"abc 123", []string{"word:abc", "text: ", "num:123"}},
		// word and alnum both match at 0; word is listed first.
		{"ab12", []string{"word:ab", "num:12"}},
		{"12ab", []string{"num:12", "word:ab"}},
		{"é1", []string{"text:é", "num:1"}},
	}
	for _, tt := range tests {
		out := scanAll(rs, tt.in)
		if diff := cmp.Diff(tt.out, out); diff != "" {
			t.Errorf("scan %q: (-want +got)\n%s", tt.in, diff)
		}
	}
}

func TestScanPriority(t *testing.T) {
	// Earliest start wins even over an earlier-listed rule.
	rs := testRuleSet(t,
		[2]string{"late", `b+`},
		[2]string{"early", `a+`},
	)
	want := []string{"early:aa", "late:bb"}
	if diff := cmp.Diff(want, scanAll(rs, "aabb")); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	// Reordering the same rules changes which one wins a tie.
	a := testRuleSet(t, [2]string{"x", `ab`}, [2]string{"y", `a`})
	b := testRuleSet(t, [2]string{"y", `a`}, [2]string{"x", `ab`})
	if have := scanAll(a, "ab"); !cmp.Equal(have, []string{"x:ab"}) {
		t.Errorf("x first: %q", have)
	}
	if have := scanAll(b, "ab"); !cmp.Equal(have, []string{"y:a", "text:b"}) {
		t.Errorf("y first: %q", have)
	}
}

func TestScanLookbehind(t *testing.T) {
	// A match found from a later cursor must still see the text before it.
	rs := testRuleSet(t, [2]string{"x", `(?<!\\)x`})
	want := []string{"text:\\x", "x:x"}
	if diff := cmp.Diff(want, scanAll(rs, `\xx`)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestScanEmptyMatch(t *testing.T) {
	// Empty matches would never advance the cursor; they are skipped.
	rs := testRuleSet(t, [2]string{"opt", `a*`})
	want := []string{"text:bb", "opt:aa", "text:b"}
	if diff := cmp.Diff(want, scanAll(rs, "bbaab")); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestScanCoverage(t *testing.T) {
	inputs := []string{
		"plain",
		"**a *b* c** [x](y) `z` <b> \\* ~~s~~ [^n] <http://x>",
		"\xff\xfe*a*\xff",
		"ü*ü*ü",
		"a  \nb\\\nc",
	}
	for _, in := range inputs {
		var b strings.Builder
		end := 0
		for sc := DefaultRules.Scan(in); sc.Scan(); {
			m := sc.Match()
			if m.Start != end {
				t.Errorf("scan %q: match %q starts at %d, want %d", in, m.Text, m.Start, end)
			}
			if in[m.Start:m.End] != m.Text {
				t.Errorf("scan %q: match text %q != input[%d:%d] %q", in, m.Text, m.Start, m.End, in[m.Start:m.End])
			}
			end = m.End
			b.WriteString(m.Text)
		}
		if b.String() != in {
			t.Errorf("scan %q: reassembled %q", in, b.String())
		}
	}
}

func TestMatchGroup(t *testing.T) {
	rs := testRuleSet(t, [2]string{"pair", `(a)(b)?(c)`})
	sc := rs.Scan("xac")
	sc.Scan()
	sc.Scan()
	m := sc.Match()
	if m.Rule != "pair" || m.Start != 1 || m.End != 3 {
		t.Fatalf("match = %+v", m)
	}
	var tests = []struct {
		n    int
		text string
		ok   bool
	}{
		{0, "ac", true},
		{1, "a", true},
		{2, "", false},
		{3, "c", true},
		{4, "", false},
		{-1, "", false},
	}
	for _, tt := range tests {
		text, ok := m.Group(tt.n)
		if text != tt.text || ok != tt.ok {
			t.Errorf("Group(%d) = %q, %v, want %q, %v", tt.n, text, ok, tt.text, tt.ok)
		}
	}
}

func TestRuleErrors(t *testing.T) {
	if _, err := CompileRule("", "a"); err == nil {
		t.Errorf("CompileRule with empty name succeeded")
	}
	if _, err := CompileRule(TextRule, "a"); err == nil {
		t.Errorf("CompileRule with reserved name succeeded")
	}
	if _, err := CompileRule("bad", "(a"); err == nil || !strings.Contains(err.Error(), "rule bad") {
		t.Errorf("CompileRule with bad pattern: err = %v", err)
	}

	a := MustCompileRule("a", "a")
	if _, err := NewRuleSet(a, MustCompileRule("a", "b")); err == nil {
		t.Errorf("NewRuleSet with duplicate names succeeded")
	}
	if _, err := NewRuleSet(a, nil); err == nil {
		t.Errorf("NewRuleSet with nil rule succeeded")
	}
	if _, err := NewRuleSet(a, &Rule{Name: "raw", Expr: "x"}); err == nil {
		t.Errorf("NewRuleSet with uncompiled rule succeeded")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustCompileRule with bad pattern did not panic")
		}
	}()
	MustCompileRule("bad", "[")
}

func TestSubset(t *testing.T) {
	sub, err := DefaultRules.Subset(RuleCodespan, RuleEscape, RuleStrong)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{RuleEscape, RuleStrong, RuleCodespan}
	if diff := cmp.Diff(want, sub.Names()); diff != "" {
		t.Errorf("Subset names (-want +got)\n%s", diff)
	}
	if sub.Len() != 3 || !sub.Has(RuleStrong) || sub.Has(RuleEmphasis) {
		t.Errorf("Subset = %v", sub.Names())
	}
	if _, err := DefaultRules.Subset("nonesuch"); err == nil {
		t.Errorf("Subset with unknown name succeeded")
	}
}

func TestDefaultRules(t *testing.T) {
	want := []string{
		RuleEscape, RuleInlineHTML, RuleAutoLink, RuleFootnote,
		RuleStdLink, RuleRefLink, RuleRefLink2,
		RuleStrong, RuleEmphasis, RuleCodespan, RuleStrikethrough, RuleLinebreak,
	}
	if diff := cmp.Diff(want, DefaultRules.Names()); diff != "" {
		t.Errorf("DefaultRules (-want +got)\n%s", diff)
	}
}

func TestRuleTimeout(t *testing.T) {
	r, err := CompileRuleTimeout("slow", `(x+x+)+y`, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	rs, err := NewRuleSet(r, MustCompileRule("z", `z`))
	if err != nil {
		t.Fatal(err)
	}
	// Whether the pattern fails or runs out of time, the scan goes on.
	in := strings.Repeat("x", 40) + "z"
	want := []string{"text:" + strings.Repeat("x", 40), "z:z"}
	if diff := cmp.Diff(want, scanAll(rs, in)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}
