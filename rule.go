// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"errors"
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// TextRule is the rule name reported for a [Match] covering
// text that no rule matched.
const TextRule = "text"

// A Rule is a named, compiled inline pattern.
// Rules are immutable once compiled and may be shared
// by any number of concurrent scans.
type Rule struct {
	Name string
	Expr string

	re *regexp2.Regexp
}

// CompileRule compiles expr as the pattern for the rule name.
// The pattern syntax is that of [regexp2], which (unlike package regexp)
// supports lookbehind, lookahead, and backreferences.
func CompileRule(name, expr string) (*Rule, error) {
	return CompileRuleTimeout(name, expr, 0)
}

// CompileRuleTimeout is like [CompileRule] but bounds the time a single
// evaluation of the pattern may take. A pattern that runs out of time
// is treated as not matching for the rest of that scan.
// A timeout of zero means no limit.
func CompileRuleTimeout(name, expr string, timeout time.Duration) (*Rule, error) {
	if name == "" {
		return nil, errors.New("inline: rule has empty name")
	}
	if name == TextRule {
		return nil, fmt.Errorf("inline: rule name %q is reserved", name)
	}
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("inline: rule %s: %w", name, err)
	}
	if timeout > 0 {
		re.MatchTimeout = timeout
	}
	return &Rule{Name: name, Expr: expr, re: re}, nil
}

// MustCompileRule is like [CompileRule] but panics if the pattern
// cannot be compiled. It is meant for package-level rule tables.
func MustCompileRule(name, expr string) *Rule {
	r, err := CompileRule(name, expr)
	if err != nil {
		panic(err)
	}
	return r
}

// A RuleSet is an ordered list of rules.
// When two rules match at the same offset, the one listed first wins.
type RuleSet struct {
	rules []*Rule
}

// NewRuleSet returns a rule set holding rules in the given priority order.
func NewRuleSet(rules ...*Rule) (*RuleSet, error) {
	seen := make(map[string]bool)
	for _, r := range rules {
		if r == nil || r.re == nil {
			return nil, errors.New("inline: uncompiled rule in rule set")
		}
		if seen[r.Name] {
			return nil, fmt.Errorf("inline: duplicate rule %s", r.Name)
		}
		seen[r.Name] = true
	}
	return &RuleSet{rules: append([]*Rule(nil), rules...)}, nil
}

// Subset returns the rule set restricted to the named rules.
// The rules keep their relative order in rs, whatever the order of names.
func (rs *RuleSet) Subset(names ...string) (*RuleSet, error) {
	want := make(map[string]bool)
	for _, name := range names {
		if !rs.Has(name) {
			return nil, fmt.Errorf("inline: unknown rule %s", name)
		}
		want[name] = true
	}
	var list []*Rule
	for _, r := range rs.rules {
		if want[r.Name] {
			list = append(list, r)
		}
	}
	return &RuleSet{rules: list}, nil
}

// Has reports whether rs contains a rule with the given name.
func (rs *RuleSet) Has(name string) bool {
	for _, r := range rs.rules {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Names returns the rule names in priority order.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.rules))
	for i, r := range rs.rules {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of rules in rs.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// A Match is one step of a scan: either a rule match
// or a run of text between rule matches (Rule == [TextRule]).
// Start and End are byte offsets into the scanned string.
type Match struct {
	Rule  string
	Start int
	End   int
	Text  string

	src    string
	groups [][2]int // byte offsets of capture groups; -1 if unmatched
}

// Group returns the text of capture group n
// and whether that group participated in the match.
// Group 0 is the whole match.
func (m *Match) Group(n int) (string, bool) {
	if n == 0 {
		return m.Text, true
	}
	if n < 0 || n >= len(m.groups) || m.groups[n][0] < 0 {
		return "", false
	}
	g := m.groups[n]
	return m.src[g[0]:g[1]], true
}

// A Scanner walks a string, yielding the earliest rule match at
// each step and the unmatched text between matches.
// A Scanner is forward-only; scanning again requires a new Scanner.
type Scanner struct {
	rules []*Rule
	src   string
	runes []rune
	offs  []int // offs[i] is the byte offset of runes[i]; offs[len(runes)] == len(src)
	pos   int   // cursor, as a rune index

	next []*regexp2.Match // cached next match per rule
	done []bool           // rule cannot match again in this scan

	m       *Match
	pending *Match // rule match to return after the text before it
}

// Scan returns a new [Scanner] for s.
func (rs *RuleSet) Scan(s string) *Scanner {
	sc := &Scanner{
		rules: rs.rules,
		src:   s,
		runes: make([]rune, 0, len(s)),
		offs:  make([]int, 0, len(s)+1),
		next:  make([]*regexp2.Match, len(rs.rules)),
		done:  make([]bool, len(rs.rules)),
	}
	// Ranging over the string (rather than converting with []rune)
	// keeps the byte offset of every rune, including invalid bytes,
	// which decode as one RuneError each.
	for i, r := range s {
		sc.runes = append(sc.runes, r)
		sc.offs = append(sc.offs, i)
	}
	sc.offs = append(sc.offs, len(s))
	return sc
}

// Scan advances to the next match, reporting whether there is one.
func (sc *Scanner) Scan() bool {
	if sc.pending != nil {
		sc.m, sc.pending = sc.pending, nil
		return true
	}
	if sc.pos >= len(sc.runes) {
		sc.m = nil
		return false
	}

	best := -1
	var bm *regexp2.Match
	for i := range sc.rules {
		m := sc.nextMatch(i)
		if m == nil {
			continue
		}
		// Strictly earlier wins; at equal offsets the earlier rule stays.
		if bm == nil || m.Index < bm.Index {
			best, bm = i, m
		}
	}
	if bm == nil {
		sc.m = sc.text(sc.pos, len(sc.runes))
		sc.pos = len(sc.runes)
		return true
	}

	match := sc.match(sc.rules[best], bm)
	if bm.Index > sc.pos {
		sc.m = sc.text(sc.pos, bm.Index)
		sc.pending = match
	} else {
		sc.m = match
	}
	sc.pos = bm.Index + bm.Length
	return true
}

// Match returns the most recent match found by Scan.
func (sc *Scanner) Match() *Match {
	return sc.m
}

// nextMatch returns the first non-empty match of rule i
// starting at or after the cursor, or nil if there is none.
func (sc *Scanner) nextMatch(i int) *regexp2.Match {
	if sc.done[i] {
		return nil
	}
	// A match found from an earlier cursor is still the first
	// match at or after the current one if it starts there.
	if m := sc.next[i]; m != nil && m.Index >= sc.pos {
		return m
	}
	for start := sc.pos; start < len(sc.runes); {
		m, err := sc.rules[i].re.FindRunesMatchStartingAt(sc.runes, start)
		if err != nil || m == nil {
			break
		}
		if m.Length == 0 {
			start = m.Index + 1
			continue
		}
		sc.next[i] = m
		return m
	}
	sc.next[i] = nil
	sc.done[i] = true
	return nil
}

// text returns a TextRule match for runes[i:j].
func (sc *Scanner) text(i, j int) *Match {
	start, end := sc.offs[i], sc.offs[j]
	return &Match{
		Rule:   TextRule,
		Start:  start,
		End:    end,
		Text:   sc.src[start:end],
		src:    sc.src,
		groups: [][2]int{{start, end}},
	}
}

// match converts a regexp2 match into a Match for rule r.
func (sc *Scanner) match(r *Rule, rm *regexp2.Match) *Match {
	start, end := sc.offs[rm.Index], sc.offs[rm.Index+rm.Length]
	m := &Match{
		Rule:  r.Name,
		Start: start,
		End:   end,
		Text:  sc.src[start:end],
		src:   sc.src,
	}
	nums := r.re.GetGroupNumbers()
	top := 0
	for _, n := range nums {
		top = max(top, n)
	}
	m.groups = make([][2]int, top+1)
	for i := range m.groups {
		m.groups[i] = [2]int{-1, -1}
	}
	for _, n := range nums {
		g := rm.GroupByNumber(n)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		m.groups[n] = [2]int{sc.offs[g.Index], sc.offs[g.Index+g.Length]}
	}
	return m
}
