// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// knownRule reports whether the parser has an action for the rule name.
func knownRule(name string) bool {
	switch name {
	case RuleEscape, RuleInlineHTML, RuleAutoLink, RuleFootnote,
		RuleStdLink, RuleRefLink, RuleRefLink2,
		RuleStrong, RuleEmphasis, RuleCodespan, RuleStrikethrough, RuleLinebreak,
		TextRule:
		return true
	}
	return false
}

// act converts the match m into a token.
// A match of a rule with no action (only possible for a Parser
// built without NewParser) is kept as literal text.
func (p *Parser) act(st *State, m *Match) Token {
	switch m.Rule {
	case RuleEscape:
		return parseEscape(m)
	case RuleInlineHTML:
		return &InlineHTML{m.Text}
	case RuleAutoLink:
		return p.parseAutoLink(m)
	case RuleFootnote:
		return parseFootnote(st, m)
	case RuleStdLink:
		return p.parseStdLink(st, m)
	case RuleRefLink, RuleRefLink2:
		return p.parseRefLink(st, m)
	case RuleStrong:
		return &Strong{p.inner(st, strip(m.Text, 2))}
	case RuleEmphasis:
		return &Emphasis{p.inner(st, strip(m.Text, 1))}
	case RuleCodespan:
		return parseCodespan(m)
	case RuleStrikethrough:
		text, _ := m.Group(1)
		return &Strikethrough{p.inner(st, text)}
	case RuleLinebreak:
		return &Linebreak{}
	}
	return &Text{m.Text}
}

// parseEscape strips the backslash from an escaped punctuation character.
func parseEscape(m *Match) Token {
	return &Text{m.Text[1:]}
}

// strip removes n bytes of delimiter from each end of s.
func strip(s string, n int) string {
	if len(s) < 2*n {
		return ""
	}
	return s[n : len(s)-n]
}
