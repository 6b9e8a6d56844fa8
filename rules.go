// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

// Names of the built-in inline rules, in priority order.
const (
	RuleEscape        = "escape"
	RuleInlineHTML    = "inline_html"
	RuleAutoLink      = "auto_link"
	RuleFootnote      = "footnote"
	RuleStdLink       = "std_link"
	RuleRefLink       = "ref_link"
	RuleRefLink2      = "ref_link2"
	RuleStrong        = "strong"
	RuleEmphasis      = "emphasis"
	RuleCodespan      = "codespan"
	RuleStrikethrough = "strikethrough"
	RuleLinebreak     = "linebreak"
)

// Pattern building blocks.
// The patterns use regexp2 syntax: an escaped word character such as \_
// is a syntax error there, so underscores are never escaped.
const (
	punctuation = `\\!"#$%&'()*+,./:;<=>?@\[\]^` + "`" + `{}|_~-`
	escapeExpr  = `\\[` + punctuation + `]`

	htmlTagName    = `[A-Za-z][A-Za-z0-9-]*`
	htmlAttributes = `(?:\s+[A-Za-z_:][A-Za-z0-9_.:-]*` +
		`(?:\s*=\s*(?:[^ "'=<>` + "`" + `]+|'[^']*?'|"[^"]*?"))?)*`

	// linkLabel captures the text of [text], allowing one level of
	// nested brackets, escaped brackets, and code spans inside.
	linkLabel = `\[((?:\[[^\[\]]*\]|\\[\[\]]?|` + "`[^`]*`" + `|[^\[\]\\])*?)\]`
)

// Rule patterns.
const (
	// \*
	exprEscape = escapeExpr

	// <span class="x">, </span>, <!-- comment -->, <?pi?>, <!DOCTYPE x>, <![CDATA[x]]>
	exprInlineHTML = `(?<!\\)<` + htmlTagName + htmlAttributes + `\s*/?>|` +
		`(?<!\\)</` + htmlTagName + `\s*>|` +
		`(?<!\\)<!--(?!>|->)(?:(?!--)[\s\S])+?(?<!-)-->|` +
		`(?<!\\)<\?[\s\S]+?\?>|` +
		`(?<!\\)<![A-Z][\s\S]+?>|` +
		`(?<!\\)<!\[CDATA[\s\S]+?\]\]>`

	// <https://example.com> or <user@example.com>
	exprAutoLink = `(?<!\\)(?:\\\\)*<([A-Za-z][A-Za-z0-9+.-]{1,31}:` +
		`[^ <>]*?|[A-Za-z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[A-Za-z0-9]` +
		`(?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?` +
		`(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*)>`

	// [^key]
	exprFootnote = `\[\^([^\]]+)\]`

	// [text](/url "title") or ![alt](/src "title")
	exprStdLink = `!?` + linkLabel + `\(\s*` +
		`(<(?:\\[<>]?|[^\s<>\\])*>|` +
		`(?:\\[()]?|\([^\s\x00-\x1f\\]*\)|[^\s\x00-\x1f()\\])*?)` +
		`(?:\s+(` +
		`"(?:\\"?|[^"\\])*"|'(?:\\'?|[^'\\])*'|\((?:\\\)?|[^)\\])*\)` +
		`))?\s*\)`

	// [text][key] or [text][]
	exprRefLink = `!?` + linkLabel + `\[((?:[^\\\[\]]|` + escapeExpr + `){0,1000})\]`

	// [key]
	exprRefLink2 = `!?\[((?:[^\\\[\]]|` + escapeExpr + `){0,1000})\]`

	// **text** or __text__
	exprStrong = `\b__[^\s_]__(?!_)\b|` +
		`\*\*[^\s*]\*\*(?!\*)|` +
		`\b__[^\s][\s\S]*?[^\s]__(?!_)\b|` +
		`\*\*[^\s][\s\S]*?[^\s]\*\*(?!\*)`

	// *text* or _text_
	exprEmphasis = `\b_[^\s_](?:(?<=\\)_)?_|` +
		`\*[^\s*](?:(?<=\\)\*)?\*|` +
		`\b_[^\s_][\s\S]*?[^\s_]_(?!_|[^\s` + punctuation + `])\b|` +
		`\*[^\s*"<\[][\s\S]*?[^\s*]\*`

	// `code`, ``code with ` inside``
	exprCodespan = "(?<!\\\\|`)(?:\\\\\\\\)*(`+)(?!`)([\\s\\S]+?)(?<!`)\\1(?!`)"

	// ~~text~~
	exprStrikethrough = `~~(?=\S)([\s\S]*?\S)~~`

	// backslash or two spaces before a newline that does not end the text
	exprLinebreak = `(?:\\| {2,})\n(?!\s*$)`
)

// DefaultRules is the full inline rule set, in priority order.
var DefaultRules = mustRuleSet(
	MustCompileRule(RuleEscape, exprEscape),
	MustCompileRule(RuleInlineHTML, exprInlineHTML),
	MustCompileRule(RuleAutoLink, exprAutoLink),
	MustCompileRule(RuleFootnote, exprFootnote),
	MustCompileRule(RuleStdLink, exprStdLink),
	MustCompileRule(RuleRefLink, exprRefLink),
	MustCompileRule(RuleRefLink2, exprRefLink2),
	MustCompileRule(RuleStrong, exprStrong),
	MustCompileRule(RuleEmphasis, exprEmphasis),
	MustCompileRule(RuleCodespan, exprCodespan),
	MustCompileRule(RuleStrikethrough, exprStrikethrough),
	MustCompileRule(RuleLinebreak, exprLinebreak),
)

func mustRuleSet(rules ...*Rule) *RuleSet {
	rs, err := NewRuleSet(rules...)
	if err != nil {
		panic(err)
	}
	return rs
}
