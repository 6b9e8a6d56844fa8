// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"fmt"
	"strings"
)

// DefaultMaxDepth is the nesting depth limit used when Parser.MaxDepth is zero.
const DefaultMaxDepth = 32

// A Renderer formats tokens, one method per token kind.
// Methods for tokens with inner content receive that content
// already rendered.
//
// A Renderer is the string mode of a Parser: [Parser.Render] folds each
// token through it as the token is produced. The tree mode is
// [Parser.Parse], which returns the tokens themselves; [Format]
// renders such a tree later.
type Renderer interface {
	Text(text string) string
	Link(url, text, title string) string
	Image(url, alt, title string) string
	Emphasis(text string) string
	Strong(text string) string
	Codespan(code string) string
	Strikethrough(text string) string
	Linebreak() string
	InlineHTML(html string) string
	FootnoteRef(key string, index int) string
}

// A Parser is an inline Markdown parser.
// The zero value is ready to use: it recognizes the [DefaultRules]
// and renders HTML with a zero [HTMLRenderer].
//
// A Parser must not be modified while in use, but it can be used
// by concurrent goroutines, each with its own [State].
type Parser struct {
	// Renderer is used by Render. If nil, a zero HTMLRenderer is used.
	Renderer Renderer

	// Rules is the set of recognized constructs. If nil, DefaultRules is used.
	Rules *RuleSet

	// MaxDepth limits the nesting of constructs inside constructs.
	// Inner text that would be parsed deeper than MaxDepth
	// is kept as a single literal Text token.
	// If zero, DefaultMaxDepth is used.
	MaxDepth int

	// EscapeURL escapes link, image, and autolink destinations.
	// It is called once per destination. If nil, the package EscapeURL is used.
	EscapeURL func(string) string

	// NormalizeKey normalizes reference link keys before they are
	// looked up in State.Links. If nil, the package NormalizeKey is used.
	// It must agree with the keys stored in State.Links.
	NormalizeKey func(string) string
}

// NewParser returns a Parser for the rule set rules rendering with r.
// It reports an error if some rule in rules has no meaning to the parser.
// A nil r or rules selects the default.
func NewParser(r Renderer, rules *RuleSet) (*Parser, error) {
	if rules != nil {
		for _, name := range rules.Names() {
			if !knownRule(name) {
				return nil, fmt.Errorf("inline: no action for rule %s", name)
			}
		}
	}
	return &Parser{Renderer: r, Rules: rules}, nil
}

func (p *Parser) rules() *RuleSet {
	if p.Rules == nil {
		return DefaultRules
	}
	return p.Rules
}

func (p *Parser) renderer() Renderer {
	if p.Renderer == nil {
		return &HTMLRenderer{}
	}
	return p.Renderer
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return p.MaxDepth
}

func (p *Parser) escapeURL(s string) string {
	if p.EscapeURL == nil {
		return EscapeURL(s)
	}
	return p.EscapeURL(s)
}

func (p *Parser) normalizeKey(s string) string {
	if p.NormalizeKey == nil {
		return NormalizeKey(s)
	}
	return p.NormalizeKey(s)
}

// A Stream is a lazy sequence of the tokens for one string.
// Tokens are produced one at a time as Scan is called;
// a Stream cannot be rewound.
type Stream struct {
	p   *Parser
	st  *State
	sc  *Scanner
	tok Token
}

// Stream returns a [Stream] of the tokens of s.
// A nil st is treated as an empty [State].
func (p *Parser) Stream(s string, st *State) *Stream {
	if st == nil {
		st = NewState()
	}
	return &Stream{p: p, st: st, sc: p.rules().Scan(s)}
}

// Scan advances to the next token, reporting whether there is one.
func (s *Stream) Scan() bool {
	if !s.sc.Scan() {
		s.tok = nil
		return false
	}
	s.tok = s.p.act(s.st, s.sc.Match())
	return true
}

// Token returns the token found by the most recent call to Scan.
func (s *Stream) Token() Token {
	return s.tok
}

// Parse parses s and returns its tokens.
// Every byte of s is accounted for by some token.
func (p *Parser) Parse(s string, st *State) Tokens {
	var list Tokens
	for ts := p.Stream(s, st); ts.Scan(); {
		list = append(list, ts.Token())
	}
	return list
}

// Render parses s and formats each token with p.Renderer as it is
// produced, returning the concatenated result.
func (p *Parser) Render(s string, st *State) string {
	r := p.renderer()
	var b strings.Builder
	for ts := p.Stream(s, st); ts.Scan(); {
		b.WriteString(ts.Token().render(r))
	}
	return b.String()
}

// Format formats list with r.
func Format(list Tokens, r Renderer) string {
	return list.render(r)
}

// inner parses the text nested inside a construct.
// Past the depth limit the text is kept literally.
func (p *Parser) inner(st *State, s string) Tokens {
	if st.depth >= p.maxDepth() {
		return Tokens{&Text{s}}
	}
	st.depth++
	defer func() { st.depth-- }()
	return p.Parse(s, st)
}
