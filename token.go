// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// A Token is an inline Markdown element, one of
// [Text], [Link], [Image], [Emphasis], [Strong], [Codespan],
// [Strikethrough], [Linebreak], [InlineHTML], and [FootnoteRef].
//
// Tokens are immutable once produced by a [Parser].
type Token interface {
	Token()

	render(Renderer) string
}

// A Tokens is a sequence of [Token]s.
type Tokens []Token

func (x Tokens) render(r Renderer) string {
	var b strings.Builder
	for _, t := range x {
		b.WriteString(t.render(r))
	}
	return b.String()
}

// A Text is a [Token] holding literal text.
// The text is not escaped; escaping is the [Renderer]'s business.
type Text struct {
	Text string
}

func (*Text) Token() {}

func (x *Text) render(r Renderer) string { return r.Text(x.Text) }

// A Link is a [Token] representing a link.
// URL has already been passed through the parser's URL escaper.
type Link struct {
	URL   string
	Inner Tokens
	Title string
}

func (*Link) Token() {}

func (x *Link) render(r Renderer) string {
	return r.Link(x.URL, x.Inner.render(r), x.Title)
}

// An Image is a [Token] representing an image.
// Alt is the raw text between the brackets; it is not parsed further.
type Image struct {
	URL   string
	Alt   string
	Title string
}

func (*Image) Token() {}

func (x *Image) render(r Renderer) string { return r.Image(x.URL, x.Alt, x.Title) }

// An Emphasis is a [Token] representing emphasis (italic text).
type Emphasis struct {
	Inner Tokens
}

func (*Emphasis) Token() {}

func (x *Emphasis) render(r Renderer) string { return r.Emphasis(x.Inner.render(r)) }

// A Strong is a [Token] representing strong emphasis (bold text).
type Strong struct {
	Inner Tokens
}

func (*Strong) Token() {}

func (x *Strong) render(r Renderer) string { return r.Strong(x.Inner.render(r)) }

// A Codespan is a [Token] representing a code span.
// Its text is verbatim: it is never parsed for inline constructs.
type Codespan struct {
	Code string
}

func (*Codespan) Token() {}

func (x *Codespan) render(r Renderer) string { return r.Codespan(x.Code) }

// A Strikethrough is a [Token] representing deleted text,
// written ~~like this~~.
type Strikethrough struct {
	Inner Tokens
}

func (*Strikethrough) Token() {}

func (x *Strikethrough) render(r Renderer) string { return r.Strikethrough(x.Inner.render(r)) }

// A Linebreak is a [Token] representing a hard line break.
type Linebreak struct{}

func (*Linebreak) Token() {}

func (*Linebreak) render(r Renderer) string { return r.Linebreak() }

// An InlineHTML is a [Token] holding raw HTML exactly as written.
type InlineHTML struct {
	HTML string
}

func (*InlineHTML) Token() {}

func (x *InlineHTML) render(r Renderer) string { return r.InlineHTML(x.HTML) }

// A FootnoteRef is a [Token] referring to a footnote.
// Key is the lower-cased footnote label and
// Index is its 1-based number in order of first reference.
type FootnoteRef struct {
	Key   string
	Index int
}

func (*FootnoteRef) Token() {}

func (x *FootnoteRef) render(r Renderer) string { return r.FootnoteRef(x.Key, x.Index) }
