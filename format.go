// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strconv"
	"strings"
)

// A MarkdownRenderer is a [Renderer] that prints tokens back
// as normalized Markdown: emphasis is written with *, strong with **,
// code spans with the fewest backticks possible, and punctuation
// in text is escaped so that it reads back as text.
//
// Link destinations are printed as given; parse with an identity
// Parser.EscapeURL to reproduce the original destinations.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Text(text string) string {
	return mdEscaper.Replace(text)
}

func (MarkdownRenderer) Link(url, text, title string) string {
	return "[" + text + "](" + mdDest(url) + mdTitle(title) + ")"
}

func (MarkdownRenderer) Image(url, alt, title string) string {
	return "![" + alt + "](" + mdDest(url) + mdTitle(title) + ")"
}

// mdDest returns the Markdown form of a link destination.
func mdDest(url string) string {
	u := mdLinkEscaper.Replace(url)
	if u == "" || strings.ContainsAny(u, " ") {
		u = "<" + u + ">"
	}
	return u
}

// mdTitle returns the Markdown form of a link title,
// including the space that separates it from the destination.
func mdTitle(title string) string {
	if title == "" {
		return ""
	}
	if !strings.Contains(title, `"`) {
		return ` "` + title + `"`
	}
	if !strings.Contains(title, `'`) {
		return ` '` + title + `'`
	}
	return ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
}

func (MarkdownRenderer) Emphasis(text string) string { return "*" + text + "*" }

func (MarkdownRenderer) Strong(text string) string { return "**" + text + "**" }

var ticks = "````````````````````````````````````````````````````````````````" // 64 ticks

func (MarkdownRenderer) Codespan(code string) string {
	// Use the fewest backticks we can, and add spaces as needed.
	n := maxRun(code, '`') + 1
	var b strings.Builder
	printTicks(&b, n)

	// Note: an empty code span cannot be expressed in Markdown;
	// it is printed as ` ` (a code-formatted space).
	if len(code) == 0 {
		b.WriteByte(' ')
	} else {
		space := code[0] == '`' || code[len(code)-1] == '`'
		if space {
			b.WriteByte(' ')
		}
		b.WriteString(code)
		if space {
			b.WriteByte(' ')
		}
	}

	printTicks(&b, n)
	return b.String()
}

// printTicks prints n backticks to b.
func printTicks(b *strings.Builder, n int) {
	for n > len(ticks) {
		b.WriteString(ticks)
		n -= len(ticks)
	}
	b.WriteString(ticks[:n])
}

func (MarkdownRenderer) Strikethrough(text string) string { return "~~" + text + "~~" }

func (MarkdownRenderer) Linebreak() string { return "\\\n" }

func (MarkdownRenderer) InlineHTML(html string) string { return html }

func (MarkdownRenderer) FootnoteRef(key string, index int) string {
	return "[^" + key + "]"
}

// A plainRenderer is a [Renderer] keeping only the visible text:
// link text, image alt text, and code, with markup dropped.
type plainRenderer struct{}

func (plainRenderer) Text(text string) string                 { return text }
func (plainRenderer) Link(url, text, title string) string     { return text }
func (plainRenderer) Image(url, alt, title string) string     { return stripTags(alt) }
func (plainRenderer) Emphasis(text string) string             { return text }
func (plainRenderer) Strong(text string) string               { return text }
func (plainRenderer) Codespan(code string) string             { return code }
func (plainRenderer) Strikethrough(text string) string        { return text }
func (plainRenderer) Linebreak() string                       { return "\n" }
func (plainRenderer) InlineHTML(html string) string           { return "" }
func (plainRenderer) FootnoteRef(key string, index int) string { return "[" + strconv.Itoa(index) + "]" }

// PlainText returns the visible text of list, with all markup removed.
func PlainText(list Tokens) string {
	return list.render(plainRenderer{})
}
