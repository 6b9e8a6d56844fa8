// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"html"
	"strconv"
	"strings"
)

// An HTMLRenderer is a [Renderer] producing HTML.
// The zero value passes raw inline HTML through
// and neutralizes links with harmful protocols.
type HTMLRenderer struct {
	// Escape escapes raw inline HTML instead of passing it through.
	Escape bool

	// AllowHarmfulProtocols keeps javascript:, vbscript:, file:, and data:
	// destinations instead of replacing them with "#harmful-link".
	AllowHarmfulProtocols bool
}

// harmfulProtocols are the URL schemes that HTMLRenderer refuses by default.
var harmfulProtocols = []string{
	"javascript:",
	"vbscript:",
	"file:",
	"data:",
}

// imageData are the data: URL prefixes allowed despite harmfulProtocols.
var imageData = []string{
	"data:image/gif",
	"data:image/png",
	"data:image/jpeg",
	"data:image/webp",
}

// safeURL returns url, or "#harmful-link" if url uses a harmful protocol.
func (r *HTMLRenderer) safeURL(url string) string {
	if r.AllowHarmfulProtocols {
		return url
	}
	for _, data := range imageData {
		if hasPrefixFold(url, data) {
			return url
		}
	}
	for _, proto := range harmfulProtocols {
		if hasPrefixFold(url, proto) {
			return "#harmful-link"
		}
	}
	return url
}

// hasPrefixFold reports whether s begins with prefix,
// using ASCII case-insensitive matching.
// prefix must be lower case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != prefix[i] {
			return false
		}
	}
	return true
}

// escapeAttr escapes an attribute value that may already contain
// character references, without escaping them twice.
func escapeAttr(s string) string {
	if strings.Contains(s, "&") {
		s = html.UnescapeString(s)
	}
	return escapeHTML(s)
}

func (r *HTMLRenderer) Text(text string) string {
	return escapeHTML(text)
}

func (r *HTMLRenderer) Link(url, text, title string) string {
	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(r.safeURL(url))
	b.WriteString(`"`)
	if title != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeAttr(title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if text == "" {
		text = url
	}
	b.WriteString(text)
	b.WriteString("</a>")
	return b.String()
}

func (r *HTMLRenderer) Image(url, alt, title string) string {
	var b strings.Builder
	b.WriteString(`<img src="`)
	b.WriteString(r.safeURL(url))
	b.WriteString(`" alt="`)
	b.WriteString(escapeAttr(stripTags(alt)))
	b.WriteString(`"`)
	if title != "" {
		b.WriteString(` title="`)
		b.WriteString(escapeAttr(title))
		b.WriteString(`"`)
	}
	b.WriteString(" />")
	return b.String()
}

func (r *HTMLRenderer) Emphasis(text string) string { return "<em>" + text + "</em>" }

func (r *HTMLRenderer) Strong(text string) string { return "<strong>" + text + "</strong>" }

func (r *HTMLRenderer) Codespan(code string) string {
	return "<code>" + escapeHTML(code) + "</code>"
}

func (r *HTMLRenderer) Strikethrough(text string) string { return "<del>" + text + "</del>" }

func (r *HTMLRenderer) Linebreak() string { return "<br />\n" }

func (r *HTMLRenderer) InlineHTML(raw string) string {
	if r.Escape {
		return escapeHTML(raw)
	}
	return raw
}

func (r *HTMLRenderer) FootnoteRef(key string, index int) string {
	i := strconv.Itoa(index)
	return `<sup class="footnote-ref" id="fnref-` + i + `"><a href="#fn-` + i + `">` + i + `</a></sup>`
}

// htmlRules recognizes raw HTML, for stripping tags from alt text.
var htmlRules = mustSubset(DefaultRules, RuleInlineHTML)

func mustSubset(rs *RuleSet, names ...string) *RuleSet {
	sub, err := rs.Subset(names...)
	if err != nil {
		panic(err)
	}
	return sub
}

// stripTags returns s with any raw HTML tags, comments,
// and similar markup removed.
func stripTags(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	var b strings.Builder
	for sc := htmlRules.Scan(s); sc.Scan(); {
		if m := sc.Match(); m.Rule == TextRule {
			b.WriteString(m.Text)
		}
	}
	return b.String()
}
