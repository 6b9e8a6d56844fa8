// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// parseAutoLink converts an autolink <https://example.com> or
// <user@example.com> into a [Link] whose text is the bracketed body.
func (p *Parser) parseAutoLink(m *Match) Token {
	text, _ := m.Group(1)
	link := text
	// An email address cannot contain a colon, so a body with
	// an @ and no colon is an email address, not a URI with a scheme.
	if strings.Contains(text, "@") && !strings.Contains(text, ":") {
		link = "mailto:" + text
	}
	return &Link{URL: p.escapeURL(link), Inner: Tokens{&Text{text}}}
}

// parseStdLink converts an inline link [text](dest "title")
// or image ![alt](dest "title").
func (p *Parser) parseStdLink(st *State, m *Match) Token {
	text, _ := m.Group(1)
	dest, _ := m.Group(2)
	dest = unescapePunct(dest)
	if len(dest) >= 2 && dest[0] == '<' && dest[len(dest)-1] == '>' {
		dest = dest[1 : len(dest)-1]
	}
	title, ok := m.Group(3)
	if ok {
		title = unescapePunct(strip(title, 1))
	}
	return p.link(st, m.Text, dest, text, title)
}

// parseRefLink converts a reference link [text][key], [text][], or [key]
// (or the image forms of those) using the definitions in st.
// An undefined key leaves the source as text.
func (p *Parser) parseRefLink(st *State, m *Match) Token {
	text, _ := m.Group(1)
	key, _ := m.Group(2)
	if key == "" {
		key = text
	}
	def, ok := st.Links[p.normalizeKey(key)]
	if !ok {
		return &Text{unescapePunct(m.Text)}
	}
	return p.link(st, m.Text, unescapePunct(def.URL), text, unescapePunct(def.Title))
}

// link builds the token for a resolved link or image.
// src is the full source of the construct, starting with ! for an image.
func (p *Parser) link(st *State, src, dest, text, title string) Token {
	if strings.HasPrefix(src, "!") {
		return &Image{URL: p.escapeURL(dest), Alt: text, Title: title}
	}
	// Links cannot contain other links.
	if st.inLink {
		return &Text{src}
	}
	return &Link{URL: p.escapeURL(dest), Inner: p.linkText(st, text), Title: title}
}

// linkText parses the text of a link with st marked as inside a link.
func (p *Parser) linkText(st *State, text string) Tokens {
	old := st.inLink
	st.inLink = true
	defer func() { st.inLink = old }()
	return p.inner(st, text)
}
