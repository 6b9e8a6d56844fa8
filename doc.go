// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inline parses inline Markdown: the emphasis, links, images,
// code spans, autolinks, raw HTML, footnote references, strikethrough,
// hard line breaks, and escapes found inside a block of text.
//
// A block-level parser isolates each run of text and collects the
// link reference definitions and footnotes of the document into a [State].
// A [Parser] then turns each run into [Tokens]:
//
//	st := inline.NewState()
//	st.DefineLink("go", "https://go.dev/", "")
//	st.DefineFootnote("1")
//
//	var p inline.Parser
//	html := p.Render("Try *[Go][go]*.[^1]", st)
//
// Parse returns the token tree instead of rendered output,
// and Stream produces the tokens one at a time.
//
// The constructs are recognized by an ordered [RuleSet] of patterns.
// At each point the earliest match wins; when two rules match at the
// same offset, the rule listed first wins. Text matched by no rule
// becomes [Text]. Parsing never fails: references to undefined links
// or footnotes, and links inside link text, are kept as literal text.
//
// Nested constructs are parsed recursively up to [Parser.MaxDepth]
// levels deep; text nested deeper than that is kept as a literal [Text].
//
// A State records the footnote numbering of a document and must not
// be shared by concurrent parses. A Parser and its RuleSet may be.
package inline
