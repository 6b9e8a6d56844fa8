// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// isPunct reports whether c is Markdown punctuation.
func isPunct(c byte) bool {
	return '!' <= c && c <= '/' || ':' <= c && c <= '@' || '[' <= c && c <= '`' || '{' <= c && c <= '~'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// unescapePunct returns s with every backslash-escaped ASCII punctuation
// character replaced by the character itself.
// Unlike full Markdown unescaping, HTML entities are left alone.
func unescapePunct(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return punctUnescaper.Replace(s)
}

// punctUnescaper unescapes Markdown backslash escapes of ASCII punctuation.
var punctUnescaper = func() *strings.Replacer {
	var list []string
	for c := byte('!'); c <= '~'; c++ {
		if isPunct(c) {
			list = append(list, `\`+string(c), string(c))
		}
	}
	return strings.NewReplacer(list...)
}()

// mdEscaper escapes symbols that are used in inline Markdown sequences.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`(`, `\(`,
	`)`, `\)`,
	`[`, `\[`,
	`]`, `\]`,
	`*`, `\*`,
	`_`, `\_`,
	`~`, `\~`,
	`<`, `\<`,
	`>`, `\>`,
)

// mdLinkEscaper escapes symbols that have meaning inside a link target.
var mdLinkEscaper = strings.NewReplacer(
	`(`, `\(`,
	`)`, `\)`,
	`<`, `\<`,
	`>`, `\>`,
)

// NormalizeKey returns the normalized form of a reference label,
// for uniquely identifying link reference definitions.
// Labels that differ only in case or in the width of their
// runs of white space normalize identically.
func NormalizeKey(s string) string {
	// “To normalize a label, ... perform the Unicode case fold, strip leading
	// and trailing spaces, tabs, and line endings, and collapse consecutive
	// internal spaces, tabs, and line endings to a single space.”
	var b strings.Builder
	space := false
	hi := false
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, n := utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				space = b.Len() > 0
				i += n
				continue
			}
			if space {
				b.WriteByte(' ')
				space = false
			}
			hi = true
			b.WriteString(s[i : i+n])
			i += n
			continue
		}
		i++
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v' {
			space = b.Len() > 0
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	s = b.String()
	if hi {
		s = cases.Fold().String(s)
	}
	return s
}
