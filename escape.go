// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"html"
	"strings"
)

// urlSafe lists the bytes besides ASCII letters and digits
// that EscapeURL leaves alone: the unreserved marks, the RFC 3986
// delimiters other than [ ] and ', and % so that existing
// percent-escapes survive.
const urlSafe = "-._~" + ":/?#@" + "!$&()*+,;=" + "%"

const hexDigits = "0123456789ABCDEF"

// EscapeURL returns the destination s escaped for use in an HTML attribute.
// HTML character references in s are decoded first, then every byte outside
// the safe set is percent-encoded, and finally & < > " are HTML-escaped.
func EscapeURL(s string) string {
	if strings.Contains(s, "&") {
		s = html.UnescapeString(s)
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isLetterDigit(c) || strings.IndexByte(urlSafe, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&15])
	}
	return htmlEscaper.Replace(b.String())
}

// htmlEscaper escapes text for HTML content and attribute values.
var htmlEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
)

// escapeHTML escapes s for HTML.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
