// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "testing"

var normalizeKeyTests = []struct {
	in  string
	out string
}{
	{"foo", "foo"},
	{"FOO", "foo"},
	{"  Foo \t\n Bar  ", "foo bar"},
	{"a b", "a b"},
	{"ẞ", "ss"},
	{"ΑΓΩ", "αγω"},
	{"", ""},
}

func TestNormalizeKey(t *testing.T) {
	for _, tt := range normalizeKeyTests {
		if out := NormalizeKey(tt.in); out != tt.out {
			t.Errorf("NormalizeKey(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestUnescapePunct(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{`a\*b`, `a*b`},
		{`\(\)\[\]`, `()[]`},
		{`\\`, `\`},
		{`\a\1`, `\a\1`},
		{`&amp;`, `&amp;`},
		{`\`, `\`},
	}
	for _, tt := range tests {
		if out := unescapePunct(tt.in); out != tt.out {
			t.Errorf("unescapePunct(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestEscapeURL(t *testing.T) {
	var tests = []struct {
		in  string
		out string
	}{
		{"/u", "/u"},
		{"https://x.com/a?b=c&d=e#f", "https://x.com/a?b=c&amp;d=e#f"},
		{"/a b", "/a%20b"},
		{"/ü", "/%C3%BC"},
		{"/%20", "/%20"},
		{"/&amp;", "/&amp;"},
		{"/&lt;", "/%3C"},
		{`/"q"`, "/%22q%22"},
		{"/[x]", "/%5Bx%5D"},
		{"/\\", "/%5C"},
		{"/\xff", "/%FF"},
	}
	for _, tt := range tests {
		if out := EscapeURL(tt.in); out != tt.out {
			t.Errorf("EscapeURL(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}
