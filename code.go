// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// parseCodespan converts a code span `code`.
// Leading and trailing white space is trimmed and each internal run
// of spaces and newlines becomes a single space.
// The code is not parsed further.
func parseCodespan(m *Match) Token {
	code, _ := m.Group(2)
	return &Codespan{collapseSpace(strings.TrimSpace(code))}
}

// collapseSpace replaces each run of spaces and newlines in s with one space.
func collapseSpace(s string) string {
	if !strings.Contains(s, "\n") && !strings.Contains(s, "  ") {
		return s
	}
	var b strings.Builder
	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\n' {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(c)
	}
	return b.String()
}

// maxRun returns the length of the longest run of b bytes in s.
func maxRun(s string, b byte) int {
	m := 0
	n := 0
	for i := range len(s) {
		if s[i] == b {
			n++
			m = max(m, n)
		} else {
			n = 0
		}
	}
	return m
}
