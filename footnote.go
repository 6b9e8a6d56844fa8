// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// parseFootnote converts a footnote reference [^key].
// A reference to an undefined footnote is left as text.
// The first reference to a footnote assigns it the next index;
// later references reuse that index.
func parseFootnote(st *State, m *Match) Token {
	key, _ := m.Group(1)
	key = strings.ToLower(key)
	if !st.Notes[key] {
		return &Text{m.Text}
	}
	return &FootnoteRef{Key: key, Index: st.noteIndex(key)}
}
