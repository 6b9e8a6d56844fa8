// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import "strings"

// A LinkDef is the destination and title of a link reference definition.
type LinkDef struct {
	URL   string
	Title string
}

// A State is the mutable state of parsing one document.
// The block-level parser fills in Links and Notes before any inline
// parsing begins; the inline parser then reads them and records
// footnote numbering as it goes.
//
// A State must not be shared by concurrent parses.
type State struct {
	// Links maps normalized reference keys to their definitions.
	Links map[string]LinkDef

	// Notes holds the lower-cased keys of the defined footnotes.
	Notes map[string]bool

	// FootnoteIndex is the number of distinct footnotes referenced so far.
	FootnoteIndex int

	// Footnotes lists referenced footnote keys in order of first reference.
	Footnotes []string

	indexes map[string]int // footnote key -> assigned index
	inLink  bool           // parsing the text of a link
	depth   int            // nesting depth of the current parse
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		Links: make(map[string]LinkDef),
		Notes: make(map[string]bool),
	}
}

// DefineLink records a link reference definition for label.
// As with link reference definitions in a document,
// the first definition of a label wins.
func (st *State) DefineLink(label, url, title string) {
	if st.Links == nil {
		st.Links = make(map[string]LinkDef)
	}
	key := NormalizeKey(label)
	if _, ok := st.Links[key]; !ok {
		st.Links[key] = LinkDef{URL: url, Title: title}
	}
}

// DefineFootnote records key as a defined footnote.
func (st *State) DefineFootnote(key string) {
	if st.Notes == nil {
		st.Notes = make(map[string]bool)
	}
	st.Notes[strings.ToLower(key)] = true
}

// Index returns the index assigned to the footnote key
// and whether it has been referenced yet.
func (st *State) Index(key string) (int, bool) {
	i, ok := st.indexes[strings.ToLower(key)]
	return i, ok
}

// noteIndex returns the index for a reference to the defined footnote key,
// assigning the next index on the first reference.
func (st *State) noteIndex(key string) int {
	if i, ok := st.indexes[key]; ok {
		return i
	}
	if st.indexes == nil {
		st.indexes = make(map[string]int)
	}
	st.FootnoteIndex++
	st.indexes[key] = st.FootnoteIndex
	st.Footnotes = append(st.Footnotes, key)
	return st.FootnoteIndex
}
