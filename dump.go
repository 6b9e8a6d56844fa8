// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inline

import (
	"fmt"
	"strings"
)

// Dump returns an indented trace of the token tree list,
// one token per line, with nested tokens indented by two spaces.
// For example, Dump of the tokens for "**a *b***" is:
//
//	Strong
//	  Text "a "
//	  Emphasis
//	    Text "b"
func Dump(list Tokens) string {
	var b strings.Builder
	dump(&b, list, 0)
	return b.String()
}

func dump(b *strings.Builder, list Tokens, depth int) {
	for _, t := range list {
		b.WriteString(strings.Repeat("  ", depth))
		switch t := t.(type) {
		case *Text:
			fmt.Fprintf(b, "Text %q\n", t.Text)
		case *Link:
			fmt.Fprintf(b, "Link %q", t.URL)
			if t.Title != "" {
				fmt.Fprintf(b, " title=%q", t.Title)
			}
			b.WriteString("\n")
			dump(b, t.Inner, depth+1)
		case *Image:
			fmt.Fprintf(b, "Image %q alt=%q", t.URL, t.Alt)
			if t.Title != "" {
				fmt.Fprintf(b, " title=%q", t.Title)
			}
			b.WriteString("\n")
		case *Emphasis:
			b.WriteString("Emphasis\n")
			dump(b, t.Inner, depth+1)
		case *Strong:
			b.WriteString("Strong\n")
			dump(b, t.Inner, depth+1)
		case *Strikethrough:
			b.WriteString("Strikethrough\n")
			dump(b, t.Inner, depth+1)
		case *Codespan:
			fmt.Fprintf(b, "Codespan %q\n", t.Code)
		case *Linebreak:
			b.WriteString("Linebreak\n")
		case *InlineHTML:
			fmt.Fprintf(b, "InlineHTML %q\n", t.HTML)
		case *FootnoteRef:
			fmt.Fprintf(b, "FootnoteRef %q %d\n", t.Key, t.Index)
		default:
			fmt.Fprintf(b, "?%T\n", t)
		}
	}
}
