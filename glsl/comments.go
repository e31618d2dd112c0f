// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// StripComments removes C-style comments from shader source. Line comments
// run from // to the end of the line, block comments from /* to the
// nearest */ across line boundaries. Quoted string literals (single or
// double quoted) pass through verbatim, so comment markers inside quotes
// never start a comment: at every position the literal alternative is
// tried before the comment alternative.
//
// All non-comment text is preserved exactly, including whitespace. The
// stripped text exists only for declaration parsing; diagnostics always
// refer to the original source.
func StripComments(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	for i := 0; i < len(source); {
		c := source[i]
		switch {
		case c == '"' || c == '\'':
			end := strings.IndexByte(source[i+1:], c)
			if end < 0 {
				// Unterminated literal: no match, keep the quote and
				// rescan from the next byte.
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteString(source[i : i+end+2])
			i += end + 2
		case c == '/' && i+1 < len(source) && source[i+1] == '/':
			j := i + 2
			for j < len(source) && source[j] != '\n' && source[j] != '\r' {
				j++
			}
			i = j
		case c == '/' && i+1 < len(source) && source[i+1] == '*':
			end := strings.Index(source[i+2:], "*/")
			if end < 0 {
				// Unterminated block comment: same recovery as an
				// unterminated literal.
				b.WriteByte(c)
				i++
				continue
			}
			i += end + 4
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
