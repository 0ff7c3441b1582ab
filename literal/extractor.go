// Package literal extracts the longest leading literal byte sequence from a
// regex pattern: the prefix a candidate URL must start with for the pattern
// to have any chance of matching. This is what drives the matcher's tier-2
// prefix trie (see the shortcut package for the tier-1 jump table).
package literal

import "strings"

// metaChars is the set of regex metacharacters that terminate a literal
// prefix walk. Order matches the original rule corpus's own table.
const metaChars = `.?*+[({$^|`

func isMeta(c byte) bool {
	return strings.IndexByte(metaChars, c) >= 0
}

// Extract returns the longest leading literal byte sequence of pattern.
//
// The walk stops, without including the triggering byte, at the first of:
//
//   - an unescaped metacharacter from the set ".?*+[({$^|"
//   - a backslash followed by a non-metacharacter (the backslash is a regex
//     directive here, not a literal, so the walk ends before it)
//
// A backslash followed by a metacharacter contributes that metacharacter as
// a literal byte and consumes both characters.
//
// Independently of that walk, the literal substring ".*" truncates the
// prefix at its first occurrence in pattern, even if that occurrence
// precedes the first metacharacter the byte-wise walk would have stopped
// at — a ".*" with nothing in front of it yields an empty prefix.
func Extract(pattern string) string {
	limit := len(pattern)
	if star := strings.Index(pattern, ".*"); star >= 0 && star < limit {
		limit = star
	}

	var b strings.Builder
	for i := 0; i < limit; i++ {
		c := pattern[i]
		if c == '\\' {
			if i+1 >= limit || !isMeta(pattern[i+1]) {
				break
			}
			b.WriteByte(pattern[i+1])
			i++
			continue
		}
		if isMeta(c) {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}
