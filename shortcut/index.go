// Package shortcut implements the tier-1 candidate filter: a Boyer-Moore
// style jump table over half-length windows of rule "shortcuts" (literal
// substrings the rule author asserts must appear somewhere in any URL the
// rule matches).
//
// The index never produces a false negative: every hit it reports carries a
// jump distance no larger than the true minimum distance to the nearest
// shortcut tail, so a scan driven by it can never step over a valid
// candidate (spec property P5).
package shortcut

import (
	"fmt"

	"github.com/xuyuandong/up-matcher/trie"
)

// Index is a ByteTrie<int> keyed by half-length shortcut fragments, storing
// the minimum observed jump distance for each fragment.
type Index struct {
	size int // S: the configured shortcut length, even and positive.
	half int // S/2
	t    *trie.Trie[int]
}

// New returns an index configured for shortcuts of exactly size bytes. size
// must be even and positive; New panics otherwise since this is a build-time
// configuration error, not a per-rule one (callers validate it once, at
// Matcher construction, the way meta.Config is validated once at Compile).
func New(size int) *Index {
	if size <= 0 || size%2 != 0 {
		panic("shortcut: size must be even and positive")
	}
	return &Index{size: size, half: size / 2, t: trie.New[int]()}
}

// Size returns the configured shortcut length S.
func (idx *Index) Size() int { return idx.size }

// Add indexes shortcut, a literal string of exactly Size() bytes, updating
// the jump table for every half-window it contains. It reports an error if
// shortcut's length does not match Size(); the caller must not store the
// associated pattern when that happens (spec I1).
func (idx *Index) Add(shortcut string) error {
	if len(shortcut) != idx.size {
		return &LengthError{Got: len(shortcut), Want: idx.size}
	}
	for p := 0; p <= idx.half; p++ {
		distance := idx.half - p
		if existing, ok := idx.t.ExactMatch(shortcut, p, idx.half); ok {
			if distance < existing {
				idx.t.Insert(shortcut, p, idx.half, distance, true)
			}
			continue
		}
		idx.t.Insert(shortcut, p, idx.half, distance, false)
	}
	return nil
}

// Probe looks up the half-length window s[start:start+Size()/2) and
// reports the minimum jump distance recorded for it, if any.
func (idx *Index) Probe(s string, start int) (distance int, hit bool) {
	return idx.t.ExactMatch(s, start, idx.half)
}

// LengthError reports that a shortcut's length did not match the matcher's
// configured shortcut size.
type LengthError struct {
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("shortcut: illegal length %d, want %d", e.Got, e.Want)
}
