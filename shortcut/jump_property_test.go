package shortcut

import (
	"testing"

	"github.com/coregx/ahocorasick"
)

// TestJumpTableAgreesWithAhoCorasick cross-checks the jump table's
// tightness property (spec P5/P8) against an independent pattern-matching
// engine: instead of re-deriving each half-window's minimum distance with
// the same substring slicing the index itself uses, it builds an
// Aho-Corasick automaton over the recorded half-windows and asks it to
// enumerate every occurrence inside each shortcut. For each occurrence at
// offset p, the index's stored distance must be no larger than S/2-p
// (never over-shifts past a real candidate).
func TestJumpTableAgreesWithAhoCorasick(t *testing.T) {
	shortcuts := []string{
		"ads.com/", "tracker1", "evil.biz", "abcdefgh", "xx00ffgg",
	}
	const size = 8
	idx := New(size)
	half := size / 2

	windows := map[string]bool{}
	for _, sc := range shortcuts {
		if err := idx.Add(sc); err != nil {
			t.Fatalf("Add(%q): %v", sc, err)
		}
		for p := 0; p <= half; p++ {
			windows[sc[p:p+half]] = true
		}
	}

	builder := ahocorasick.NewBuilder()
	for w := range windows {
		builder.AddPattern([]byte(w))
	}
	automaton, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for w := range windows {
		wantMin := size // larger than any achievable distance
		for _, sc := range shortcuts {
			haystack := []byte(sc)
			at := 0
			for at <= len(haystack) {
				m := automaton.Find(haystack, at)
				if m == nil || m.Start >= len(haystack) {
					break
				}
				if haystack[m.Start] != w[0] || string(haystack[m.Start:m.End]) != w {
					at = m.Start + 1
					continue
				}
				p := m.Start
				if p <= half {
					if d := half - p; d < wantMin {
						wantMin = d
					}
				}
				at = m.Start + 1
			}
		}

		gotDistance, hit := idx.Probe(w, 0)
		if !hit {
			t.Fatalf("Probe(%q) missed a window known to be indexed", w)
		}
		if gotDistance > wantMin {
			t.Errorf("Probe(%q) = %d, Aho-Corasick oracle found tighter bound %d (over-shift risk)", w, gotDistance, wantMin)
		}
	}
}
