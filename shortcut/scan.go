package shortcut

// Candidate is a single tier-1 hit: an aligned shortcut window ending at
// TailPos in the scanned string, whose shortcut text is Shortcut.
type Candidate struct {
	Shortcut string
	TailPos  int
}

// Scan walks s with the Boyer-Moore-style jump rules and invokes visit for
// every aligned candidate shortcut window it finds. visit returning true
// stops the scan early (the caller found a full match and doesn't need
// further candidates); Scan itself never evaluates any pattern.
//
// Scan reports false-negative-free coverage: for any shortcut w that
// genuinely occurs in s ending at position t, a scan started at any
// tail <= t reaches tail == t without ever jumping past it (spec P5).
func (idx *Index) Scan(s string, visit func(Candidate) bool) {
	if len(s) < idx.size {
		return
	}
	end := len(s) - 1
	tail := idx.size - 1

	for tail <= end {
		searchPos := tail - idx.half + 1
		distance, hit := idx.Probe(s, searchPos)
		if !hit {
			tail += idx.half + 1
			continue
		}
		if distance > 0 {
			tail += distance
			continue
		}
		start := tail - idx.size + 1
		stop := visit(Candidate{Shortcut: s[start : start+idx.size], TailPos: tail})
		if stop {
			return
		}
		tail++
	}
}
