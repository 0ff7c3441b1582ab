// Package upmatcher is a high-throughput URL pattern matcher. It ingests a
// corpus of regular-expression patterns, each with a payload and an
// optional literal "shortcut" substring, and decides at query time whether
// a URL fully matches some pattern.
//
// The matcher is built for cheap negative decisions on large rule sets:
// most URLs match nothing, so the dispatch pipeline filters candidates
// through a shortcut jump table and a literal-prefix trie before ever
// invoking the regex engine (see the shortcut, literal, trie, and store
// packages).
//
// Build and query are two separate phases. Insertions (New, AddPattern,
// AddPatternShortcut, LoadPatternFile) are single-writer and must not be
// interleaved with each other or with Match. Once the final insertion
// completes, the Matcher is logically immutable and Match is safe to call
// from any number of goroutines concurrently.
//
// Example:
//
//	m, err := upmatcher.New(8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m.AddPattern(`http://foo\.com/.*`, "A")
//	if ok, payload := m.MatchPayload("http://foo.com/bar"); ok {
//	    fmt.Println(payload) // "A"
//	}
package upmatcher

import (
	"strconv"

	"github.com/xuyuandong/up-matcher/ruleloader"
	"github.com/xuyuandong/up-matcher/shortcut"
	"github.com/xuyuandong/up-matcher/store"
)

// Matcher is the three-tier candidate filter plus pattern store described
// by the package doc. Build with New or NewWithConfig; query with Match or
// MatchPayload.
type Matcher struct {
	cfg Config
	st  *store.Store
}

// New returns a Matcher configured with the given shortcut size and
// default logging (none). shortcutSize must be even and >= 2.
func New(shortcutSize int) (*Matcher, error) {
	cfg := DefaultConfig()
	cfg.ShortcutSize = shortcutSize
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Matcher built from cfg.
func NewWithConfig(cfg Config) (*Matcher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Matcher{cfg: cfg, st: store.New(cfg.ShortcutSize)}, nil
}

// MustNew is New, but panics instead of returning an error. Useful for
// package-level Matchers built from constants known to be valid, mirroring
// the teacher's MustCompile convention (regex.go).
func MustNew(shortcutSize int) *Matcher {
	m, err := New(shortcutSize)
	if err != nil {
		panic("upmatcher: New(" + strconv.Itoa(shortcutSize) + "): " + err.Error())
	}
	return m
}

// AddPattern compiles regex and deposits it in the literal-prefix trie (if
// its extracted prefix is non-empty) or the sequential list, per spec
// §4.4. It reports a compile error without mutating the store on failure.
func (m *Matcher) AddPattern(regex, payload string) error {
	if err := m.st.AddPattern(regex, payload); err != nil {
		m.cfg.logf("upmatcher: rejected pattern %q: %v", regex, err)
		return err
	}
	m.cfg.logf("upmatcher: added %q to prefix/sequential tier", regex)
	return nil
}

// AddPatternShortcut compiles regex and deposits it in the shortcut tier
// keyed by shortcut, which must be exactly the matcher's configured
// ShortcutSize bytes long. A pattern added this way is never also indexed
// by its literal prefix, even if it has one.
func (m *Matcher) AddPatternShortcut(regex, payload, shortcutStr string) error {
	if err := m.st.AddPatternShortcut(regex, payload, shortcutStr); err != nil {
		m.cfg.logf("upmatcher: rejected pattern %q with shortcut %q: %v", regex, shortcutStr, err)
		return err
	}
	m.cfg.logf("upmatcher: added %q to shortcut tier %q", regex, shortcutStr)
	return nil
}

// LoadPatternFile reads a line-oriented rule file and adds every retained
// line as a pattern. Blank lines and lines starting with '#' are skipped.
// Each line is split on the literal delimiter "[^o^]" into up to three
// fields (regex, payload, shortcut); two fields call AddPattern, three call
// AddPatternShortcut. A malformed or rejected individual line does not
// abort the load, the same way a bad rule never aborts a build (spec §4.6):
// a line with an empty regex field is dropped by the loader without a log
// line, and a rule that AddPattern or AddPatternShortcut rejects is logged
// and skipped.
func (m *Matcher) LoadPatternFile(path string) error {
	rules, err := ruleloader.ReadFile(path)
	if err != nil {
		return err
	}
	for _, r := range rules {
		var addErr error
		if r.HasShortcut {
			addErr = m.AddPatternShortcut(r.Regex, r.Payload, r.Shortcut)
		} else {
			addErr = m.AddPattern(r.Regex, r.Payload)
		}
		if addErr != nil {
			m.cfg.logf("upmatcher: skipping rule line %d (%q): %v", r.Line, r.Regex, addErr)
		}
	}
	return nil
}

// Match reports whether url fully matches some stored pattern.
func (m *Matcher) Match(url string) bool {
	ok, _ := m.MatchPayload(url)
	return ok
}

// MatchPayload is the three-tier dispatch pipeline of spec §4.5: shortcut
// scan, then prefix trie, then sequential list. It returns the payload of
// the first pattern whose regex fully matches url, in the fixed tier order.
// Tier 1 tries candidate shortcut windows left to right; tier 2 consults
// only the bucket of the longest stored literal prefix of url. Within a
// bucket, patterns are tried in insertion order (spec P6).
func (m *Matcher) MatchPayload(url string) (ok bool, payload string) {
	var hitPayload string
	found := false

	m.st.Shortcuts.Scan(url, func(c shortcut.Candidate) bool {
		bucket := m.st.ShortcutBuckets[c.Shortcut]
		for _, elem := range bucket {
			if elem.FullMatch(url) {
				hitPayload = elem.Payload
				found = true
				return true
			}
		}
		return false
	})
	if found {
		return true, hitPayload
	}

	if bucket, hit := m.st.PrefixTrie.PrefixMatch(url, 0, len(url)); hit {
		for _, elem := range bucket {
			if elem.FullMatch(url) {
				return true, elem.Payload
			}
		}
	}

	for _, elem := range m.st.Sequential {
		if elem.FullMatch(url) {
			return true, elem.Payload
		}
	}

	return false, ""
}

// MatchAll is a placeholder entry point for returning every matching
// pattern's payload instead of only the first hit. Its semantics are
// unspecified (spec §9 Open Questions; the original implementation's
// MatchAll always returned false/empty); this implementation preserves
// that contract rather than defining new behavior.
func (m *Matcher) MatchAll(url string) []string {
	return nil
}

// MatchRegexOnly is a placeholder entry point mirroring the original
// implementation's MatchRe, which always returned no result. Its intended
// semantics (returning the matched pattern's source rather than its
// payload) are unspecified.
func (m *Matcher) MatchRegexOnly(url string) (source string, ok bool) {
	return "", false
}
