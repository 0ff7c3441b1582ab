// Package store holds the three parallel pattern containers the matcher
// dispatches against: the shortcut buckets, the literal-prefix trie, and
// the residual sequential list. It owns every compiled regex handle and
// pattern record; once built, a Store is read-only and safe for concurrent
// Match callers.
package store

import (
	"fmt"

	"github.com/coregx/coregex"

	"github.com/xuyuandong/up-matcher/literal"
	"github.com/xuyuandong/up-matcher/shortcut"
	"github.com/xuyuandong/up-matcher/trie"
)

// Elem is a single stored pattern: its original source, its compiled
// full-match regex, and its payload. Compiled once at insertion and
// immutable thereafter; never shared between buckets (spec I3, I4).
type Elem struct {
	Source  string
	Payload string
	re      *coregex.Regex
}

// FullMatch reports whether url is, in its entirety, matched by e's regex.
func (e *Elem) FullMatch(url string) bool {
	return e.re.MatchString(url)
}

// compile compiles pattern for anchored full-string matching. coregex's
// public Match/MatchString perform unanchored search (like stdlib
// regexp.MatchString), so full-match semantics are obtained the same way
// stdlib users do it: wrapping the pattern in a non-capturing anchor.
func compile(pattern string) (*coregex.Regex, error) {
	return coregex.Compile(`^(?:` + pattern + `)$`)
}

// CompileError wraps a regex compilation failure with the offending
// pattern, matching the teacher's CompileError shape (nfa/error.go).
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("store: invalid regex %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Store is the build-time-mutable, query-time-read-only pattern container.
type Store struct {
	shortcutSize    int
	Shortcuts       *shortcut.Index
	ShortcutBuckets map[string][]*Elem
	PrefixTrie      *trie.Trie[[]*Elem]
	Sequential      []*Elem
}

// New returns an empty store configured for shortcuts of the given length.
func New(shortcutSize int) *Store {
	return &Store{
		shortcutSize:    shortcutSize,
		Shortcuts:       shortcut.New(shortcutSize),
		ShortcutBuckets: make(map[string][]*Elem),
		PrefixTrie:      trie.New[[]*Elem](),
	}
}

// AddPattern compiles regex, extracts its literal prefix, and deposits the
// resulting Elem in the prefix trie (if the prefix is non-empty) or the
// sequential list (otherwise). It never touches the shortcut tier; use
// AddPatternShortcut for rules that supply a shortcut.
func (s *Store) AddPattern(pattern, payload string) error {
	re, err := compile(pattern)
	if err != nil {
		return &CompileError{Pattern: pattern, Err: err}
	}
	elem := &Elem{Source: pattern, Payload: payload, re: re}

	prefix := literal.Extract(pattern)
	if prefix == "" {
		s.Sequential = append(s.Sequential, elem)
		return nil
	}

	if bucket, ok := s.PrefixTrie.ExactMatch(prefix, 0, len(prefix)); ok {
		bucket = append(bucket, elem)
		s.PrefixTrie.Insert(prefix, 0, len(prefix), bucket, true)
		return nil
	}
	s.PrefixTrie.Insert(prefix, 0, len(prefix), []*Elem{elem}, false)
	return nil
}

// AddPatternShortcut compiles regex and deposits the resulting Elem in the
// shortcut tier keyed by shortcut, which must have exactly the store's
// configured shortcut length. A pattern added this way is never also
// indexed by its literal prefix, even if it has one (spec §4.4 note, §9).
func (s *Store) AddPatternShortcut(pattern, payload, shortcutStr string) error {
	if len(shortcutStr) != s.shortcutSize {
		return &shortcut.LengthError{Got: len(shortcutStr), Want: s.shortcutSize}
	}
	re, err := compile(pattern)
	if err != nil {
		return &CompileError{Pattern: pattern, Err: err}
	}
	if err := s.Shortcuts.Add(shortcutStr); err != nil {
		return err
	}
	elem := &Elem{Source: pattern, Payload: payload, re: re}
	s.ShortcutBuckets[shortcutStr] = append(s.ShortcutBuckets[shortcutStr], elem)
	return nil
}
