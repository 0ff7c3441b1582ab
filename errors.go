package upmatcher

import "errors"

// Sentinel errors returned by build-time operations. Query-time Match never
// returns an error: a corrupted or rejected rule simply cannot contribute a
// match, surfaced only as a false negative (spec §4.6, §7).
var (
	// ErrInvalidShortcutSize is returned by New/NewWithConfig when the
	// configured shortcut size is not even and positive.
	ErrInvalidShortcutSize = errors.New("upmatcher: shortcut size must be even and >= 2")
)
