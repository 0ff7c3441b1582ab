package upmatcher

import "log"

// Config carries build-time tunables for a Matcher. The zero Config is not
// valid; use DefaultConfig and override fields as needed, the way
// meta.Config is used in the teacher's regex engine.
type Config struct {
	// ShortcutSize is the fixed length S every shortcut string must have.
	// Must be even and >= 2.
	ShortcutSize int

	// Logger, if non-nil, receives one line per build-time decision the
	// original implementation traced at verbose logging: whether a pattern
	// was added to the shortcut tier or to the prefix/sequential tiers
	// (without saying which of those two), and any rejected rule (bad
	// shortcut length, unparsable regex). Nil disables all build-time logging; Match never
	// logs regardless of this setting.
	Logger *log.Logger
}

// DefaultConfig returns the default configuration: shortcut size 8, no
// logging.
func DefaultConfig() Config {
	return Config{ShortcutSize: 8}
}

func (c Config) validate() error {
	if c.ShortcutSize < 2 || c.ShortcutSize%2 != 0 {
		return ErrInvalidShortcutSize
	}
	return nil
}

func (c Config) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
