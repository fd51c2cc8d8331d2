package textclean

import (
	"strings"

	"github.com/forPelevin/gomoji"
	"golang.org/x/text/unicode/norm"
)

// Options configures text cleaning behavior
type Options struct {
	StripEmoji         bool
	NormalizeUnicode   bool
	CollapseWhitespace bool
}

// DefaultOptions returns default cleaning options
func DefaultOptions() Options {
	return Options{
		StripEmoji:         true,
		NormalizeUnicode:   true,
		CollapseWhitespace: true,
	}
}

// Cleaner normalizes transcript text fragments
type Cleaner struct {
	options Options
}

// New creates a new text cleaner
func New(options Options) *Cleaner {
	return &Cleaner{options: options}
}

// Clean runs the configured normalization passes over s.
// Passes run in a fixed order: unicode normalization, emoji removal,
// whitespace collapse.
func (c *Cleaner) Clean(s string) string {
	if s == "" {
		return ""
	}

	if c.options.NormalizeUnicode {
		// NFKC folds encoding artifacts like non-breaking spaces and
		// full-width forms into their plain equivalents
		s = norm.NFKC.String(s)
	}

	if c.options.StripEmoji {
		s = gomoji.RemoveEmojis(s)
	}

	if c.options.CollapseWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}

	return strings.TrimSpace(s)
}
