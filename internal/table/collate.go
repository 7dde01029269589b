package table

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator orders strings by locale rules with embedded integers compared
// by magnitude, so "item2" sorts before "item10".
//
// A Collator is not safe for concurrent use; each Controller holds its own.
type Collator struct {
	tag language.Tag
	c   *collate.Collator
}

// NewCollator returns a numeric-aware collator for tag.
func NewCollator(tag language.Tag) *Collator {
	return &Collator{tag: tag, c: collate.New(tag, collate.Numeric)}
}

// DefaultCollator uses the root (und) collation rules.
func DefaultCollator() *Collator {
	return NewCollator(language.Und)
}

// CollatorFor parses a BCP 47 locale such as "en" or "de-CH". An empty
// locale selects the root rules.
func CollatorFor(locale string) (*Collator, error) {
	if locale == "" {
		return DefaultCollator(), nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("failed to parse locale %q: %w", locale, err)
	}
	return NewCollator(tag), nil
}

// Compare returns -1, 0 or 1.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}

// Locale returns the tag the collator was built for.
func (c *Collator) Locale() string {
	return c.tag.String()
}
