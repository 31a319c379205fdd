package asc100

import "strings"

// FilterAction is the disposition of a single source rune during the
// filtering stage that runs ahead of tokenization.
type FilterAction uint8

const (
	// FilterKeep passes the rune through as-is.
	FilterKeep FilterAction = iota
	// FilterReplace substitutes the invalid-character marker spelling.
	FilterReplace
	// FilterSkip drops the rune silently.
	FilterSkip
	// FilterReject aborts the encode with an InvalidCharError.
	FilterReject
)

// FilterPolicy classifies each source rune before encoding. Policies are
// pure values; one policy can serve any number of concurrent calls.
type FilterPolicy interface {
	Classify(r rune) FilterAction
}

// inCharsetRange reports whether r is in the base alphabet shared by every
// version: printable ASCII plus tab, newline, carriage return, NUL and the
// reserved control byte.
func inCharsetRange(r rune) bool {
	if r >= ' ' && r <= '~' {
		return true
	}

	switch r {
	case '\t', '\n', '\r', 0x00, 0x01:
		return true
	}

	return false
}

// StrictFilter rejects any rune outside the base alphabet.
type StrictFilter struct{}

func (StrictFilter) Classify(r rune) FilterAction {
	if inCharsetRange(r) {
		return FilterKeep
	}

	return FilterReject
}

// StripFilter drops runes outside the base alphabet silently.
type StripFilter struct{}

func (StripFilter) Classify(r rune) FilterAction {
	if inCharsetRange(r) {
		return FilterKeep
	}

	return FilterSkip
}

// SanitizeFilter replaces runes outside the base alphabet with the #INV#
// marker spelling.
type SanitizeFilter struct{}

func (SanitizeFilter) Classify(r rune) FilterAction {
	if inCharsetRange(r) {
		return FilterKeep
	}

	return FilterReplace
}

// Mode gates which part of the 7-bit index space is in play.
type Mode uint8

const (
	// Core restricts indices to the charset, 0-99. Marker syntax in the
	// source is never specially interpreted and encodes as literal text.
	Core Mode = iota

	// Extensions enables the full 0-127 space: the tokenizer recognizes
	// #NAME# spellings and decode re-expands marker codes.
	Extensions
)

func (m Mode) supportsIndex(index byte) bool {
	if m == Extensions {
		return index <= markerMax
	}

	return index < charsetSize
}

// Strategy pairs a filter policy with an encoding mode. A Strategy is
// immutable configuration constructed once and reused across calls; it
// carries no state and is safe for concurrent use. The zero value behaves
// like CoreStrict.
type Strategy struct {
	Filter FilterPolicy
	Mode   Mode
}

// The six standard strategies.
var (
	CoreStrict         = Strategy{StrictFilter{}, Core}
	CoreStrip          = Strategy{StripFilter{}, Core}
	CoreSanitize       = Strategy{SanitizeFilter{}, Core}
	ExtensionsStrict   = Strategy{StrictFilter{}, Extensions}
	ExtensionsStrip    = Strategy{StripFilter{}, Extensions}
	ExtensionsSanitize = Strategy{SanitizeFilter{}, Extensions}
)

// invalidMarker is the replacement text written by FilterReplace. Under the
// Extensions mode it later folds into the single MarkerINV code; under Core
// it encodes as five literal characters.
const invalidMarker = "#INV#"

func (s Strategy) filterPolicy() FilterPolicy {
	if s.Filter == nil {
		return StrictFilter{}
	}

	return s.Filter
}

// filter applies the filter policy to raw input. This is the only stage
// that sees non-ASCII runes; its output is pure base-alphabet text.
func (s Strategy) filter(input string) (string, error) {
	policy := s.filterPolicy()

	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		switch policy.Classify(r) {
		case FilterKeep:
			// a custom policy keeping a rune above 0x7F would corrupt
			// the index stream
			if r >= 0x80 {
				return "", &NonASCIIError{Rune: r}
			}
			b.WriteByte(byte(r))
		case FilterReplace:
			b.WriteString(invalidMarker)
		case FilterSkip:
		case FilterReject:
			return "", &InvalidCharError{Char: r}
		}
	}

	return b.String(), nil
}
