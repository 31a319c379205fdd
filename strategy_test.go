package asc100

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInCharsetRange(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for r := rune(' '); r <= '~'; r++ {
		is.True(inCharsetRange(r))
	}

	for _, r := range []rune{'\t', '\n', '\r', 0x00, 0x01} {
		is.True(inCharsetRange(r))
	}

	for _, r := range []rune{0x02, 0x1F, 0x7F, 0x80, 0xFF, '€', '🌍'} {
		is.False(inCharsetRange(r), "rune %q", r)
	}
}

func TestFilterPolicies(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.Equal(FilterKeep, StrictFilter{}.Classify('a'))
	is.Equal(FilterKeep, StripFilter{}.Classify('a'))
	is.Equal(FilterKeep, SanitizeFilter{}.Classify('a'))

	is.Equal(FilterReject, StrictFilter{}.Classify(0x80))
	is.Equal(FilterSkip, StripFilter{}.Classify(0x80))
	is.Equal(FilterReplace, SanitizeFilter{}.Classify(0x80))
}

func TestStrategyFilter(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name   string
		s      Strategy
		input  string
		exp    string
		expErr error
	}{
		{
			name:  "strict keeps clean input",
			s:     CoreStrict,
			input: "Hello, World!",
			exp:   "Hello, World!",
		},
		{
			name:   "strict rejects high runes",
			s:      CoreStrict,
			input:  "Hello\u0080World",
			expErr: ErrInvalidChar,
		},
		{
			name:  "strip drops high runes",
			s:     CoreStrip,
			input: "Hello\u0080World",
			exp:   "HelloWorld",
		},
		{
			name:  "sanitize replaces high runes",
			s:     ExtensionsSanitize,
			input: "Hello\u0080World",
			exp:   "Hello#INV#World",
		},
		{
			name:  "sanitize replaces each invalid rune",
			s:     ExtensionsSanitize,
			input: "a\u0080b\u0081c",
			exp:   "a#INV#b#INV#c",
		},
		{
			name:  "strip drops multibyte runes whole",
			s:     CoreStrip,
			input: "x🌍y",
			exp:   "xy",
		},
		{
			name:  "control whitespace is kept",
			s:     CoreStrict,
			input: "a\tb\nc\rd",
			exp:   "a\tb\nc\rd",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)

			out, err := tc.s.filter(tc.input)

			if tc.expErr != nil {
				is.ErrorIs(err, tc.expErr)
				is.Empty(out)
				return
			}

			is.NoError(err)
			is.Equal(tc.exp, out)
		})
	}
}

func TestZeroStrategyDefaultsToStrict(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	var s Strategy

	_, err := s.filter("ok")
	is.NoError(err)

	_, err = s.filter("bad\u0080")
	is.ErrorIs(err, ErrInvalidChar)
}

func TestModeSupportsIndex(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for idx := range byte(100) {
		is.True(Core.supportsIndex(idx))
		is.True(Extensions.supportsIndex(idx))
	}

	for idx := byte(100); idx <= 127; idx++ {
		is.False(Core.supportsIndex(idx))
		is.True(Extensions.supportsIndex(idx))
	}
}

func TestStrategyErrorValues(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	_, err := CoreStrict.filter("ab\u0099cd")
	is.ErrorIs(err, ErrInvalidChar)

	var invErr *InvalidCharError
	is.ErrorAs(err, &invErr)
	is.Equal(rune(0x99), invErr.Char)
}
