package asc100

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Round trip under the strict core strategy: any string over the charset
// (no '#') must survive encode/decode byte for byte, on every version.
func TestRoundTripCore(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Hello, World!",
		"1234567890",
		"~!@$%^&*()_+",
		"The quick brown fox jumps over the lazy dog",
		"\t\n\r",
		" ",
		"~",
		"function test() { return 42; }",
		"https://example.com/path?query=value&foo=bar",
		"\x00\x01",
		strings.Repeat("payload ", 100),
	}

	for _, v := range Versions {
		for _, input := range inputs {
			encoded, err := Encode(input, v, CoreStrict)
			require.NoErrorf(t, err, "version %s input %q", v.Name, input)

			decoded, err := Decode(encoded, v, CoreStrict)
			require.NoError(t, err)
			require.Equalf(t, input, decoded, "version %s", v.Name)
		}
	}
}

// Round trip under the strict extensions strategy, with markers mixed into
// ordinary text.
func TestRoundTripExtensions(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"#V#",
		"#V##EOF#",
		"start #SSX# body #ESX# end",
		"plain text with no markers",
		"#INV# leading",
		"trailing #ACK#",
		" #NL# ",
		"#FAKE# unknown name stays literal",
		"#V unterminated stays literal",
		"Process #V#data#V# and signal #EOF#",
	}

	for _, v := range Versions {
		for _, input := range inputs {
			encoded, err := Encode(input, v, ExtensionsStrict)
			require.NoErrorf(t, err, "version %s input %q", v.Name, input)

			decoded, err := Decode(encoded, v, ExtensionsStrict)
			require.NoError(t, err)
			require.Equalf(t, input, decoded, "version %s", v.Name)
		}
	}
}

// Every marker in the table must round trip alone and embedded in text.
func TestRoundTripAllMarkers(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for _, m := range markers {
		encoded, err := Encode(m.name, V1Standard, ExtensionsStrict)
		is.NoError(err)

		// one index plus padding: two packed characters
		is.Len(encoded, EncodedLength(1))

		decoded, err := Decode(encoded, V1Standard, ExtensionsStrict)
		is.NoError(err)
		is.Equal(m.name, decoded)

		wrapped := "a " + m.name + " b"
		encoded, err = Encode(wrapped, V1Standard, ExtensionsStrict)
		is.NoError(err)

		decoded, err = Decode(encoded, V1Standard, ExtensionsStrict)
		is.NoError(err)
		is.Equal(wrapped, decoded)
	}
}

// Under the core mode, marker syntax is literal text: the wire form differs
// from the extensions encoding of the same input, and both round trip.
func TestCoreModeLiteralness(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	const input = "#V#"

	coreEncoded, err := Encode(input, V1Standard, CoreStrict)
	is.NoError(err)

	extEncoded, err := Encode(input, V1Standard, ExtensionsStrict)
	is.NoError(err)

	is.NotEqual(coreEncoded, extEncoded)
	is.Greater(len(coreEncoded), len(extEncoded))

	coreDecoded, err := Decode(coreEncoded, V1Standard, CoreStrict)
	is.NoError(err)
	is.Equal(input, coreDecoded)

	extDecoded, err := Decode(extEncoded, V1Standard, ExtensionsStrict)
	is.NoError(err)
	is.Equal(input, extDecoded)
}

func TestStripPolicy(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	encoded, err := Encode("Hello\u0080World", V1Standard, CoreStrip)
	is.NoError(err)

	decoded, err := Decode(encoded, V1Standard, CoreStrip)
	is.NoError(err)
	is.Equal("HelloWorld", decoded)
}

func TestSanitizePolicy(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	encoded, err := Encode("Hello\u0080World", V1Standard, ExtensionsSanitize)
	is.NoError(err)

	decoded, err := Decode(encoded, V1Standard, ExtensionsSanitize)
	is.NoError(err)
	is.Equal(1, strings.Count(decoded, "#INV#"))
	is.Contains(decoded, "Hello")
	is.Contains(decoded, "World")
	is.Equal("Hello#INV#World", decoded)
}

func TestStrictFailureIsTotal(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for _, input := range []string{"\u0080", "ok\u0099", "\x02", "\x7F", "🌍"} {
		out, err := Encode(input, V1Standard, CoreStrict)
		is.ErrorIs(err, ErrInvalidChar, "input %q", input)
		is.Empty(out)
	}
}

// Output length must equal ceil(7n/6) for the resolved index count, and
// decode must recover exactly n indices.
func TestBitPackingBoundaries(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for n := 1; n <= 64; n++ {
		input := strings.Repeat("a", n)

		encoded, err := Encode(input, V1Standard, CoreStrict)
		is.NoError(err)
		is.Len(encoded, EncodedLength(n))

		decoded, err := Decode(encoded, V1Standard, CoreStrict)
		is.NoError(err)
		is.Equal(input, decoded)
	}
}
