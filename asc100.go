// A marker-aware ASC100 text codec.

// ASC100 maps a 100-character alphabet plus up to 28 out-of-band control
// markers onto a dense 7-bit index space and packs that index stream into a
// printable 64-symbol alphabet. The output carries no length header and no
// '=' style padding; any incompleteness is bit-level zero padding that is
// invisible in the symbol count. Round-trip fidelity under the chosen
// strategy is the only hard guarantee: the codec does not compress and does
// not accept non-ASCII payloads.

package asc100

// Version is a named permutation of the base charset together with its
// inverse lookup table. All versions share the marker table and the packing
// alphabet; they differ only in which characters occupy the low indices.
// Versions are immutable after construction and safe for concurrent use.
type Version struct {
	Name    string
	charset [charsetSize]byte
	lookup  [128]byte
}

func newVersion(name string, chars [charsetSize]byte) *Version {
	return &Version{
		Name:    name,
		charset: chars,
		lookup:  buildLookup(chars),
	}
}

//
// each shipped version is the base charset plus a fixed sequence of index
// and range swaps
//

var (
	// V1Standard swaps space and tilde so tilde takes index 0.
	V1Standard = newVersion("v1_standard", swapChars(baseCharset(), 0, 94))

	// V2Numbers moves the digits to the front for numeric-heavy text.
	V2Numbers = newVersion("v2_numbers_first", swapRanges(baseCharset(), 0, 16, 10))

	// V3Lowercase moves the lowercase letters to the front.
	V3Lowercase = newVersion("v3_lowercase_first", swapRanges(baseCharset(), 0, 65, 26))

	// V4URL moves the lowercase letters to the front and then performs a
	// second ten-index range swap behind them, favoring URL-like text.
	V4URL = newVersion("v4_url_optimized", swapRanges(swapRanges(baseCharset(), 0, 65, 26), 26, 42, 10))
)

// Versions lists every precomputed charset permutation.
var Versions = []*Version{V1Standard, V2Numbers, V3Lowercase, V4URL}

// VersionByName resolves a version by its registered name. It returns nil
// when no version carries the name.
func VersionByName(name string) *Version {
	for _, v := range Versions {
		if v.Name == name {
			return v
		}
	}

	return nil
}

// Charset returns the character at a charset index.
//
// invariants:
//
// - index < 100
func (v *Version) Charset(index byte) byte {
	return v.charset[index]
}

// Index returns the charset index of c, or the absent sentinel 0xFF when c
// is not part of this version's charset.
func (v *Version) Index(c byte) byte {
	if c >= 0x80 {
		return absent
	}

	return v.lookup[c]
}

// Encode encodes src with this version's charset. See Encode.
func (v *Version) Encode(src string, s Strategy) (string, error) {
	return Encode(src, v, s)
}

// Decode decodes src with this version's charset. See Decode.
func (v *Version) Decode(src string, s Strategy) (string, error) {
	return Decode(src, v, s)
}
