// A marker-aware ASC100 text codec.

package asc100

const (
	// charsetSize is the number of addressable characters in every charset
	// permutation. The index space above it, 100-127, belongs to markers.
	charsetSize = 100

	// absent marks ASCII code points with no charset index. It is outside
	// every valid index range and therefore never collides with real data.
	absent = 0xFF
)

// baseCharset lays out printable ASCII 32-126 at indices 0-94 followed by
// tab, newline, carriage return, NUL and one reserved control byte. Every
// shipped version is a permutation of this sequence.
func baseCharset() [charsetSize]byte {
	var chars [charsetSize]byte

	i := 0
	for c := byte(' '); c <= '~'; c++ {
		chars[i] = c
		i++
	}

	chars[95] = '\t'
	chars[96] = '\n'
	chars[97] = '\r'
	chars[98] = 0x00
	chars[99] = 0x01

	return chars
}

func swapChars(chars [charsetSize]byte, i, j int) [charsetSize]byte {
	chars[i], chars[j] = chars[j], chars[i]

	return chars
}

// swapRanges exchanges the equal-length index ranges starting at a and b.
//
// invariants:
//
// - the ranges do not overlap
func swapRanges(chars [charsetSize]byte, a, b, n int) [charsetSize]byte {
	for i := range n {
		chars[a+i], chars[b+i] = chars[b+i], chars[a+i]
	}

	return chars
}

// buildLookup inverts a charset into a 128-entry ASCII table. Code points
// not present in the charset map to the absent sentinel, so building a
// lookup table never fails.
func buildLookup(chars [charsetSize]byte) [128]byte {
	var table [128]byte

	for i := range table {
		table[i] = absent
	}

	for i, c := range chars {
		table[c] = byte(i)
	}

	return table
}

//
// the packing alphabet is a standard-layout 64-symbol alphabet; it is a
// second, independent mapping and has nothing to do with the charset order
//

var packTab, unpackTab = func() ([64]byte, [128]byte) {
	const packChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	var enc [64]byte
	var dec [128]byte

	for i := range dec {
		dec[i] = absent
	}

	for i := range packChars {
		enc[i] = packChars[i]
		dec[packChars[i]] = byte(i)
	}

	return enc, dec
}()
