// Decoding tolerates the zero bits the encoder appends to reach a multiple
// of 6: any trailing group shorter than 7 bits is padding, not data, and is
// discarded. Marker codes always decode to their #NAME# spelling; the old
// behavior of emitting raw control bytes for codes 100-127 is not carried
// because the two representations are incompatible on the same wire bytes.

package asc100

import "strings"

// DecodedLength returns the number of complete 7-bit indices recoverable
// from n packed characters: floor(6n/7). It returns -1 if n is negative.
//
// The decoded character count can exceed this: each marker index expands to
// its multi-character #NAME# spelling.
func DecodedLength(n int) int {
	if n < 0 {
		return -1
	}

	return n * 6 / 7
}

// Decode reverses Encode. Each packed character maps back to 6 bits, the
// bit stream is cut into 7-bit indices, and every index resolves through
// the version's charset or, when the strategy's mode allows it, the marker
// table. Decoding is all-or-nothing: on error no partial output is
// returned.
func Decode(src string, v *Version, s Strategy) (string, error) {
	indices, err := unpackIndices(src)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(indices))

	for _, idx := range indices {
		if idx < charsetSize {
			b.WriteByte(v.charset[idx])
			continue
		}

		if !s.Mode.supportsIndex(idx) {
			return "", &InvalidIndexError{Index: idx}
		}

		name, ok := markerName(idx)
		if !ok {
			// reserved codes 119-127 have no spelling
			return "", &InvalidIndexError{Index: idx}
		}

		b.WriteString(name)
	}

	return b.String(), nil
}

// unpackIndices maps packed characters back to 6-bit groups and re-chunks
// the bit stream into 7-bit indices, dropping the trailing short group.
func unpackIndices(src string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	dst := make([]byte, 0, DecodedLength(len(src)))

	var acc, nbits uint
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c >= 0x80 || unpackTab[c] == absent {
			return nil, &InvalidPackedCharError{Char: c}
		}

		acc = acc<<6 | uint(unpackTab[c])
		nbits += 6

		if nbits >= 7 {
			nbits -= 7
			dst = append(dst, byte((acc>>nbits)&0x7F))
		}
	}

	return dst, nil
}
