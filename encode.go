package asc100

// EncodedLength returns the number of packed characters produced for n
// 7-bit indices: ceil(7n/6). It returns -1 if n is negative.
//
// The index count is not generally the source character count: markers
// collapse multi-character spellings into one index each, and filter
// policies may drop or replace characters.
func EncodedLength(n int) int {
	if n < 0 {
		return -1
	}

	return (n*7 + 5) / 6
}

// Encode renders text as a string over the packing alphabet. The strategy's
// filter policy runs first over the raw input, the tokenizer splits the
// filtered text into sentinels, each sentinel resolves to 7-bit indices,
// and the bit packer serializes them. Encoding is all-or-nothing: on error
// no partial output is returned.
func Encode(src string, v *Version, s Strategy) (string, error) {
	filtered, err := s.filter(src)
	if err != nil {
		return "", err
	}

	indices, err := resolveIndices(filtered, v, s.Mode)
	if err != nil {
		return "", err
	}

	return packIndices(indices), nil
}

// resolveIndices flattens sentinels into the 7-bit index stream. Literal
// runs resolve per character through the version's lookup table; marker
// sentinels contribute their code directly.
func resolveIndices(filtered string, v *Version, mode Mode) ([]byte, error) {
	indices := make([]byte, 0, len(filtered))

	for _, sn := range tokenize(filtered, mode) {
		if sn.isMark {
			indices = append(indices, sn.marker)
			continue
		}

		for i := 0; i < len(sn.text); i++ {
			c := sn.text[i]
			if c >= 0x80 {
				return nil, &NonASCIIError{Rune: rune(c)}
			}

			idx := v.lookup[c]
			if idx == absent {
				return nil, &InvalidCharError{Char: rune(c)}
			}

			indices = append(indices, idx)
		}
	}

	return indices, nil
}

// packIndices emits each index as 7 bits, most significant bit first,
// zero-pads the bit stream to a multiple of 6 and maps every 6-bit group
// through the packing alphabet.
func packIndices(indices []byte) string {
	if len(indices) == 0 {
		return ""
	}

	dst := make([]byte, 0, EncodedLength(len(indices)))

	var acc, nbits uint
	for _, idx := range indices {
		acc = acc<<7 | uint(idx&0x7F)
		nbits += 7

		for nbits >= 6 {
			nbits -= 6
			dst = append(dst, packTab[(acc>>nbits)&0x3F])
		}
	}

	if nbits > 0 {
		dst = append(dst, packTab[(acc<<(6-nbits))&0x3F])
	}

	return string(dst)
}
