package asc100

import "strings"

// A sentinel is one tokenizer output: a literal text run or a single marker
// code. Sentinels are built and consumed entirely within one encode call.
type sentinel struct {
	text   string
	marker byte
	isMark bool
}

// tokenize splits filtered text into sentinels. A '#' opens a candidate
// that is consumed through the next '#' inclusive; the candidate becomes a
// marker sentinel only when it matches the marker table exactly and the
// mode supports its code. Everything else (unknown names, wrong case, a
// '#' with no closing '#', or a marker the mode does not allow) stays in
// the surrounding literal run, and scanning resumes after the candidate.
//
// Adjacent markers resolve independently because each candidate consumes
// exactly up to its own closing '#'. Tokenization itself never fails.
func tokenize(input string, mode Mode) []sentinel {
	var out []sentinel
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			out = append(out, sentinel{text: text.String()})
			text.Reset()
		}
	}

	for i := 0; i < len(input); {
		c := input[i]
		if c != '#' {
			text.WriteByte(c)
			i++
			continue
		}

		end := strings.IndexByte(input[i+1:], '#')
		if end < 0 {
			// unterminated candidate, pure literal text
			text.WriteString(input[i:])
			break
		}

		candidate := input[i : i+end+2]
		if code, ok := markerCode(candidate); ok && mode.supportsIndex(code) {
			flush()
			out = append(out, sentinel{marker: code, isMark: true})
		} else {
			text.WriteString(candidate)
		}
		i += end + 2
	}

	flush()

	return out
}
