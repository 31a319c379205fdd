// Package stream adapts the codec to token streams of the form
// "key=value; key=value". Values are encoded or decoded individually while
// the stream structure stays intact, so transformed streams keep flowing
// through ordinary token pipelines. Encoded pairs are marked either on the
// key ("content_asc=...") or on the value ("content=...:a") so decoders can
// find them again.
package stream

import (
	"fmt"
	"slices"
	"strings"

	"github.com/josephcopenhaver/asc100"
)

// Mode selects how a Transformer marks and detects encoded values.
type Mode uint8

const (
	// EncodeKeyMarked encodes values and appends "_asc" to keys.
	EncodeKeyMarked Mode = iota
	// EncodeValueMarked encodes values and appends ":a" to values.
	EncodeValueMarked
	// Decode restores values whose key or value carries an encoding mark
	// and passes unmarked pairs through untouched.
	Decode
	// Bidirectional decodes marked pairs and encodes unmarked ones.
	Bidirectional
)

const (
	keyMark   = "_asc"
	valueMark = ":a"
)

// Transformer applies the codec to individual token values. The zero
// Version defaults to the standard charset; the zero Strategy is the
// strict core strategy.
type Transformer struct {
	Version  *asc100.Version
	Strategy asc100.Strategy
	Mode     Mode
}

// New returns a transformer over the standard charset with the strict core
// strategy.
func New(mode Mode) *Transformer {
	return &Transformer{
		Version:  asc100.V1Standard,
		Strategy: asc100.CoreStrict,
		Mode:     mode,
	}
}

func (tr *Transformer) version() *asc100.Version {
	if tr.Version == nil {
		return asc100.V1Standard
	}

	return tr.Version
}

// TransformPair rewrites one key/value pair according to the mode.
func (tr *Transformer) TransformPair(key, value string) (string, string, error) {
	switch tr.Mode {
	case EncodeKeyMarked:
		encoded, err := asc100.Encode(value, tr.version(), tr.Strategy)
		if err != nil {
			return "", "", err
		}
		return key + keyMark, encoded, nil
	case EncodeValueMarked:
		encoded, err := asc100.Encode(value, tr.version(), tr.Strategy)
		if err != nil {
			return "", "", err
		}
		return key, encoded + valueMark, nil
	case Decode:
		return tr.decodePair(key, value)
	case Bidirectional:
		if marked(key, value) {
			return tr.decodePair(key, value)
		}
		encoded, err := asc100.Encode(value, tr.version(), tr.Strategy)
		if err != nil {
			return "", "", err
		}
		return key + keyMark, encoded, nil
	default:
		return "", "", fmt.Errorf("stream: unknown mode %d", tr.Mode)
	}
}

func marked(key, value string) bool {
	return strings.HasSuffix(key, keyMark) || strings.HasSuffix(value, valueMark)
}

func (tr *Transformer) decodePair(key, value string) (string, string, error) {
	if !marked(key, value) {
		return key, value, nil
	}

	cleanKey := strings.TrimSuffix(key, keyMark)
	cleanValue := strings.TrimSuffix(value, valueMark)

	decoded, err := asc100.Decode(cleanValue, tr.version(), tr.Strategy)
	if err != nil {
		return "", "", err
	}

	return cleanKey, decoded, nil
}

// TransformStream rewrites every key=value token in a ";"-separated
// stream. Empty tokens are skipped; a token without '=' is an error.
func (tr *Transformer) TransformStream(input string) (string, error) {
	return tr.transform(input, nil)
}

// TransformSelective rewrites only tokens whose bare key, namespace
// stripped, appears in keys. Other tokens pass through untouched.
func (tr *Transformer) TransformSelective(input string, keys []string) (string, error) {
	return tr.transform(input, keys)
}

func (tr *Transformer) transform(input string, keys []string) (string, error) {
	var out []string

	for tok := range strings.SplitSeq(input, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return "", fmt.Errorf("stream: token %q missing '='", tok)
		}

		if keys != nil && !slices.Contains(keys, bareKey(key)) {
			out = append(out, tok)
			continue
		}

		k, v, err := tr.TransformPair(key, value)
		if err != nil {
			return "", err
		}

		out = append(out, k+"="+v)
	}

	return strings.Join(out, "; "), nil
}

// bareKey strips an optional "ns:" prefix.
func bareKey(key string) string {
	if _, k, ok := strings.Cut(key, ":"); ok {
		return k
	}

	return key
}

// Gate transforms the stream only when it is at least min bytes long;
// shorter streams pass through unchanged.
func (tr *Transformer) Gate(input string, min int) (string, error) {
	if len(input) < min {
		return input, nil
	}

	return tr.TransformStream(input)
}
