package asc100

// Marker codes occupy the index space directly above the charset. A marker
// is written #NAME# in source text; under the Extensions mode the tokenizer
// folds that spelling into a single 7-bit code and decode re-expands it.
const (
	markerBase = 100
	markerMax  = 127
)

const (
	MarkerINV byte = iota + markerBase // invalid character placeholder
	MarkerEOF                          // end of file
	MarkerNL                           // newline hint
	MarkerV                            // variable placeholder
	MarkerQ                            // double quote
	MarkerE                            // escape / single quote
	MarkerX                            // control / validation
	MarkerSSX                          // start stream
	MarkerESX                          // end stream
	MarkerMEM                          // transmission metadata
	MarkerCTX                          // payload context
	MarkerFX                           // function / code block
	MarkerARG                          // arguments / parameters
	MarkerTR                           // trusted content
	MarkerDNT                          // do not trust
	MarkerBRK                          // break / separator
	MarkerHSO                          // handshake out
	MarkerHSI                          // handshake in
	MarkerACK                          // acknowledge

	// codes 119-127 are reserved and have no spelling
)

// markers is the bidirectional name/code table. It is tiny and rarely
// grows, so lookups are linear scans.
var markers = []struct {
	name string
	code byte
}{
	{"#INV#", MarkerINV},
	{"#EOF#", MarkerEOF},
	{"#NL#", MarkerNL},
	{"#V#", MarkerV},
	{"#Q#", MarkerQ},
	{"#E#", MarkerE},
	{"#X#", MarkerX},
	{"#SSX#", MarkerSSX},
	{"#ESX#", MarkerESX},
	{"#MEM#", MarkerMEM},
	{"#CTX#", MarkerCTX},
	{"#FX#", MarkerFX},
	{"#ARG#", MarkerARG},
	{"#TR#", MarkerTR},
	{"#DNT#", MarkerDNT},
	{"#BRK#", MarkerBRK},
	{"#HSO#", MarkerHSO},
	{"#HSI#", MarkerHSI},
	{"#ACK#", MarkerACK},
}

// markerCode returns the code for an exact #NAME# spelling.
func markerCode(name string) (byte, bool) {
	for _, m := range markers {
		if m.name == name {
			return m.code, true
		}
	}

	return 0, false
}

// markerName returns the #NAME# spelling for a code. Reserved codes have
// none.
func markerName(code byte) (string, bool) {
	for _, m := range markers {
		if m.code == code {
			return m.name, true
		}
	}

	return "", false
}

// IsMarkerCode reports whether an index addresses the marker space rather
// than the charset.
func IsMarkerCode(index byte) bool {
	return index >= markerBase && index <= markerMax
}

// MarkerName returns the #NAME# spelling of a marker code, or "" when the
// code is reserved or outside the marker space.
func MarkerName(code byte) string {
	name, _ := markerName(code)

	return name
}

// MarkerCode returns the code for a #NAME# spelling. The boolean is false
// for names not in the table; spellings are matched exactly, including
// case.
func MarkerCode(name string) (byte, bool) {
	return markerCode(name)
}
