// asc100 is a demonstration command for the ASC100 codec. It encodes or
// decodes text from its arguments or stdin, can compare charset versions
// and strategies on sample payloads (--demo), and can push random token
// streams through the codec to report timings (--bench N).
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/josephcopenhaver/asc100"
	"github.com/josephcopenhaver/asc100/metrics"
	"github.com/josephcopenhaver/asc100/randtext"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var versionAliases = map[string]*asc100.Version{
	"v1": asc100.V1Standard,
	"v2": asc100.V2Numbers,
	"v3": asc100.V3Lowercase,
	"v4": asc100.V4URL,
}

func run() error {
	var (
		charsetName string
		filterName  string
		extensions  bool
		decode      bool
		demo        bool
		bench       int
		seed        uint64
	)

	flags := pflag.NewFlagSet("asc100", pflag.ContinueOnError)
	flags.StringVar(&charsetName, "charset", "v1", "charset version: v1, v2, v3 or v4")
	flags.StringVar(&filterName, "filter", "strict", "invalid character policy: strict, strip or sanitize")
	flags.BoolVar(&extensions, "extensions", false, "recognize #NAME# markers")
	flags.BoolVarP(&decode, "decode", "d", false, "decode instead of encode")
	flags.BoolVar(&demo, "demo", false, "compare versions and strategies on sample payloads")
	flags.IntVar(&bench, "bench", 0, "push N random token streams through the codec and report timings")
	flags.Uint64Var(&seed, "seed", 1, "seed for --bench payload generation")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	version, ok := versionAliases[charsetName]
	if !ok {
		version = asc100.VersionByName(charsetName)
	}
	if version == nil {
		return fmt.Errorf("unknown charset version %q", charsetName)
	}

	strategy, err := buildStrategy(filterName, extensions)
	if err != nil {
		return err
	}

	switch {
	case demo:
		return runDemo()
	case bench > 0:
		return runBench(version, strategy, bench, seed)
	}

	input, err := readInput(flags.Args())
	if err != nil {
		return err
	}

	if decode {
		out, err := asc100.Decode(input, version, strategy)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	out, err := asc100.Encode(input, version, strategy)
	if err != nil {
		return err
	}
	fmt.Println(out)

	return nil
}

func buildStrategy(filterName string, extensions bool) (asc100.Strategy, error) {
	var filter asc100.FilterPolicy

	switch filterName {
	case "strict":
		filter = asc100.StrictFilter{}
	case "strip":
		filter = asc100.StripFilter{}
	case "sanitize":
		filter = asc100.SanitizeFilter{}
	default:
		return asc100.Strategy{}, fmt.Errorf("unknown filter policy %q", filterName)
	}

	mode := asc100.Core
	if extensions {
		mode = asc100.Extensions
	}

	return asc100.Strategy{Filter: filter, Mode: mode}, nil
}

// readInput joins non-flag arguments, or reads stdin when there are none.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(data), "\n"), nil
}

var demoInputs = []struct {
	name string
	text string
}{
	{"basic ascii", "Hello, World!"},
	{"numeric heavy", "Data: 12345, Value: 67890"},
	{"source code", "fn test() { return 42; }"},
	{"url content", "https://example.com/path?query=value&foo=bar"},
	{"with markers", "Start #SSX# content #EOF# end"},
	{"invalid unicode", "Hello\u0080World"},
	{"whitespace heavy", "Text\t\nwith\r\nvarious\twhitespace"},
}

func runDemo() error {
	strategies := []struct {
		name string
		s    asc100.Strategy
	}{
		{"strict", asc100.CoreStrict},
		{"strip", asc100.CoreStrip},
		{"sanitize", asc100.ExtensionsSanitize},
		{"extensions", asc100.ExtensionsStrict},
	}

	for _, input := range demoInputs {
		fmt.Printf("input %-18s %q\n", input.name+":", input.text)

		for _, st := range strategies {
			encoded, result, err := metrics.Measure(input.text, func(s string) (string, error) {
				return asc100.Encode(s, asc100.V1Standard, st.s)
			})
			if err != nil {
				fmt.Printf("  %-10s error: %v\n", st.name, err)
				continue
			}

			decoded, err := asc100.Decode(encoded, asc100.V1Standard, st.s)
			if err != nil {
				fmt.Printf("  %-10s decode error: %v\n", st.name, err)
				continue
			}

			fmt.Printf("  %-10s %s -> %q\n", st.name, result.Summary(), decoded)
		}

		fmt.Println()
	}

	// charset comparison over a clean payload
	const sample = "Hello, World! 123"
	fmt.Printf("charset comparison for %q\n", sample)

	for _, v := range asc100.Versions {
		encoded, result, err := metrics.Measure(sample, func(s string) (string, error) {
			return asc100.Encode(s, v, asc100.CoreStrict)
		})
		if err != nil {
			return err
		}

		fmt.Printf("  %-20s %d chars, %s\n", v.Name, len(encoded), result.Summary())
	}

	return nil
}

func runBench(version *asc100.Version, strategy asc100.Strategy, n int, seed uint64) error {
	gen := randtext.New(seed)

	var inBytes, outBytes int

	timer := metrics.Start(0)
	for range n {
		payload := gen.TokenStream(16)

		encoded, err := asc100.Encode(payload, version, strategy)
		if err != nil {
			return err
		}

		decoded, err := asc100.Decode(encoded, version, strategy)
		if err != nil {
			return err
		}
		if decoded != payload {
			return fmt.Errorf("round trip mismatch on iteration payload %q", payload)
		}

		inBytes += len(payload)
		outBytes += len(encoded)
	}
	result := metrics.Result{
		InputLength:  inBytes,
		OutputLength: outBytes,
		Duration:     timer.Finish(outBytes).Duration,
	}

	fmt.Printf("%d round trips on %s: %s\n", n, version.Name, result.Summary())

	return nil
}
