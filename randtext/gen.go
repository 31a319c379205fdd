package randtext

import (
	"fmt"
	"strings"
)

// token-stream generation for demos and benchmarks; the shapes mirror the
// "ns:key=value; key=value" streams the stream package transforms

var (
	namespaces = []string{"auth", "user", "sys", "net", "db", "app"}
	keyNames   = []string{"id", "name", "token", "host", "state", "path", "tag"}
	logLevels  = []string{"DEBUG", "INFO", "WARN", "ERROR"}
)

// Token returns a bare key=value token.
func (g *Generator) Token() string {
	return fmt.Sprintf("%s=%s", g.Pick(keyNames), g.Alnum(4+g.IntN(12)))
}

// NamespacedToken returns an ns:key=value token.
func (g *Generator) NamespacedToken() string {
	return fmt.Sprintf("%s:%s", g.Pick(namespaces), g.Token())
}

// TokenStream joins n tokens with "; ". Roughly half carry a namespace.
func (g *Generator) TokenStream(n int) string {
	toks := make([]string, n)

	for i := range toks {
		if g.IntN(2) == 0 {
			toks[i] = g.NamespacedToken()
			continue
		}
		toks[i] = g.Token()
	}

	return strings.Join(toks, "; ")
}

// LogLine returns one timestamped log-style line.
func (g *Generator) LogLine() string {
	return fmt.Sprintf("2026-01-%02dT%02d:%02d:%02dZ %s %s: %s",
		1+g.IntN(28), g.IntN(24), g.IntN(60), g.IntN(60),
		g.Pick(logLevels), g.Pick(namespaces), g.Alnum(8+g.IntN(24)))
}

// LogStream returns n log lines joined by newlines.
func (g *Generator) LogStream(n int) string {
	lines := make([]string, n)

	for i := range lines {
		lines[i] = g.LogLine()
	}

	return strings.Join(lines, "\n")
}
