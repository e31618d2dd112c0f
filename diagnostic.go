package gloo

import (
	"fmt"
	"regexp"
	"strconv"
)

// Known vendor formats for GLSL compile diagnostics. Matching is anchored
// at the start of the log and tried in order; the first hit wins.
var diagnosticFormats = []struct {
	pattern *regexp.Regexp
	line    int // submatch holding the line number
	message int // submatch holding the message
}{
	// NVIDIA
	// 0(7): error C1008: undefined variable "MV"
	{regexp.MustCompile(`^(\d+)\((\d+)\):\s(.*)`), 2, 3},

	// ATI / Intel
	// ERROR: 0:131: '{' : syntax error parse error
	{regexp.MustCompile(`^ERROR:\s(\d+):(\d+):\s(.*)`), 2, 3},

	// Nouveau
	// 0:28(16): error: syntax error, unexpected ')', expecting '('
	{regexp.MustCompile(`^(\d+):(\d+)\((\d+)\):\s(.*)`), 2, 4},
}

// parseDiagnostic extracts the line number and message from a driver
// compile log. The format set is exhaustive, not heuristic: a log that
// matches no known vendor format is an error.
func parseDiagnostic(log string) (int, string, error) {
	for _, f := range diagnosticFormats {
		m := f.pattern.FindStringSubmatch(log)
		if m == nil {
			continue
		}
		line, err := strconv.Atoi(m[f.line])
		if err != nil {
			return 0, "", fmt.Errorf("%w: line number in %q: %v", ErrUnknownDiagnosticFormat, log, err)
		}
		return line, m[f.message], nil
	}
	return 0, "", fmt.Errorf("%w: %q", ErrUnknownDiagnosticFormat, log)
}
