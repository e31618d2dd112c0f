package gloo

import (
	"errors"
	"fmt"
	"strings"
)

// Package errors.
var (
	// ErrInvalidShaderKind is returned when constructing a shader with a
	// kind other than VertexShader or FragmentShader.
	ErrInvalidShaderKind = errors.New("gloo: shader kind must be vertex or fragment")

	// ErrNoSource is returned by Compile when no source has been set.
	ErrNoSource = errors.New("gloo: no code has been given")

	// ErrShaderAllocation is returned when the backend cannot allocate a
	// shader object.
	ErrShaderAllocation = errors.New("gloo: cannot create shader object")

	// ErrUnknownDiagnosticFormat is returned when the driver's compile
	// log matches none of the known vendor formats.
	ErrUnknownDiagnosticFormat = errors.New("gloo: unknown GLSL error format")
)

// CompileError reports a driver-diagnosed compilation failure.
type CompileError struct {
	Kind    Kind
	Source  string // origin tag: "<string>" or a filename
	Line    int    // 1-based line number reported by the driver
	Message string

	code string // shader text the driver saw, for context rendering
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gloo: %s shader (%s):%d: %s", e.Kind, e.Source, e.Line, e.Message)
}

// FormatWithContext renders the error followed by a window of up to three
// source lines either side of the offending line, clamped to the source
// bounds. Each line carries its number, the offending line is marked, and
// ellipsis markers show where the window cuts the source short.
func (e *CompileError) FormatWithContext() string {
	lines := strings.Split(e.code, "\n")

	lineno := e.Line - 1 // zero-based index into lines
	if lineno < 0 {
		lineno = 0
	}
	if lineno >= len(lines) {
		lineno = len(lines) - 1
	}
	start := lineno - 3
	if start < 0 {
		start = 0
	}
	end := lineno + 4
	if end > len(lines) {
		end = len(lines)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "error: %s\n", e.Message)
	fmt.Fprintf(&sb, " --> %s shader (%s), line %d\n", e.Kind, e.Source, e.Line)
	if start > 0 {
		sb.WriteString(" ...\n")
	}
	for i := start; i < end; i++ {
		marker := byte(' ')
		if i == lineno {
			marker = '>'
		}
		fmt.Fprintf(&sb, "%c%3d| %s\n", marker, i+1, lines[i])
	}
	if end < len(lines) {
		sb.WriteString(" ...\n")
	}
	return sb.String()
}
