package gloo

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gloo/glsl"
)

// Shader owns one GPU shader object and the GLSL source it is built from.
//
// The zero state holds no source and no GPU handle. SetSource installs
// source text (from a file or a literal string) and marks the shader as
// needing compilation; Compile allocates the handle on first use and
// compiles the current source; Destroy releases the handle and may be
// called any number of times.
type Shader struct {
	backend Backend
	kind    Kind
	handle  uint32
	code    string
	source  string // origin tag: "<string>" or the base name of the source file
	dirty   bool
}

// New creates a shader for the given stage. code may be empty (set the
// source later), a path to an existing file, or literal GLSL source; see
// SetSource for the dispatch rule.
func New(backend Backend, kind Kind, code string) (*Shader, error) {
	if kind != VertexShader && kind != FragmentShader {
		return nil, ErrInvalidShaderKind
	}
	s := &Shader{backend: backend, kind: kind}
	if code != "" {
		if err := s.SetSource(code); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewVertex creates a vertex shader. See New.
func NewVertex(backend Backend, code string) (*Shader, error) {
	return New(backend, VertexShader, code)
}

// NewFragment creates a fragment shader. See New.
func NewFragment(backend Backend, code string) (*Shader, error) {
	return New(backend, FragmentShader, code)
}

// SetSource replaces the shader source. When code names an existing
// regular file, the file's contents become the source and its base name
// the origin tag; otherwise code itself is the source, tagged "<string>".
// The existence check runs first, so callers cannot pass a path and have
// it silently compiled as source. Any previously compiled GPU state is
// marked stale until the next Compile.
func (s *Shader) SetSource(code string) error {
	if fi, err := os.Stat(code); err == nil && fi.Mode().IsRegular() {
		data, err := os.ReadFile(code)
		if err != nil {
			return fmt.Errorf("gloo: reading shader file %s: %w", code, err)
		}
		s.code = string(data)
		s.source = filepath.Base(code)
	} else {
		s.code = code
		s.source = "<string>"
	}
	s.dirty = true
	return nil
}

// Kind returns the shader stage.
func (s *Shader) Kind() Kind { return s.kind }

// Code returns the current shader source text.
func (s *Shader) Code() string { return s.code }

// Source returns the origin tag of the current source: the base name of
// the file it was read from, or "<string>" for literal source.
func (s *Shader) Source() string { return s.source }

// Handle returns the GPU shader object handle, or 0 before the first
// successful allocation. Higher layers use it to attach the shader to a
// program.
func (s *Shader) Handle() uint32 { return s.handle }

// NeedsCompile reports whether the source has changed since the last
// successful Compile.
func (s *Shader) NeedsCompile() bool { return s.dirty }

// Compile submits the current source to the backend and compiles it.
// It fails with ErrNoSource when no source is set and ErrShaderAllocation
// when the backend cannot allocate a shader object. A driver-reported
// failure comes back as a *CompileError carrying the offending line; the
// shader then stays stale until a fresh SetSource and Compile.
func (s *Shader) Compile() error {
	if s.code == "" {
		return ErrNoSource
	}

	if s.handle == 0 {
		s.handle = s.backend.CreateShader(s.kind)
		if s.handle == 0 {
			return ErrShaderAllocation
		}
	}

	s.backend.ShaderSource(s.handle, s.code)

	slog.Debug("GPU: creating shader", "kind", s.kind, "source", s.source)

	if !s.backend.CompileShader(s.handle) {
		log := s.backend.CompileLog(s.handle)
		line, message, err := parseDiagnostic(log)
		if err != nil {
			return err
		}
		return &CompileError{
			Kind:    s.kind,
			Source:  s.source,
			Line:    line,
			Message: message,
			code:    s.code,
		}
	}

	s.dirty = false
	return nil
}

// Destroy releases the GPU shader object. Without a live handle, or after
// a previous Destroy, it is a no-op; the backend never sees a double
// release.
func (s *Shader) Destroy() {
	if s.handle == 0 {
		return
	}
	slog.Debug("GPU: deleting shader", "kind", s.kind, "source", s.source)
	s.backend.DeleteShader(s.handle)
	s.handle = 0
}

// Uniforms returns the uniform variables declared in the current source,
// recomputed on every call. Available before compilation.
func (s *Shader) Uniforms() ([]glsl.Variable, error) {
	return glsl.Uniforms(s.code)
}

// Attributes returns the attribute variables declared in the current
// source, recomputed on every call. Available before compilation.
func (s *Shader) Attributes() ([]glsl.Variable, error) {
	return glsl.Attributes(s.code)
}
