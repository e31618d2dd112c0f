// Package gloo provides GPU shader objects with source-level introspection.
//
// A Shader owns a blob of GLSL source text, compiles it through a Backend
// (the graphics API boundary), reports compilation failures with source
// context, and extracts the uniforms and attributes declared in the source
// by parsing it — no compilation or GL context is needed for extraction.
//
// Example usage:
//
//	shader, err := gloo.NewVertex(opengl.Backend{}, "shader.vert")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shader.Destroy()
//
//	uniforms, err := shader.Uniforms() // works before Compile
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := shader.Compile(); err != nil {
//	    var cerr *gloo.CompileError
//	    if errors.As(err, &cerr) {
//	        fmt.Print(cerr.FormatWithContext())
//	    }
//	    log.Fatal(err)
//	}
//
// Source parsing lives in the glsl subpackage and is usable on its own;
// the real OpenGL backend lives in backend/opengl.
//
// A Shader is not safe for concurrent use. It owns at most one GPU shader
// object, released by Destroy; callers sharing a Shader across goroutines
// must serialize access externally.
package gloo

// Kind selects the shader stage.
type Kind int

// Supported shader stages. Constructing a Shader with any other value
// fails with ErrInvalidShaderKind.
const (
	VertexShader Kind = iota + 1
	FragmentShader
)

func (k Kind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "invalid"
}

// Backend is the graphics API boundary. The library drives it for shader
// object lifecycle and compilation; it never touches the API otherwise.
//
// Implementations translate Kind to their own stage constants and are free
// to require a current rendering context on the calling goroutine.
type Backend interface {
	// CreateShader allocates a shader object for the given stage,
	// returning 0 when the API refuses.
	CreateShader(kind Kind) uint32

	// ShaderSource replaces the source text of a shader object.
	ShaderSource(handle uint32, source string)

	// CompileShader compiles the shader object and reports success.
	CompileShader(handle uint32) bool

	// CompileLog returns the driver's diagnostic string for the last
	// compilation of the shader object.
	CompileLog(handle uint32) string

	// DeleteShader releases a shader object.
	DeleteShader(handle uint32)
}
