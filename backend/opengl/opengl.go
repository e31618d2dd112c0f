// Package opengl implements the gloo.Backend boundary on top of OpenGL
// via go-gl.
//
// All methods require a current OpenGL context on the calling goroutine;
// window and context setup is the caller's responsibility (see
// cmd/gloocheck for a GLFW example).
package opengl

import (
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/gogpu/gloo"
)

// Backend drives OpenGL shader objects. The zero value is ready to use
// once a context is current and gl.Init has run.
type Backend struct{}

var _ gloo.Backend = Backend{}

func shaderType(kind gloo.Kind) uint32 {
	if kind == gloo.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CreateShader allocates a GL shader object, returning 0 when the driver
// refuses.
func (Backend) CreateShader(kind gloo.Kind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource replaces the source of the shader object.
func (Backend) ShaderSource(handle uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
}

// CompileShader compiles the shader object and reports success.
func (Backend) CompileShader(handle uint32) bool {
	gl.CompileShader(handle)
	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// CompileLog returns the driver's info log for the shader object.
func (Backend) CompileLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// DeleteShader releases the shader object.
func (Backend) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}
