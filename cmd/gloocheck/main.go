// Command gloocheck inspects GLSL shader files.
//
// It lists the uniforms and attributes declared in each file and, with
// --compile, compiles every file against a real OpenGL context created
// through a hidden GLFW window.
//
// Usage:
//
//	gloocheck shader.vert shader.frag
//	gloocheck --compile --kind=fragment effect.glsl
package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/loov/hrtime"

	"github.com/gogpu/gloo"
	"github.com/gogpu/gloo/backend/opengl"
	"github.com/gogpu/gloo/glsl"
)

var cli struct {
	Compile bool     `help:"Compile each shader against a real OpenGL context."`
	Kind    string   `help:"Force the shader kind instead of guessing from the extension." enum:"auto,vertex,fragment" default:"auto"`
	NoColor bool     `help:"Disable colored output."`
	Files   []string `arg:"" type:"existingfile" help:"Shader files to check."`
}

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("gloocheck"),
		kong.Description("Inspect and validate GLSL shader files."),
	)
	if cli.NoColor {
		color.NoColor = true
	}

	var backend gloo.Backend
	if cli.Compile {
		terminate, err := initContext()
		kctx.FatalIfErrorf(err)
		defer terminate()
		backend = opengl.Backend{}
	}

	failed := 0
	for _, file := range cli.Files {
		if !check(backend, file) {
			failed++
		}
	}
	if failed > 0 {
		kctx.Exit(1)
	}
}

// kindOf picks the shader stage for a file: the --kind flag when given,
// otherwise the extension (.frag/.fs mean fragment, everything else
// vertex).
func kindOf(file string) gloo.Kind {
	switch cli.Kind {
	case "vertex":
		return gloo.VertexShader
	case "fragment":
		return gloo.FragmentShader
	}
	switch filepath.Ext(file) {
	case ".frag", ".fs":
		return gloo.FragmentShader
	default:
		return gloo.VertexShader
	}
}

func check(backend gloo.Backend, file string) bool {
	shader, err := gloo.New(backend, kindOf(file), file)
	if err != nil {
		color.Red("%s: %v", file, err)
		return false
	}
	defer shader.Destroy()

	color.Cyan("%s (%s shader)", file, shader.Kind())

	uniforms, err := shader.Uniforms()
	if err != nil {
		color.Red("  %v", err)
		return false
	}
	attributes, err := shader.Attributes()
	if err != nil {
		color.Red("  %v", err)
		return false
	}
	printVariables("uniforms", uniforms)
	printVariables("attributes", attributes)

	if !cli.Compile {
		return true
	}

	start := hrtime.Now()
	if err := shader.Compile(); err != nil {
		var cerr *gloo.CompileError
		if errors.As(err, &cerr) {
			color.Red("  compile failed:")
			fmt.Print(cerr.FormatWithContext())
		} else {
			color.Red("  compile failed: %v", err)
		}
		return false
	}
	color.Green("  compiled in %v", hrtime.Since(start))
	return true
}

func printVariables(label string, vars []glsl.Variable) {
	if len(vars) == 0 {
		fmt.Printf("  %s: none\n", label)
		return
	}
	fmt.Printf("  %s:\n", label)
	for _, v := range vars {
		fmt.Printf("    %-10s %s\n", v.Type, v.Name)
	}
}

// initContext creates a hidden GLFW window with a core-profile context
// and makes it current. The returned function tears everything down.
func initContext() (func(), error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(64, 64, "gloocheck", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating context window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	return func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}
