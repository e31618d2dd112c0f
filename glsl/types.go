// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "github.com/go-gl/mathgl/mgl32"

// GLType identifies the declared type of a shader interface variable.
type GLType int

// The closed set of interface variable types. A declaration using a type
// token outside this set fails extraction with UnknownTypeError.
const (
	Float GLType = iota + 1
	FloatVec2
	FloatVec3
	FloatVec4
	Int
	IntVec2
	IntVec3
	IntVec4
	Bool
	BoolVec2
	BoolVec3
	BoolVec4
	FloatMat2
	FloatMat3
	FloatMat4
	Sampler1D
	Sampler2D
)

// typeNames maps GLSL type tokens to their tags. The table is fixed:
// unknown tokens are a modeled error, never a silent default.
var typeNames = map[string]GLType{
	"float":     Float,
	"vec2":      FloatVec2,
	"vec3":      FloatVec3,
	"vec4":      FloatVec4,
	"int":       Int,
	"ivec2":     IntVec2,
	"ivec3":     IntVec3,
	"ivec4":     IntVec4,
	"bool":      Bool,
	"bvec2":     BoolVec2,
	"bvec3":     BoolVec3,
	"bvec4":     BoolVec4,
	"mat2":      FloatMat2,
	"mat3":      FloatMat3,
	"mat4":      FloatMat4,
	"sampler1D": Sampler1D,
	"sampler2D": Sampler2D,
}

// TypeFromName resolves a GLSL type token to its tag. ok is false for
// tokens outside the recognized set.
func TypeFromName(name string) (GLType, bool) {
	t, ok := typeNames[name]
	return t, ok
}

// String returns the GLSL spelling of the type.
func (t GLType) String() string {
	switch t {
	case Float:
		return "float"
	case FloatVec2:
		return "vec2"
	case FloatVec3:
		return "vec3"
	case FloatVec4:
		return "vec4"
	case Int:
		return "int"
	case IntVec2:
		return "ivec2"
	case IntVec3:
		return "ivec3"
	case IntVec4:
		return "ivec4"
	case Bool:
		return "bool"
	case BoolVec2:
		return "bvec2"
	case BoolVec3:
		return "bvec3"
	case BoolVec4:
		return "bvec4"
	case FloatMat2:
		return "mat2"
	case FloatMat3:
		return "mat3"
	case FloatMat4:
		return "mat4"
	case Sampler1D:
		return "sampler1D"
	case Sampler2D:
		return "sampler2D"
	}
	return "unknown"
}

// Components returns the number of scalar components the type occupies.
// Samplers count as one (the texture unit).
func (t GLType) Components() int {
	switch t {
	case Float, Int, Bool, Sampler1D, Sampler2D:
		return 1
	case FloatVec2, IntVec2, BoolVec2:
		return 2
	case FloatVec3, IntVec3, BoolVec3:
		return 3
	case FloatVec4, IntVec4, BoolVec4, FloatMat2:
		return 4
	case FloatMat3:
		return 9
	case FloatMat4:
		return 16
	}
	return 0
}

// GoValue returns the zero value of the Go type that holds one variable of
// this type: float32 and mgl32 vectors/matrices for the float family,
// int32 vectors for the int family and samplers, bool vectors for the bool
// family. Returns nil for an invalid tag.
func (t GLType) GoValue() any {
	switch t {
	case Float:
		return float32(0)
	case FloatVec2:
		return mgl32.Vec2{}
	case FloatVec3:
		return mgl32.Vec3{}
	case FloatVec4:
		return mgl32.Vec4{}
	case Int, Sampler1D, Sampler2D:
		return int32(0)
	case IntVec2:
		return [2]int32{}
	case IntVec3:
		return [3]int32{}
	case IntVec4:
		return [4]int32{}
	case Bool:
		return false
	case BoolVec2:
		return [2]bool{}
	case BoolVec3:
		return [3]bool{}
	case BoolVec4:
		return [4]bool{}
	case FloatMat2:
		return mgl32.Mat2{}
	case FloatMat3:
		return mgl32.Mat3{}
	case FloatMat4:
		return mgl32.Mat4{}
	}
	return nil
}
