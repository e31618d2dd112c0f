// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"errors"
	"reflect"
	"testing"
)

func TestUniformsSingle(t *testing.T) {
	vars, err := Uniforms("uniform float a;")
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expected := []Variable{{Name: "a", Type: Float}}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

func TestUniformsArray(t *testing.T) {
	vars, err := Uniforms("uniform float a[3];")
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expected := []Variable{
		{Name: "a[0]", Type: Float},
		{Name: "a[1]", Type: Float},
		{Name: "a[2]", Type: Float},
	}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

func TestUniformsNameList(t *testing.T) {
	vars, err := Uniforms("uniform vec2 a, b;")
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expected := []Variable{
		{Name: "a", Type: FloatVec2},
		{Name: "b", Type: FloatVec2},
	}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

// TestUniformsWhitespaceVariations checks that array expansion does not
// depend on spacing around the brackets or the semicolon.
func TestUniformsWhitespaceVariations(t *testing.T) {
	expected := []Variable{
		{Name: "a[0]", Type: Float},
		{Name: "a[1]", Type: Float},
	}
	sources := []string{
		"uniform float a[2];",
		"uniform  float   a[2] ;",
		"uniform float a [2];",
		"uniform\nfloat\na[2];",
	}

	for _, source := range sources {
		vars, err := Uniforms(source)
		if err != nil {
			t.Errorf("Uniforms(%q) failed: %v", source, err)
			continue
		}
		if !reflect.DeepEqual(vars, expected) {
			t.Errorf("Uniforms(%q) = %v, want %v", source, vars, expected)
		}
	}
}

func TestUniformsDeclarationOrder(t *testing.T) {
	source := `
uniform mat4 projection;
uniform vec3 color, offset;
uniform sampler2D texture[2];
`
	vars, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expected := []Variable{
		{Name: "projection", Type: FloatMat4},
		{Name: "color", Type: FloatVec3},
		{Name: "offset", Type: FloatVec3},
		{Name: "texture[0]", Type: Sampler2D},
		{Name: "texture[1]", Type: Sampler2D},
	}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

func TestUniformsZeroArraySize(t *testing.T) {
	_, err := Uniforms("uniform float a[0];")
	var sizeErr *InvalidArraySizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected InvalidArraySizeError, got %v", err)
	}
	if sizeErr.Name != "a" {
		t.Errorf("error names %q, want %q", sizeErr.Name, "a")
	}
}

func TestUniformsUnknownType(t *testing.T) {
	_, err := Uniforms("uniform foo a;")
	var typeErr *UnknownTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if typeErr.Name != "foo" {
		t.Errorf("error names %q, want %q", typeErr.Name, "foo")
	}
}

// TestUniformsAllOrNothing checks that a bad declaration poisons the
// whole extraction, even when valid declarations precede it.
func TestUniformsAllOrNothing(t *testing.T) {
	source := "uniform float good;\nuniform foo bad;"
	vars, err := Uniforms(source)
	if err == nil {
		t.Fatalf("expected error, got %v", vars)
	}
}

func TestUniformsIgnoreComments(t *testing.T) {
	source := `
// uniform float dead;
/* uniform vec2 buried; */
uniform float live;
`
	vars, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expected := []Variable{{Name: "live", Type: Float}}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

func TestUniformsRepeatedDeclarations(t *testing.T) {
	source := "uniform float a;\nuniform float a;"
	vars, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	// Duplicates are not deduplicated; the GPU decides their legality.
	if len(vars) != 2 {
		t.Errorf("got %d variables, want 2", len(vars))
	}
}

func TestAttributes(t *testing.T) {
	source := `
attribute vec3 position;
attribute vec2 uv[2];
uniform float notAnAttribute;
`
	vars, err := Attributes(source)
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	expected := []Variable{
		{Name: "position", Type: FloatVec3},
		{Name: "uv[0]", Type: FloatVec2},
		{Name: "uv[1]", Type: FloatVec2},
	}
	if !reflect.DeepEqual(vars, expected) {
		t.Errorf("got %v, want %v", vars, expected)
	}
}

func TestAttributesZeroArraySize(t *testing.T) {
	_, err := Attributes("attribute float a[0];")
	var sizeErr *InvalidArraySizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected InvalidArraySizeError, got %v", err)
	}
}

// TestExtractionIdempotent checks that repeated extraction over unchanged
// source yields identical ordered lists.
func TestExtractionIdempotent(t *testing.T) {
	source := `
uniform mat4 model, view;
attribute vec3 position;
uniform float weights[4];
`
	first, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	second, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed on second run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not idempotent: %v vs %v", first, second)
	}
}

func TestUniformsInRealisticShader(t *testing.T) {
	source := `
#version 120
uniform mat4 u_projection;   // projection matrix
uniform sampler2D u_texture; /* bound texture */
attribute vec2 a_position;
attribute vec2 a_texcoord;
varying vec2 v_texcoord;
void main() {
    v_texcoord = a_texcoord;
    gl_Position = u_projection * vec4(a_position, 0.0, 1.0);
}
`
	uniforms, err := Uniforms(source)
	if err != nil {
		t.Fatalf("Uniforms failed: %v", err)
	}
	expectedUniforms := []Variable{
		{Name: "u_projection", Type: FloatMat4},
		{Name: "u_texture", Type: Sampler2D},
	}
	if !reflect.DeepEqual(uniforms, expectedUniforms) {
		t.Errorf("uniforms = %v, want %v", uniforms, expectedUniforms)
	}

	attributes, err := Attributes(source)
	if err != nil {
		t.Fatalf("Attributes failed: %v", err)
	}
	expectedAttributes := []Variable{
		{Name: "a_position", Type: FloatVec2},
		{Name: "a_texcoord", Type: FloatVec2},
	}
	if !reflect.DeepEqual(attributes, expectedAttributes) {
		t.Errorf("attributes = %v, want %v", attributes, expectedAttributes)
	}
}
