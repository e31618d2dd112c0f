// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl extracts interface metadata from GLSL shader source.
//
// The package recovers the uniform and attribute declarations of a shader
// by parsing its source text, without a GL context and without compiling
// anything. Comments are stripped first (quoted string literals are left
// untouched), then declarations of the form
//
//	uniform vec2 resolution;
//	uniform float weights[3];
//	attribute vec3 position, normal;
//
// are expanded into a flat, source-ordered list of named, typed variables.
// Array declarations expand element-wise: weights[3] yields weights[0],
// weights[1] and weights[2].
//
// The recognized type set is the closed GLSL 1.20 interface-type
// vocabulary (scalars, vectors, matrices and 1D/2D samplers). A
// declaration using any other type token is an error, not a skip:
// extraction is all-or-nothing.
package glsl
