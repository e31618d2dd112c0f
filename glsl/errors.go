// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "fmt"

// UnknownTypeError reports a uniform or attribute declaration whose type
// token is outside the recognized GLSL type set.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("glsl: unknown type %q", e.Name)
}

// InvalidArraySizeError reports an interface array declared with size
// zero. The uniform wording applies to attribute arrays as well.
type InvalidArraySizeError struct {
	Name string
}

func (e *InvalidArraySizeError) Error() string {
	return fmt.Sprintf("glsl: size of uniform array %s cannot be zero", e.Name)
}
