// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import (
	"fmt"
	"regexp"
	"strconv"
)

// Variable is one extracted interface variable. An array declaration
// contributes one Variable per element, named name[0] through name[N-1].
type Variable struct {
	Name string
	Type GLType
}

// The declaration patterns are deliberately permissive about the name
// list (any run of identifier characters, commas, brackets and spaces up
// to the semicolon) and strict about the qualifier keyword, the type
// token and the terminating semicolon. The name list is parsed by namePat
// in a second stage.
var (
	uniformPat   = regexp.MustCompile(`\buniform\s+(\w+)\s+([\w,\[\] ]+);`)
	attributePat = regexp.MustCompile(`\battribute\s+(\w+)\s+([\w,\[\] ]+);`)
	namePat      = regexp.MustCompile(`(\w+)\s*(\[(\d+)\])?`)
)

// Uniforms returns the uniform variables declared in source, in
// declaration order. Comments are stripped first.
func Uniforms(source string) ([]Variable, error) {
	return extract(uniformPat, source)
}

// Attributes returns the attribute variables declared in source, in
// declaration order. Comments are stripped first.
func Attributes(source string) ([]Variable, error) {
	return extract(attributePat, source)
}

// extract runs the two-stage declaration parse. Stage one finds every
// `<qualifier> <type> <names>;` declaration, stage two walks each name
// list left to right, expanding name[N] into N indexed entries. The first
// unknown type or zero array size aborts the whole extraction.
func extract(decl *regexp.Regexp, source string) ([]Variable, error) {
	var vars []Variable
	code := StripComments(source)
	for _, m := range decl.FindAllStringSubmatch(code, -1) {
		gtype, ok := TypeFromName(m[1])
		if !ok {
			return nil, &UnknownTypeError{Name: m[1]}
		}
		for _, nm := range namePat.FindAllStringSubmatch(m[2], -1) {
			name := nm[1]
			if nm[3] == "" {
				vars = append(vars, Variable{Name: name, Type: gtype})
				continue
			}
			size, err := strconv.Atoi(nm[3])
			if err != nil {
				return nil, fmt.Errorf("glsl: array size of %s out of range: %w", name, err)
			}
			if size == 0 {
				return nil, &InvalidArraySizeError{Name: name}
			}
			for i := 0; i < size; i++ {
				vars = append(vars, Variable{
					Name: fmt.Sprintf("%s[%d]", name, i),
					Type: gtype,
				})
			}
		}
	}
	return vars, nil
}
