// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package softgpu

import (
	"fmt"
	"regexp"
	"strings"
)

// variable is a global in, out or uniform declaration.
type variable struct {
	qual  string
	typ   string
	name  string
	array bool
	line  int
}

// shader is the checked form of one shader stage.
type shader struct {
	src      string
	hasMain  bool
	ins      []variable
	outs     []variable
	uniforms []variable
}

var (
	declRe = regexp.MustCompile(`(?m)^[ \t]*(?:layout[ \t]*\([^)]*\)[ \t]*)?(?:(?:flat|smooth|noperspective|centroid|patch)[ \t]+)*(in|out|uniform)[ \t]+(?:(?:lowp|mediump|highp)[ \t]+)?(\w+)[ \t]+(\w+)[ \t]*(\[[^\]]*\])?[ \t]*;`)
	mainRe = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(?:void)?\s*\)`)
)

var directives = map[string]bool{
	"version": true, "define": true, "undef": true, "if": true, "ifdef": true,
	"ifndef": true, "else": true, "elif": true, "endif": true, "extension": true,
	"pragma": true, "line": true, "error": true,
}

var glslTypes = map[string]bool{}

func init() {
	for _, t := range []string{"float", "int", "uint", "bool", "double", "sampler2D", "sampler3D", "samplerCube"} {
		glslTypes[t] = true
	}
	for _, p := range []string{"", "i", "u", "b", "d"} {
		for n := 2; n <= 4; n++ {
			glslTypes[fmt.Sprintf("%svec%d", p, n)] = true
		}
	}
	for n := 2; n <= 4; n++ {
		glslTypes[fmt.Sprintf("mat%d", n)] = true
		for m := 2; m <= 4; m++ {
			glslTypes[fmt.Sprintf("mat%dx%d", n, m)] = true
		}
	}
}

// stripComments replaces comments with spaces, keeping newlines,
// so that offsets in the result match the original source.
func stripComments(src string) string {
	b := []byte(src)
	for i := 0; i < len(b); i++ {
		switch {
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '/':
			for ; i < len(b) && b[i] != '\n'; i++ {
				b[i] = ' '
			}
		case b[i] == '/' && i+1 < len(b) && b[i+1] == '*':
			b[i], b[i+1] = ' ', ' '
			for i += 2; i < len(b); i++ {
				if b[i] == '*' && i+1 < len(b) && b[i+1] == '/' {
					b[i], b[i+1] = ' ', ' '
					i++
					break
				}
				if b[i] != '\n' {
					b[i] = ' '
				}
			}
		}
	}
	return string(b)
}

// position returns the 1-based line and column of the given offset.
func position(src string, off int) (line, col int) {
	line = 1 + strings.Count(src[:off], "\n")
	col = off - strings.LastIndexByte(src[:off], '\n')
	return
}

func compileErr(src string, off int, format string, args ...any) error {
	line, col := position(src, off)
	return fmt.Errorf("0:%d(%d): error: %s", line, col, fmt.Sprintf(format, args...))
}

// check parses the given source, returning the checked shader or an
// error with a driver-style diagnostic.
func check(src string) (*shader, error) {
	code := stripComments(src)
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("0:1(1): error: shader source is empty")
	}
	if err := checkDirectives(code); err != nil {
		return nil, err
	}
	if err := checkBrackets(code); err != nil {
		return nil, err
	}
	sh := &shader{src: src, hasMain: mainRe.MatchString(code)}
	for _, m := range declRe.FindAllStringSubmatchIndex(code, -1) {
		v := variable{
			qual:  code[m[2]:m[3]],
			typ:   code[m[4]:m[5]],
			name:  code[m[6]:m[7]],
			array: m[8] >= 0,
		}
		v.line, _ = position(code, m[0])
		if !glslTypes[v.typ] {
			return nil, compileErr(code, m[4], "syntax error, unexpected IDENTIFIER %q, expecting a type", v.typ)
		}
		switch v.qual {
		case "in":
			sh.ins = append(sh.ins, v)
		case "out":
			sh.outs = append(sh.outs, v)
		case "uniform":
			sh.uniforms = append(sh.uniforms, v)
		}
	}
	return sh, nil
}

func checkDirectives(code string) error {
	off := 0
	for _, ln := range strings.SplitAfter(code, "\n") {
		t := strings.TrimSpace(ln)
		if strings.HasPrefix(t, "#") {
			fields := strings.Fields(strings.TrimPrefix(t, "#"))
			if len(fields) > 0 && !directives[fields[0]] {
				return compileErr(code, off+strings.Index(ln, "#"), "invalid preprocessor directive #%s", fields[0])
			}
			if len(fields) > 0 && fields[0] == "error" {
				return compileErr(code, off+strings.Index(ln, "#"), "#error %s", strings.Join(fields[1:], " "))
			}
		}
		off += len(ln)
	}
	return nil
}

func checkBrackets(code string) error {
	type open struct {
		c   byte
		off int
	}
	var stack []open
	pairs := map[byte]byte{'}': '{', ')': '(', ']': '['}
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch c {
		case '{', '(', '[':
			stack = append(stack, open{c, i})
		case '}', ')', ']':
			if len(stack) == 0 || stack[len(stack)-1].c != pairs[c] {
				return compileErr(code, i, "syntax error, unexpected '%c'", c)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return compileErr(code, len(code), "syntax error, unexpected end of file, unmatched '%c'", stack[len(stack)-1].c)
	}
	return nil
}
